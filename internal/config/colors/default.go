package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Background
		Background: "#1C1C1C",
		Weekend:    "#262626",
		Today:      "#3A2A5F",
		GridLine:   "#3A3A3A",

		// Status classes
		Completed:  "#5FD75F",
		InProgress: "#874BFD",
		Overdue:    "#FF5F5F",

		// Priorities
		HighPriority:   "#D75F5F",
		MediumPriority: "#D7AF5F",
		LowPriority:    "#5FAF87",

		SelectedBg: "#3A3A3A",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}
