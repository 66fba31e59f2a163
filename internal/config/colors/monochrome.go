package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		// Background
		Background: "#121212",
		Weekend:    "#1C1C1C",
		Today:      "#3A3A3A",
		GridLine:   "#585858",

		// Status classes
		Completed:  "#8A8A8A",
		InProgress: "#FFFFFF",
		Overdue:    "#D0D0D0",

		// Priorities
		HighPriority:   "#FFFFFF",
		MediumPriority: "#BCBCBC",
		LowPriority:    "#808080",

		SelectedBg: "#3A3A3A",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:    "#FFFFFF",
		InfoBg:    "#1C1C1C",
		WarningFg: "#FFFFFF",
		WarningBg: "#3A3A3A",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#585858",
	}
}
