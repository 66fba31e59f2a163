package colors

// Wave returns a scheme based on the kanagawa wave palette
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		// Primary
		Accent: "#957FB8", // oniViolet

		// Background
		Background: "#1F1F28", // sumiInk1
		Weekend:    "#2A2A37", // sumiInk2
		Today:      "#223249", // waveBlue1
		GridLine:   "#363646", // sumiInk4

		// Status classes
		Completed:  "#98BB6C", // springGreen
		InProgress: "#7E9CD8", // crystalBlue
		Overdue:    "#FF5D62", // peachRed

		// Priorities
		HighPriority:   "#E46876", // waveRed
		MediumPriority: "#DCA561", // autumnYellow
		LowPriority:    "#7AA89F", // waveAqua2

		SelectedBg: "#2D4F67", // waveBlue2

		// Text
		Title:  "#7E9CD8", // crystalBlue
		Subtle: "#727169", // fujiGray
		Normal: "#DCD7BA", // fujiWhite

		// Notifications
		InfoFg:    "#658594", // dragonBlue
		InfoBg:    "#252535", // winterBlue
		WarningFg: "#FF9E3B", // roninYellow
		WarningBg: "#49443C", // winterYellow
		ErrorFg:   "#E82424", // samuraiRed
		ErrorBg:   "#43242B", // winterRed
	}
}
