package colors

// Wave returns the Kanagawa Wave color scheme (the default Kanagawa dark theme)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: oniViolet,

		Positive: springGreen,
		Negative: autumnRed,
		Zero:     fujiGray,
		Sum:      carpYellow,

		RowBorder:      sumiInk6,
		FirstRowBorder: crystalBlue,
		SelectedBorder: springBlue,
		SelectedBg:     waveBlue1,

		Title:  crystalBlue,
		Subtle: fujiGray,
		Normal: fujiWhite,

		InfoFg:    springBlue,
		InfoBg:    waveBlue2,
		WarningFg: roninYellow,
		WarningBg: winterYellow,
		ErrorFg:   samuraiRed,
		ErrorBg:   winterRed,

		StatusBarBg:   oniViolet,
		StatusBarText: sumiInk3,
	}
}
