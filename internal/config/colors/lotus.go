package colors

// Lotus returns the Kanagawa Lotus color scheme (light theme)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		Accent: lotusViolet4,

		Positive: lotusGreen,
		Negative: lotusRed,
		Zero:     lotusGray3,
		Sum:      lotusYellow3,

		RowBorder:      lotusGray3,
		FirstRowBorder: lotusBlue4,
		SelectedBorder: lotusTeal1,
		SelectedBg:     lotusBlue1,

		Title:  lotusBlue4,
		Subtle: lotusGray2,
		Normal: lotusInk1,

		InfoFg:    lotusBlue4,
		InfoBg:    lotusCyan,
		WarningFg: lotusInk1,
		WarningBg: lotusYellow4,
		ErrorFg:   lotusRed,
		ErrorBg:   lotusRed4,

		StatusBarBg:   lotusViolet4,
		StatusBarText: lotusWhite3,
	}
}
