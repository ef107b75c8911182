package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Positive: "#FFFFFF",
		Negative: "#BCBCBC",
		Zero:     "#767676",
		Sum:      "#FFFFFF",

		RowBorder:      "#585858",
		FirstRowBorder: "#BCBCBC",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#303030",

		Title:  "#FFFFFF",
		Subtle: "#767676",
		Normal: "#D0D0D0",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#303030",
		WarningFg: "#FFFFFF",
		WarningBg: "#4E4E4E",
		ErrorFg:   "#000000",
		ErrorBg:   "#FFFFFF",

		StatusBarBg:   "#FFFFFF",
		StatusBarText: "#000000",
	}
}
