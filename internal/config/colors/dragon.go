package colors

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		Accent: dragonViolet,

		Positive: dragonGreen2,
		Negative: dragonRed,
		Zero:     dragonAsh,
		Sum:      dragonYellow,

		RowBorder:      dragonBlack6,
		FirstRowBorder: dragonBlue2,
		SelectedBorder: dragonAqua,
		SelectedBg:     dragonBlack4,

		Title:  dragonBlue2,
		Subtle: dragonAsh,
		Normal: dragonWhite,

		InfoFg:    dragonBlue,
		InfoBg:    winterBlue,
		WarningFg: roninYellow,
		WarningBg: winterYellow,
		ErrorFg:   samuraiRed,
		ErrorBg:   winterRed,

		StatusBarBg:   dragonViolet, // Matches accent
		StatusBarText: dragonBlack3,
	}
}
