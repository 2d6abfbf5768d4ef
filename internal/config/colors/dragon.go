package colors

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		// Primary
		Accent: palette.dragonViolet,

		// Background
		Background:       palette.dragonBlack1,
		ColumnBackground: palette.dragonBlack3,

		// Semantic
		Create: palette.dragonGreen2,
		Edit:   palette.dragonBlue2,
		Delete: palette.dragonRed,

		// Lanes and cards
		ColumnBorder:   palette.dragonBlack6,
		CardBorder:     palette.dragonBlack4,
		CardBackground: palette.dragonBlack3,
		SelectedBorder: palette.dragonAqua,
		SelectedBg:     palette.waveBlue1,
		DropTarget:     palette.dragonYellow,

		// Text
		Title:  palette.dragonBlue2,
		Subtle: palette.dragonAsh,
		Normal: palette.dragonWhite,
		Tag:    palette.dragonTeal,
		Score:  palette.dragonYellow,

		// Notifications
		InfoFg:    palette.dragonBlue,
		InfoBg:    palette.winterBlue,
		WarningFg: palette.roninYellow,
		WarningBg: palette.winterYellow,
		ErrorFg:   palette.samuraiRed,
		ErrorBg:   palette.winterRed,

		// Status bar
		StatusBarBg:   palette.dragonViolet,
		StatusBarText: palette.dragonWhite,
	}
}
