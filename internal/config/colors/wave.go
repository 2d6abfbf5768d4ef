package colors

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		// Primary
		Accent: palette.oniViolet,

		// Background
		Background:       palette.sumiInk1,
		ColumnBackground: palette.sumiInk2,

		// Semantic
		Create: palette.springGreen,
		Edit:   palette.crystalBlue,
		Delete: palette.peachRed,

		// Lanes and cards
		ColumnBorder:   palette.sumiInk6,
		CardBorder:     palette.sumiInk4,
		CardBackground: palette.sumiInk3,
		SelectedBorder: palette.waveAqua2,
		SelectedBg:     palette.waveBlue1,
		DropTarget:     palette.carpYellow,

		// Text
		Title:  palette.crystalBlue,
		Subtle: palette.fujiGray,
		Normal: palette.fujiWhite,
		Tag:    palette.springBlue,
		Score:  palette.carpYellow,

		// Notifications
		InfoFg:    palette.dragonBlue,
		InfoBg:    palette.winterBlue,
		WarningFg: palette.roninYellow,
		WarningBg: palette.winterYellow,
		ErrorFg:   palette.samuraiRed,
		ErrorBg:   palette.winterRed,

		// Status bar
		StatusBarBg:   palette.oniViolet,
		StatusBarText: palette.fujiWhite,
	}
}
