package colors

// Lotus returns the Kanagawa Lotus color scheme (light theme with cream/paper background)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		// Primary
		Accent: palette.lotusViolet4,

		// Background
		Background:       palette.lotusWhite0,
		ColumnBackground: palette.lotusWhite2,

		// Semantic
		Create: palette.lotusGreen,
		Edit:   palette.lotusBlue4,
		Delete: palette.lotusRed,

		// Lanes and cards
		ColumnBorder:   palette.lotusViolet1,
		CardBorder:     palette.lotusWhite4,
		CardBackground: palette.lotusWhite3,
		SelectedBorder: palette.lotusAqua,
		SelectedBg:     palette.lotusBlue1,
		DropTarget:     palette.lotusYellow3,

		// Text
		Title:  palette.lotusBlue4,
		Subtle: palette.lotusGray3,
		Normal: palette.lotusInk1,
		Tag:    palette.lotusTeal1,
		Score:  palette.lotusYellow3,

		// Notifications
		InfoFg:    palette.lotusTeal3,
		InfoBg:    palette.lotusBlue2,
		WarningFg: palette.lotusOrange2,
		WarningBg: palette.lotusYellow4,
		ErrorFg:   palette.lotusRed3,
		ErrorBg:   palette.lotusRed4,

		// Status bar
		StatusBarBg:   palette.lotusViolet4,
		StatusBarText: palette.lotusWhite3,
	}
}
