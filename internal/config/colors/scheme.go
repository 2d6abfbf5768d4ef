// Package colors holds the board color schemes and their presets.
package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Backgrounds
	Background       string `yaml:"background"`
	ColumnBackground string `yaml:"column_background"`

	// Semantic colors
	Create string `yaml:"create"` // creation dialogs
	Edit   string `yaml:"edit"`   // edit dialogs
	Delete string `yaml:"delete"` // delete confirmations

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	DropTarget     string `yaml:"drop_target"` // column under a held game

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`
	Tag    string `yaml:"tag"`
	Score  string `yaml:"score"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// Presets lists the preset names GetPreset understands
var Presets = []string{"default", "monochrome", "wave", "dragon", "lotus"}

// GetPreset returns a preset color scheme by name, falling back to default
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	case "dragon":
		return Dragon()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

func (c *ColorScheme) colors() []*string {
	return []*string{
		&c.Accent,
		&c.Background, &c.ColumnBackground,
		&c.Create, &c.Edit, &c.Delete,
		&c.ColumnBorder, &c.CardBorder, &c.CardBackground,
		&c.SelectedBorder, &c.SelectedBg, &c.DropTarget,
		&c.Title, &c.Subtle, &c.Normal, &c.Tag, &c.Score,
		&c.InfoFg, &c.InfoBg, &c.WarningFg, &c.WarningBg, &c.ErrorFg, &c.ErrorBg,
		&c.StatusBarBg, &c.StatusBarText,
	}
}

// ApplyDefaults fills in missing color values from the named preset
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	base := preset.colors()
	for i, v := range c.colors() {
		if *v == "" {
			*v = *base[i]
		}
	}
}

// MergeFrom overwrites colors with every non-empty value in other.
// A preset in other replaces the base the remaining gaps are filled from.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	src := other.colors()
	for i, v := range c.colors() {
		if *src[i] != "" {
			*v = *src[i]
		}
	}
}
