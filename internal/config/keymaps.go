package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Games
	AddGame    string `yaml:"add_game"`
	EditGame   string `yaml:"edit_game"`
	DeleteGame string `yaml:"delete_game"`
	ViewGame   string `yaml:"view_game"`

	// Drag and drop
	Grab   string `yaml:"grab"`
	Drop   string `yaml:"drop"`
	Cancel string `yaml:"cancel"`

	// Columns
	CreateColumn     string `yaml:"create_column"`
	RenameColumn     string `yaml:"rename_column"`
	DeleteColumn     string `yaml:"delete_column"`
	ToggleUnassigned string `yaml:"toggle_unassigned"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevGame   string `yaml:"prev_game"`
	NextGame   string `yaml:"next_game"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddGame:    "a",
		EditGame:   "e",
		DeleteGame: "d",
		ViewGame:   "space",

		Grab:   "g",
		Drop:   "enter",
		Cancel: "esc",

		CreateColumn:     "C",
		RenameColumn:     "R",
		DeleteColumn:     "X",
		ToggleUnassigned: "u",

		PrevColumn: "h",
		NextColumn: "l",
		PrevGame:   "k",
		NextGame:   "j",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// bindings lists every field with its default, in declaration order
func (k *KeyMappings) bindings() []struct {
	key *string
	def string
} {
	d := DefaultKeyMappings()
	return []struct {
		key *string
		def string
	}{
		{&k.AddGame, d.AddGame},
		{&k.EditGame, d.EditGame},
		{&k.DeleteGame, d.DeleteGame},
		{&k.ViewGame, d.ViewGame},
		{&k.Grab, d.Grab},
		{&k.Drop, d.Drop},
		{&k.Cancel, d.Cancel},
		{&k.CreateColumn, d.CreateColumn},
		{&k.RenameColumn, d.RenameColumn},
		{&k.DeleteColumn, d.DeleteColumn},
		{&k.ToggleUnassigned, d.ToggleUnassigned},
		{&k.PrevColumn, d.PrevColumn},
		{&k.NextColumn, d.NextColumn},
		{&k.PrevGame, d.PrevGame},
		{&k.NextGame, d.NextGame},
		{&k.ShowHelp, d.ShowHelp},
		{&k.Quit, d.Quit},
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	for _, b := range k.bindings() {
		if *b.key == "" {
			*b.key = b.def
		}
	}
}
