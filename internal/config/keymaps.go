package config

import "strings"

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevRow    string `yaml:"prev_row"`
	NextRow    string `yaml:"next_row"`

	// Scores. QuickDeltaKeys pairs by index with board.quick_deltas; an entry may
	// hold several space separated keys.
	QuickDeltaKeys []string `yaml:"quick_delta_keys"`
	DecreaseAll    string   `yaml:"decrease_all"`
	RefreshSum     string   `yaml:"refresh_sum"`

	// Rows
	AddRow       string `yaml:"add_row"`
	DuplicateRow string `yaml:"duplicate_row"`
	RemoveRow    string `yaml:"remove_row"`
	EditName     string `yaml:"edit_name"`
	CopyRow      string `yaml:"copy_row"`

	// While editing a name: duplicate the last row with the typed name as override
	DuplicateFromEdit string `yaml:"duplicate_from_edit"`
	// While editing a name: apply it and copy the row
	CopyFromEdit string `yaml:"copy_from_edit"`

	// Sessions
	SaveSession string `yaml:"save_session"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevRow:    "k",
		NextRow:    "j",

		// Scores
		QuickDeltaKeys: []string{"+ =", "-", "2", "4"},
		DecreaseAll:    "d",
		RefreshSum:     "s",

		// Rows
		AddRow:       "a",
		DuplicateRow: "A",
		RemoveRow:    "x",
		EditName:     "e",
		CopyRow:      "y",

		DuplicateFromEdit: "ctrl+n",
		CopyFromEdit:      "ctrl+y",

		// Sessions
		SaveSession: "w",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// QuickDeltaKeyList returns the keys of the i-th quick delta entry
func (k KeyMappings) QuickDeltaKeyList(i int) []string {
	if i < 0 || i >= len(k.QuickDeltaKeys) {
		return nil
	}
	return strings.Fields(k.QuickDeltaKeys[i])
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	for _, pair := range []struct {
		value *string
		def   string
	}{
		{&k.PrevColumn, defaults.PrevColumn},
		{&k.NextColumn, defaults.NextColumn},
		{&k.PrevRow, defaults.PrevRow},
		{&k.NextRow, defaults.NextRow},
		{&k.DecreaseAll, defaults.DecreaseAll},
		{&k.RefreshSum, defaults.RefreshSum},
		{&k.AddRow, defaults.AddRow},
		{&k.DuplicateRow, defaults.DuplicateRow},
		{&k.RemoveRow, defaults.RemoveRow},
		{&k.EditName, defaults.EditName},
		{&k.CopyRow, defaults.CopyRow},
		{&k.DuplicateFromEdit, defaults.DuplicateFromEdit},
		{&k.CopyFromEdit, defaults.CopyFromEdit},
		{&k.SaveSession, defaults.SaveSession},
		{&k.ShowHelp, defaults.ShowHelp},
		{&k.Quit, defaults.Quit},
	} {
		if *pair.value == "" {
			*pair.value = pair.def
		}
	}

	if len(k.QuickDeltaKeys) == 0 {
		k.QuickDeltaKeys = defaults.QuickDeltaKeys
	}
}
