package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tally/internal/config"
)

// quickDelta binds keys to a fixed score adjustment
type quickDelta struct {
	binding key.Binding
	delta   int
}

// keyMap holds the bindings derived from the configured key mappings
type keyMap struct {
	PrevColumn key.Binding
	NextColumn key.Binding
	PrevRow    key.Binding
	NextRow    key.Binding

	QuickDeltas []quickDelta
	DecreaseAll key.Binding
	RefreshSum  key.Binding

	AddRow       key.Binding
	DuplicateRow key.Binding
	RemoveRow    key.Binding
	EditName     key.Binding
	CopyRow      key.Binding
	SaveSession  key.Binding

	// Active while a name is being edited
	Confirm           key.Binding
	Cancel            key.Binding
	DuplicateFromEdit key.Binding
	CopyFromEdit      key.Binding

	ShowHelp key.Binding
	Quit     key.Binding
}

func binding(keys []string, help string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, " / "), help),
	)
}

// newKeyMap builds bindings from config. Quick delta keys and deltas pair by index;
// extra entries on either side are ignored.
func newKeyMap(km config.KeyMappings, deltas []int) keyMap {
	k := keyMap{
		PrevColumn: binding([]string{km.PrevColumn, "left"}, "previous player"),
		NextColumn: binding([]string{km.NextColumn, "right"}, "next player"),
		PrevRow:    binding([]string{km.PrevRow, "up"}, "previous row"),
		NextRow:    binding([]string{km.NextRow, "down"}, "next row"),

		DecreaseAll: binding([]string{km.DecreaseAll}, "decrease every score in the row by one"),
		RefreshSum:  binding([]string{km.RefreshSum}, "recompute the row sum"),

		AddRow:       binding([]string{km.AddRow}, "add a fresh row"),
		DuplicateRow: binding([]string{km.DuplicateRow}, "duplicate the last row"),
		RemoveRow:    binding([]string{km.RemoveRow}, "remove the row (not the first)"),
		EditName:     binding([]string{km.EditName}, "rename the player"),
		CopyRow:      binding([]string{km.CopyRow}, "copy the row to the clipboard"),
		SaveSession:  binding([]string{km.SaveSession}, "save the session"),

		Confirm:           binding([]string{"enter"}, "apply the name"),
		Cancel:            binding([]string{"esc"}, "cancel"),
		DuplicateFromEdit: binding([]string{km.DuplicateFromEdit}, "apply the name and duplicate the last row"),
		CopyFromEdit:      binding([]string{km.CopyFromEdit}, "apply the name and copy the row"),

		ShowHelp: binding([]string{km.ShowHelp}, "toggle help"),
		Quit:     binding([]string{km.Quit, "ctrl+c"}, "quit"),
	}

	for i, delta := range deltas {
		keys := km.QuickDeltaKeyList(i)
		if len(keys) == 0 {
			break
		}
		k.QuickDeltas = append(k.QuickDeltas, quickDelta{
			binding: binding(keys, fmt.Sprintf("%+d to the selected score", delta)),
			delta:   delta,
		})
	}
	return k
}
