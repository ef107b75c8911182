package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tally/internal/config"
)

func TestViewLoadingBeforeResize(t *testing.T) {
	m := newTestModel(t, 2, nil)
	m.UIState.SetWidth(0)

	view := m.View()
	assert.True(t, view.AltScreen)
	assert.Equal(t, "Loading...", view.Content)
}

func TestViewShowsRowsAndStatus(t *testing.T) {
	m := newTestModel(t, 3, nil)
	m = press(t, m, "4", "a", "-")

	content := m.View().Content
	assert.Contains(t, content, "tally")
	assert.Contains(t, content, "row-0")
	assert.Contains(t, content, "row-1")
	assert.Contains(t, content, "Player 3")
	assert.Contains(t, content, "Σ 4")
	assert.Contains(t, content, "Σ -1")
	assert.Contains(t, content, "unsaved*")
	assert.Contains(t, content, "2 rows × 3 players")
}

func TestViewShowsInputWhileEditing(t *testing.T) {
	m := newTestModel(t, 2, nil)
	m = press(t, m, "e")

	assert.Contains(t, m.View().Content, "Player name")
}

func TestHelpListsConfiguredKeys(t *testing.T) {
	cfg := config.Default()
	cfg.KeyMappings.CopyRow = "Y"
	k := newKeyMap(cfg.KeyMappings, cfg.Board.QuickDeltas)

	md := k.helpMarkdown()
	assert.Contains(t, md, "| `Y` | copy the row to the clipboard |")
	assert.Contains(t, md, "| `+ / =` | +1 to the selected score |")
	assert.Contains(t, md, "| `4` | +4 to the selected score |")
	assert.Contains(t, md, "| `ctrl+n` |")
	assert.Contains(t, md, "| `ctrl+y` |")

	m := newTestModel(t, 2, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 60})
	m = press(t, m, "?")
	content := m.View().Content
	assert.NotEmpty(t, content)
	assert.NotContains(t, content, "row-0", "the board is hidden behind help")
}

func TestNewKeyMapPairsDeltasByIndex(t *testing.T) {
	km := config.DefaultKeyMappings()
	km.QuickDeltaKeys = []string{"p"}

	k := newKeyMap(km, []int{10, -10})
	if assert.Len(t, k.QuickDeltas, 1) {
		assert.Equal(t, 10, k.QuickDeltas[0].delta)
		assert.Equal(t, []string{"p"}, k.QuickDeltas[0].binding.Keys())
	}
}
