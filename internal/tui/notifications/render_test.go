package notifications

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tally/internal/config/colors"
	"github.com/thenoetrevino/tally/internal/tui/state"
	"github.com/thenoetrevino/tally/internal/tui/theme"
)

func TestFromLevel(t *testing.T) {
	assert.Equal(t, Info, FromLevel(state.LevelInfo))
	assert.Equal(t, Warning, FromLevel(state.LevelWarning))
	assert.Equal(t, Error, FromLevel(state.LevelError))
}

func TestRenderErrorCarriesTitle(t *testing.T) {
	theme.Init(*colors.Default())

	out := Render(Error, "the first row cannot be removed")
	assert.Contains(t, out, "Error: the first row cannot be removed")
	assert.Contains(t, out, "✕")

	info := Render(Info, "saved")
	assert.Contains(t, info, "✓ saved")
	assert.NotContains(t, info, "Info")
}

func TestRenderInlineFromStateClipsToWidth(t *testing.T) {
	theme.Init(*colors.Default())

	n := state.Notification{Level: state.LevelWarning, Message: strings.Repeat("x", 80)}
	assert.LessOrEqual(t, lipgloss.Width(RenderInlineFromState(n, 20)), 20)
	assert.Contains(t, RenderInlineFromState(n, 0), strings.Repeat("x", 80))
}
