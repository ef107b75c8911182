package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tally/internal/config/colors"
	"github.com/thenoetrevino/tally/internal/models"
)

func testRow(columns int) models.Row {
	row := models.Row{ID: "row-3", Columns: make([]models.Column, columns)}
	row.Columns[1] = models.Column{Name: "Bob", Score: 5}
	row.Columns[0].Score = -2
	row.Sum = 3
	return row
}

func TestRenderRow_ShowsNamesScoresAndSum(t *testing.T) {
	InitStyles(*colors.Monochrome())

	out := RenderRow(RowProps{Row: testRow(3), Position: 1, Width: 80})

	assert.Contains(t, out, "#2")
	assert.Contains(t, out, "row-3")
	assert.Contains(t, out, "Player 1")
	assert.Contains(t, out, "Bob")
	assert.Contains(t, out, "Player 3")
	assert.Contains(t, out, "-2")
	assert.Contains(t, out, "Σ 3")
	assert.NotContains(t, out, "★")
}

func TestRenderRow_FirstMarker(t *testing.T) {
	InitStyles(*colors.Monochrome())

	out := RenderRow(RowProps{Row: testRow(2), First: true, Width: 80})
	assert.Contains(t, out, "★")
}

func TestRenderRow_WrapsToWidth(t *testing.T) {
	InitStyles(*colors.Monochrome())
	props := RowProps{Row: testRow(8), Width: 40}

	out := RenderRow(props)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 40)
	}

	wide := RowHeight(RowProps{Row: testRow(8), Width: 200})
	assert.Greater(t, RowHeight(props), wide)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	got := truncate("a very long player name", 8)
	assert.Equal(t, 8, lipgloss.Width(got))
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestRenderStatusBar(t *testing.T) {
	InitStyles(*colors.Default())

	out := RenderStatusBar(StatusBarProps{Width: 100, Session: "friday", Dirty: true, Rows: 3, Columns: 8})
	assert.Contains(t, out, "friday*")
	assert.Contains(t, out, "3 rows × 8 players")
	assert.Contains(t, out, "press ? for help")

	out = RenderStatusBar(StatusBarProps{Width: 100, Notice: "copied"})
	assert.Contains(t, out, "unsaved")
	assert.Contains(t, out, "copied")
	assert.NotContains(t, out, "press ? for help")
}
