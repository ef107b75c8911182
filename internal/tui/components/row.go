package components

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/scoreboard"
)

// RowProps describes one row of the board
type RowProps struct {
	Row      models.Row
	Position int  // zero-based position on the board
	First    bool // the first row cannot be removed
	Selected bool
	// SelectedColumn is the cursor column when Selected
	SelectedColumn int
	// Width is the space available to the whole row, borders included
	Width int
}

// cellsPerLine returns how many cells fit next to each other in width
func cellsPerLine(width, columns int) int {
	// border (2) + padding (2)
	inner := width - 4
	n := inner / (CellWidth + 1)
	return min(max(n, 1), max(columns, 1))
}

// RenderRow renders a row as a framed grid of player cells with the sum in the header
//
// Layout:
//
//	#1 row-0 ★                    Σ 12
//	Player 1      Bob           ...
//	4             -2            ...
func RenderRow(p RowProps) string {
	perLine := cellsPerLine(p.Width, len(p.Row.Columns))

	headerLeft := TitleStyle.Render(fmt.Sprintf("#%d", p.Position+1)) + " " +
		SubtleStyle.Render(p.Row.ID.String())
	if p.First {
		headerLeft += " " + SubtleStyle.Render("★")
	}
	headerRight := SumStyle.Render("Σ " + strconv.Itoa(p.Row.Sum))

	gridWidth := perLine*(CellWidth+1) - 1
	gap := max(gridWidth-lipgloss.Width(headerLeft)-lipgloss.Width(headerRight), 1)
	header := headerLeft + strings.Repeat(" ", gap) + headerRight

	lines := []string{header}
	for start := 0; start < len(p.Row.Columns); start += perLine {
		end := min(start+perLine, len(p.Row.Columns))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, renderCell(p, i))
			if i < end-1 {
				cells = append(cells, " ")
			}
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	frame := RowStyle
	switch {
	case p.Selected:
		frame = SelectedRowStyle
	case p.First:
		frame = FirstRowStyle
	}
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderCell(p RowProps, i int) string {
	col := p.Row.Columns[i]
	name := truncate(scoreboard.DisplayName(i, col.Name), CellWidth)
	score := ScoreStyle(col.Score).Render(strconv.Itoa(col.Score))

	style := CellStyle
	if p.Selected && i == p.SelectedColumn {
		style = SelectedCellStyle
	}
	return style.Render(name + "\n" + score)
}

// RowHeight returns the rendered height of a row
func RowHeight(p RowProps) int {
	return lipgloss.Height(RenderRow(p))
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
