// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tally/internal/config/colors"
	"github.com/thenoetrevino/tally/internal/tui/theme"
)

// CellWidth is the rendered width of one player cell, borders excluded
const CellWidth = 14

// These are cached to avoid recomputing on every redraw.
var (
	// RowStyle frames a row
	RowStyle lipgloss.Style

	// FirstRowStyle frames the first row, which cannot be removed
	FirstRowStyle lipgloss.Style

	// SelectedRowStyle frames the row holding the cursor
	SelectedRowStyle lipgloss.Style

	// CellStyle is a single player cell
	CellStyle lipgloss.Style

	// SelectedCellStyle is the cell under the cursor
	SelectedCellStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (row headers, app header)
	TitleStyle lipgloss.Style

	// SubtleStyle is muted text (ids, hints)
	SubtleStyle lipgloss.Style

	// SumStyle renders a row's cached sum
	SumStyle lipgloss.Style

	// InputBoxStyle frames the name and session inputs
	InputBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen
	HelpBoxStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	positiveStyle lipgloss.Style
	negativeStyle lipgloss.Style
	zeroStyle     lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(c colors.ColorScheme) {
	theme.Init(c)

	RowStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.RowBorder)).
		Padding(0, 1)

	FirstRowStyle = RowStyle.BorderForeground(lipgloss.Color(theme.FirstRowBorder))

	SelectedRowStyle = RowStyle.
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(theme.SelectedBorder))

	CellStyle = lipgloss.NewStyle().
		Width(CellWidth).
		Foreground(lipgloss.Color(theme.Normal))

	SelectedCellStyle = CellStyle.
		Background(lipgloss.Color(theme.SelectedBg)).
		Foreground(lipgloss.Color(theme.Highlight)).
		Bold(true)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	SumStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Sum))

	InputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(0, 1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarText)).
		Background(lipgloss.Color(theme.StatusBarBg))

	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Positive))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Negative))
	zeroStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Zero))
}

// ScoreStyle colors a score by sign
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score > 0:
		return positiveStyle
	case score < 0:
		return negativeStyle
	default:
		return zeroStyle
	}
}
