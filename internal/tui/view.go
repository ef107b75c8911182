package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tally/internal/tui/components"
	"github.com/thenoetrevino/tally/internal/tui/notifications"
	"github.com/thenoetrevino/tally/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true // Use alternate screen buffer

	// Wait for terminal size to be initialized
	if m.UIState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	if m.UIState.Mode() == state.HelpMode {
		view.Content = m.viewHelp()
		return view
	}

	view.Content = m.viewBoard()
	return view
}

func (m Model) viewBoard() string {
	board := m.App.BoardService.Board()
	rows := m.rows()

	header := components.TitleStyle.Render("tally") +
		components.SubtleStyle.Render("  score board")

	// Rows from the scroll offset until the area is full; the selected row is
	// always inside that window (see ensureSelectionVisible)
	var visible []string
	avail := m.rowAreaHeight()
	for i := min(m.UIState.RowOffset(), len(rows)); i < len(rows); i++ {
		rendered := components.RenderRow(m.rowProps(rows, i))
		h := lipgloss.Height(rendered)
		if len(visible) > 0 && h > avail {
			break
		}
		visible = append(visible, rendered)
		avail -= h
	}

	sections := []string{header, lipgloss.JoinVertical(lipgloss.Left, visible...)}

	switch m.UIState.Mode() {
	case state.EditNameMode:
		sections = append(sections, components.InputBoxStyle.Render("Player name\n"+m.nameInput.View()))
	case state.SaveAsMode:
		sections = append(sections, components.InputBoxStyle.Render("Save session as\n"+m.nameInput.View()))
	}

	var notice string
	if n, ok := m.Notifications.Latest(); ok {
		notice = notifications.RenderInlineFromState(n, m.UIState.Width()/2)
	}
	sections = append(sections, components.RenderStatusBar(components.StatusBarProps{
		Width:   m.UIState.Width(),
		Session: m.Session.Name,
		Dirty:   m.Session.Dirty,
		Rows:    board.RowCount(),
		Columns: board.ColumnsPerRow(),
		Notice:  notice,
	}))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewHelp() string {
	width := max(min(m.UIState.Width()-6, 90), 20)
	box := components.HelpBoxStyle.Render(m.renderHelp(width))

	return lipgloss.Place(
		m.UIState.Width(), m.UIState.Height(),
		lipgloss.Center, lipgloss.Center,
		box,
	)
}
