package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tally/internal/scoreboard"
	"github.com/thenoetrevino/tally/internal/tui/state"
)

// handleEditNameMode handles input while a player name is being edited
func (m Model) handleEditNameMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.closeInput(), nil

	case key.Matches(msg, m.keys.Confirm):
		next, err := m.commitName()
		if err != nil {
			return next, next.notifyError(err)
		}
		return next, nil

	case key.Matches(msg, m.keys.DuplicateFromEdit):
		return m.duplicateFromEdit()

	case key.Matches(msg, m.keys.CopyFromEdit):
		next, err := m.commitName()
		if err != nil {
			return next, next.notifyError(err)
		}
		return next.copyRow()
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleSaveAsMode handles input while the session is being named
func (m Model) handleSaveAsMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.closeInput(), nil
	case key.Matches(msg, m.keys.Confirm):
		name := strings.TrimSpace(m.nameInput.Value())
		m = m.closeInput()
		return m.saveAs(name)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// commitName stores the typed text verbatim on the selected cell and closes the input
func (m Model) commitName() (Model, error) {
	id, ok := m.selectedRowID()
	name := m.nameInput.Value()
	m = m.closeInput()
	if !ok {
		return m, nil
	}
	return m, m.App.BoardService.SetColumnName(m.ctx, id, m.UIState.SelectedColumn(), name)
}

// duplicateFromEdit commits the typed name, then duplicates the last row. When the
// last row is the one being edited, the typed name overrides the copied one.
func (m Model) duplicateFromEdit() (tea.Model, tea.Cmd) {
	id, ok := m.selectedRowID()
	name := m.nameInput.Value()
	m, err := m.commitName()
	if err != nil {
		return m, m.notifyError(err)
	}

	req := scoreboard.CreateRowRequest{Mode: scoreboard.CreateDuplicateLast}
	if ok && name != "" && id == m.App.BoardService.Board().LastRowID() {
		req.NameOverrides = map[int]string{m.UIState.SelectedColumn(): name}
	}
	return m.createRow(req)
}

func (m Model) closeInput() Model {
	m.nameInput.Blur()
	m.UIState.SetMode(state.NormalMode)
	return m
}
