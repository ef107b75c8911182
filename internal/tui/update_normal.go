package tui

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tally/internal/scoreboard"
	boardservice "github.com/thenoetrevino/tally/internal/services/board"
	"github.com/thenoetrevino/tally/internal/tui/state"
)

// handleNormalMode dispatches navigation, scoring and row keys
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	board := m.App.BoardService.Board()
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.ShowHelp):
		m.UIState.SetMode(state.HelpMode)
		return m, nil

	case key.Matches(msg, k.PrevColumn):
		m.UIState.MoveColumn(-1, board.ColumnsPerRow())
		return m, nil
	case key.Matches(msg, k.NextColumn):
		m.UIState.MoveColumn(1, board.ColumnsPerRow())
		return m, nil
	case key.Matches(msg, k.PrevRow):
		m.UIState.MoveRow(-1, board.RowCount())
		m.ensureSelectionVisible()
		return m, nil
	case key.Matches(msg, k.NextRow):
		m.UIState.MoveRow(1, board.RowCount())
		m.ensureSelectionVisible()
		return m, nil

	case key.Matches(msg, k.DecreaseAll):
		return m.decreaseAll()
	case key.Matches(msg, k.RefreshSum):
		return m.refreshSum()
	case key.Matches(msg, k.AddRow):
		return m.createRow(scoreboard.CreateRowRequest{Mode: scoreboard.CreateFresh})
	case key.Matches(msg, k.DuplicateRow):
		return m.createRow(scoreboard.CreateRowRequest{Mode: scoreboard.CreateDuplicateLast})
	case key.Matches(msg, k.RemoveRow):
		return m.removeRow()
	case key.Matches(msg, k.EditName):
		return m.startEditName()
	case key.Matches(msg, k.CopyRow):
		return m.copyRow()
	case key.Matches(msg, k.SaveSession):
		return m.save()
	}

	for _, qd := range k.QuickDeltas {
		if key.Matches(msg, qd.binding) {
			return m.adjustScore(qd.delta)
		}
	}
	return m, nil
}

func (m Model) adjustScore(delta int) (tea.Model, tea.Cmd) {
	id, ok := m.selectedRowID()
	if !ok {
		return m, nil
	}
	if _, err := m.App.BoardService.AdjustScore(m.ctx, id, m.UIState.SelectedColumn(), delta); err != nil {
		return m, m.notifyError(err)
	}
	return m, nil
}

func (m Model) decreaseAll() (tea.Model, tea.Cmd) {
	id, ok := m.selectedRowID()
	if !ok {
		return m, nil
	}
	if _, err := m.App.BoardService.DecreaseAllByOne(m.ctx, id); err != nil {
		return m, m.notifyError(err)
	}
	return m, nil
}

func (m Model) refreshSum() (tea.Model, tea.Cmd) {
	id, ok := m.selectedRowID()
	if !ok {
		return m, nil
	}
	sum, err := m.App.BoardService.RefreshSum(m.ctx, id)
	if err != nil {
		return m, m.notifyError(err)
	}
	return m, m.notify(state.LevelInfo, fmt.Sprintf("Sum of %s is %d", id, sum))
}

// createRow appends a row and moves the cursor onto it
func (m Model) createRow(req scoreboard.CreateRowRequest) (tea.Model, tea.Cmd) {
	id := m.App.BoardService.CreateRow(m.ctx, req)
	m.selectRowID(id)
	return m, nil
}

func (m Model) removeRow() (tea.Model, tea.Cmd) {
	id, ok := m.selectedRowID()
	if !ok {
		return m, nil
	}
	if err := m.App.BoardService.RemoveRow(m.ctx, id); err != nil {
		return m, m.notifyError(err)
	}
	board := m.App.BoardService.Board()
	m.UIState.ClampSelection(board.RowCount(), board.ColumnsPerRow())
	m.ensureSelectionVisible()
	return m, m.notify(state.LevelInfo, fmt.Sprintf("Removed %s", id))
}

func (m Model) startEditName() (tea.Model, tea.Cmd) {
	id, ok := m.selectedRowID()
	if !ok {
		return m, nil
	}
	row, err := m.App.BoardService.Row(id)
	if err != nil {
		return m, m.notifyError(err)
	}

	m.nameInput.Reset()
	m.nameInput.Placeholder = scoreboard.DisplayName(m.UIState.SelectedColumn(), "")
	m.nameInput.SetValue(row.Columns[m.UIState.SelectedColumn()].Name)
	m.UIState.SetMode(state.EditNameMode)
	m.ensureSelectionVisible()
	return m, m.nameInput.Focus()
}

// copyRow exports the selected row. When no clipboard accepts it the text is shown
// instead so it can be copied by hand.
func (m Model) copyRow() (tea.Model, tea.Cmd) {
	id, ok := m.selectedRowID()
	if !ok {
		return m, nil
	}
	res, err := m.App.BoardService.Export(m.ctx, id)
	switch {
	case errors.Is(err, boardservice.ErrCopyFailed):
		return m, m.notify(state.LevelWarning, "Clipboard unavailable: "+res.Text)
	case err != nil:
		return m, m.notifyError(err)
	}
	return m, m.notify(state.LevelInfo, fmt.Sprintf("Copied %s (%s)", id, res.Method))
}

// save writes the board to its session, asking for a name the first time
func (m Model) save() (tea.Model, tea.Cmd) {
	if m.Session.Name == "" {
		m.nameInput.Reset()
		m.nameInput.Placeholder = "session name"
		m.UIState.SetMode(state.SaveAsMode)
		return m, m.nameInput.Focus()
	}
	return m.saveAs(m.Session.Name)
}

func (m Model) saveAs(name string) (tea.Model, tea.Cmd) {
	if err := m.App.SaveSession(m.ctx, name); err != nil {
		return m, m.notifyError(err)
	}
	m.Session.MarkSaved(name)
	return m, m.notify(state.LevelInfo, "Saved session "+name)
}
