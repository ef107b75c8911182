package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tally/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UIState.SetWidth(msg.Width)
		m.UIState.SetHeight(msg.Height)
		m.ensureSelectionVisible()
		return m, nil

	case expireNotificationMsg:
		m.Notifications.Expire(msg.seq)
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.UIState.Mode() {
		case state.HelpMode:
			return m.handleHelpMode(msg)
		case state.EditNameMode:
			return m.handleEditNameMode(msg)
		case state.SaveAsMode:
			return m.handleSaveAsMode(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}

	// Cursor blinks and pastes go to the input while it is open
	if mode := m.UIState.Mode(); mode == state.EditNameMode || mode == state.SaveAsMode {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter", "space":
		m.UIState.SetMode(state.NormalMode)
	}
	return m, nil
}
