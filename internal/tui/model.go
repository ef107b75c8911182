// Package tui is the Bubble Tea front end of the score board.
package tui

import (
	"context"
	"errors"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tally/internal/app"
	"github.com/thenoetrevino/tally/internal/config"
	"github.com/thenoetrevino/tally/internal/events"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/scoreboard"
	sessionservice "github.com/thenoetrevino/tally/internal/services/session"
	"github.com/thenoetrevino/tally/internal/tui/components"
	"github.com/thenoetrevino/tally/internal/tui/state"
	"github.com/thenoetrevino/tally/internal/types"
)

// notificationTTL is how long a notification stays in the status bar
const notificationTTL = 4 * time.Second

// expireNotificationMsg removes notifications up to seq
type expireNotificationMsg struct {
	seq int
}

// Model represents the application state for the TUI
type Model struct {
	ctx           context.Context
	App           *app.App
	Config        *config.Config
	UIState       *state.UIState
	Notifications *state.NotificationState
	Session       *state.SessionState
	nameInput     textinput.Model
	keys          keyMap
}

// New creates the TUI model over an initialised app. sessionName is the session the
// board was loaded from or will be saved to; it may be empty.
func New(ctx context.Context, application *app.App, cfg *config.Config, sessionName string) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	ti := textinput.New()
	ti.CharLimit = sessionservice.MaxNameLength

	session := state.NewSessionState(sessionName)
	application.Events().Subscribe(func(e events.Event) error {
		if e.Type != events.EventRowExported {
			session.MarkDirty()
		}
		return nil
	})

	return Model{
		ctx:           ctx,
		App:           application,
		Config:        cfg,
		UIState:       state.NewUIState(),
		Notifications: state.NewNotificationState(),
		Session:       session,
		nameInput:     ti,
		keys:          newKeyMap(cfg.KeyMappings, cfg.Board.QuickDeltas),
	}
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// rows re-reads the board; every render and handler works from a fresh copy
func (m Model) rows() []models.Row {
	return m.App.BoardService.Rows()
}

// selectedRowID returns the id of the row under the cursor
func (m Model) selectedRowID() (types.RowID, bool) {
	rows := m.rows()
	if len(rows) == 0 {
		return "", false
	}
	idx := min(m.UIState.SelectedRow(), len(rows)-1)
	return rows[idx].ID, true
}

// selectRowID moves the cursor to the row with id
func (m Model) selectRowID(id types.RowID) {
	idx, err := m.App.BoardService.Board().RowIndex(id)
	if err != nil {
		return
	}
	m.UIState.SelectRow(idx, m.App.BoardService.Board().RowCount())
	m.ensureSelectionVisible()
}

// notify shows a notification and schedules its expiry
func (m Model) notify(level state.NotificationLevel, message string) tea.Cmd {
	seq := m.Notifications.Add(level, message)
	return tea.Tick(notificationTTL, func(time.Time) tea.Msg {
		return expireNotificationMsg{seq: seq}
	})
}

// notifyError turns a failed board or session call into an error notification
func (m Model) notifyError(err error) tea.Cmd {
	msg := err.Error()
	switch {
	case errors.Is(err, scoreboard.ErrCannotRemoveFirst):
		msg = "The first row cannot be removed"
	case errors.Is(err, sessionservice.ErrEmptyName):
		msg = "Session name cannot be empty"
	}
	return m.notify(state.LevelError, msg)
}

// rowAreaHeight is the vertical space left for rows
func (m Model) rowAreaHeight() int {
	reserved := 2 // header and status bar
	if mode := m.UIState.Mode(); mode == state.EditNameMode || mode == state.SaveAsMode {
		reserved += 4 // bordered input box
	}
	return max(m.UIState.Height()-reserved, 1)
}

// rowProps builds the render props for the row at position i
func (m Model) rowProps(rows []models.Row, i int) components.RowProps {
	selected := i == m.UIState.SelectedRow()
	return components.RowProps{
		Row:            rows[i],
		Position:       i,
		First:          i == 0,
		Selected:       selected,
		SelectedColumn: m.UIState.SelectedColumn(),
		Width:          m.UIState.Width(),
	}
}

// ensureSelectionVisible scrolls so the selected row fits in the row area
func (m Model) ensureSelectionVisible() {
	rows := m.rows()
	if len(rows) == 0 || m.UIState.Width() == 0 {
		return
	}
	selected := min(m.UIState.SelectedRow(), len(rows)-1)
	offset := min(m.UIState.RowOffset(), selected)

	avail := m.rowAreaHeight()
	for offset < selected {
		used := 0
		for i := offset; i <= selected; i++ {
			used += components.RowHeight(m.rowProps(rows, i))
		}
		if used <= avail {
			break
		}
		offset++
	}
	m.UIState.SetRowOffset(offset)
}
