package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode   Mode = iota // Default navigation and scoring mode
	EditNameMode             // Renaming the selected column
	SaveAsMode               // Naming the session before the first save
	HelpMode                 // Displaying help screen
)

// UIState manages the user interface state: the selected cell, the terminal
// dimensions, the vertical scroll offset and the current interaction mode.
type UIState struct {
	selectedRow    int
	selectedColumn int
	width          int
	height         int
	mode           Mode
	rowOffset      int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

func (s *UIState) SelectedRow() int    { return s.selectedRow }
func (s *UIState) SelectedColumn() int { return s.selectedColumn }
func (s *UIState) Width() int          { return s.width }
func (s *UIState) Height() int         { return s.height }
func (s *UIState) Mode() Mode          { return s.mode }
func (s *UIState) RowOffset() int      { return s.rowOffset }

func (s *UIState) SetWidth(w int)  { s.width = w }
func (s *UIState) SetHeight(h int) { s.height = h }
func (s *UIState) SetMode(m Mode)  { s.mode = m }

// SetRowOffset sets the index of the first visible row (never negative)
func (s *UIState) SetRowOffset(offset int) {
	s.rowOffset = max(offset, 0)
}

// SelectRow selects index, clamped to [0, rowCount).
func (s *UIState) SelectRow(index, rowCount int) {
	s.selectedRow = clamp(index, rowCount)
}

// MoveRow moves the row selection by delta, stopping at either end.
func (s *UIState) MoveRow(delta, rowCount int) {
	s.SelectRow(s.selectedRow+delta, rowCount)
}

// MoveColumn moves the column selection by delta, wrapping around.
func (s *UIState) MoveColumn(delta, columnCount int) {
	if columnCount <= 0 {
		s.selectedColumn = 0
		return
	}
	s.selectedColumn = ((s.selectedColumn+delta)%columnCount + columnCount) % columnCount
}

// ClampSelection keeps the selection and offset inside a board of the given shape,
// e.g. after a row was removed or a different board was loaded.
func (s *UIState) ClampSelection(rowCount, columnCount int) {
	s.selectedRow = clamp(s.selectedRow, rowCount)
	s.selectedColumn = clamp(s.selectedColumn, columnCount)
	if s.rowOffset > s.selectedRow {
		s.rowOffset = s.selectedRow
	}
}

func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
