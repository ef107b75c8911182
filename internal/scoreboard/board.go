// Package scoreboard holds the in-memory score board: an ordered sequence of rows,
// each with a fixed number of named player columns and a cached sum.
//
// A Board is not safe for concurrent use. It assumes a single writer (the TUI update
// loop or one CLI command); callers sharing a board across goroutines must serialise
// access themselves.
package scoreboard

import (
	"fmt"
	"time"

	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/types"
)

// InitialScore is the score of every column in a freshly created row
const InitialScore = 0

// DefaultColumnsPerRow matches the original eight-player board
const DefaultColumnsPerRow = 8

// Board owns the rows. Create one with New or Restore.
type Board struct {
	rows          []models.Row
	columnsPerRow int
	nextSeq       int
	now           func() time.Time
}

// Option configures a Board
type Option func(*Board)

// WithClock sets the clock used to timestamp snapshots
func WithClock(now func() time.Time) Option {
	return func(b *Board) {
		if now != nil {
			b.now = now
		}
	}
}

func newBoard(columnsPerRow int, opts []Option) (*Board, error) {
	if columnsPerRow <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidColumnCount, columnsPerRow)
	}
	b := &Board{
		columnsPerRow: columnsPerRow,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// New creates a board with columnsPerRow columns per row and its first, fresh row
func New(columnsPerRow int, opts ...Option) (*Board, error) {
	b, err := newBoard(columnsPerRow, opts)
	if err != nil {
		return nil, err
	}
	b.CreateRow(CreateRowRequest{Mode: CreateFresh})
	return b, nil
}

// ColumnsPerRow returns the fixed number of columns in every row
func (b *Board) ColumnsPerRow() int {
	return b.columnsPerRow
}

// RowCount returns the number of rows currently on the board
func (b *Board) RowCount() int {
	return len(b.rows)
}

// FirstRowID returns the id of the first row, which can never be removed
func (b *Board) FirstRowID() types.RowID {
	if len(b.rows) == 0 {
		return ""
	}
	return b.rows[0].ID
}

// LastRowID returns the id of the last row
func (b *Board) LastRowID() types.RowID {
	if len(b.rows) == 0 {
		return ""
	}
	return b.rows[len(b.rows)-1].ID
}

// Rows returns a deep copy of all rows in display order
func (b *Board) Rows() []models.Row {
	rows := make([]models.Row, len(b.rows))
	for i, r := range b.rows {
		rows[i] = r.Clone()
	}
	return rows
}

// Row returns a deep copy of the row with the given id
func (b *Board) Row(id types.RowID) (models.Row, error) {
	row, err := b.row(id)
	if err != nil {
		return models.Row{}, err
	}
	return row.Clone(), nil
}

// RowIndex returns the display position of the row with the given id
func (b *Board) RowIndex(id types.RowID) (int, error) {
	for i := range b.rows {
		if b.rows[i].ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrRowNotFound, id)
}

func (b *Board) row(id types.RowID) (*models.Row, error) {
	i, err := b.RowIndex(id)
	if err != nil {
		return nil, err
	}
	return &b.rows[i], nil
}

func (b *Board) column(id types.RowID, index int) (*models.Row, *models.Column, error) {
	row, err := b.row(id)
	if err != nil {
		return nil, nil, err
	}
	if index < 0 || index >= len(row.Columns) {
		return nil, nil, fmt.Errorf("%w: %s column %d", ErrColumnNotFound, id, index)
	}
	return row, &row.Columns[index], nil
}
