package scoreboard

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/types"
)

// CreateMode selects how a new row's columns are initialised
type CreateMode int

const (
	// CreateFresh starts every column with an empty name and InitialScore
	CreateFresh CreateMode = iota
	// CreateDuplicateLast copies names and scores from the current last row
	CreateDuplicateLast
)

func (m CreateMode) String() string {
	switch m {
	case CreateFresh:
		return "fresh"
	case CreateDuplicateLast:
		return "duplicate_last"
	default:
		return fmt.Sprintf("CreateMode(%d)", int(m))
	}
}

// CreateRowRequest describes a row to append.
//
// NameOverrides maps a column index to text that replaces the column's initial name
// when non-empty. The presentation layer uses it to pass names still being typed
// into an input that have not been written to the model yet.
type CreateRowRequest struct {
	Mode          CreateMode
	NameOverrides map[int]string
}

// CreateRow appends a new row and returns its id. It always succeeds; duplicating
// with no existing rows yields a fresh row and out-of-range overrides are ignored.
func (b *Board) CreateRow(req CreateRowRequest) types.RowID {
	id := types.RowIDFromSeq(b.nextSeq)
	b.nextSeq++

	columns := make([]models.Column, b.columnsPerRow)
	for i := range columns {
		columns[i] = models.Column{Name: "", Score: InitialScore}
	}

	if req.Mode == CreateDuplicateLast && len(b.rows) > 0 {
		copy(columns, b.rows[len(b.rows)-1].Columns)
	}

	for i, name := range req.NameOverrides {
		if i < 0 || i >= len(columns) || name == "" {
			continue
		}
		columns[i].Name = name
	}

	row := models.Row{ID: id, Columns: columns}
	row.Sum = sumOf(row.Columns)
	b.rows = append(b.rows, row)
	return id
}

// RemoveRow deletes a row. The first row can never be removed.
func (b *Board) RemoveRow(id types.RowID) error {
	if len(b.rows) > 0 && b.rows[0].ID == id {
		return fmt.Errorf("%w: %s", ErrCannotRemoveFirst, id)
	}
	i, err := b.RowIndex(id)
	if err != nil {
		return err
	}
	b.rows = slices.Delete(b.rows, i, i+1)
	return nil
}
