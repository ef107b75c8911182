package scoreboard

import (
	"fmt"

	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/types"
)

// Snapshot returns a deep copy of the board stamped with the board's clock
func (b *Board) Snapshot() models.Snapshot {
	return models.Snapshot{
		Rows:          b.Rows(),
		ColumnsPerRow: b.columnsPerRow,
		NextRowSeq:    b.nextSeq,
		Timestamp:     b.now(),
	}
}

// Restore rebuilds a board from a snapshot. Cached sums in the snapshot are ignored
// and recomputed. The id counter resumes past every id in the snapshot.
func Restore(snap models.Snapshot, opts ...Option) (*Board, error) {
	b, err := newBoard(snap.ColumnsPerRow, opts)
	if err != nil {
		return nil, err
	}
	if len(snap.Rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidSnapshot)
	}

	seen := make(map[types.RowID]struct{}, len(snap.Rows))
	nextSeq := max(snap.NextRowSeq, 0)
	for _, r := range snap.Rows {
		if r.ID == "" {
			return nil, fmt.Errorf("%w: row with empty id", ErrInvalidSnapshot)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate row id %s", ErrInvalidSnapshot, r.ID)
		}
		seen[r.ID] = struct{}{}
		if len(r.Columns) != snap.ColumnsPerRow {
			return nil, fmt.Errorf("%w: row %s has %d columns, want %d",
				ErrInvalidSnapshot, r.ID, len(r.Columns), snap.ColumnsPerRow)
		}
		if seq, err := r.ID.Seq(); err == nil && seq >= nextSeq {
			nextSeq = seq + 1
		}

		row := r.Clone()
		row.Sum = sumOf(row.Columns)
		b.rows = append(b.rows, row)
	}
	b.nextSeq = nextSeq
	return b, nil
}
