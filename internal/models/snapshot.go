package models

import (
	"time"

	"github.com/thenoetrevino/tally/internal/types"
)

// Snapshot is an immutable deep copy of a board's state at a point in time.
// NextRowSeq is carried so a restored board never reissues a row id.
type Snapshot struct {
	Rows          []Row     `json:"rows"`
	ColumnsPerRow int       `json:"columns_per_row"`
	NextRowSeq    int       `json:"next_row_seq"`
	Timestamp     time.Time `json:"timestamp"`
}

// RowSummary is the debug view of a single row
type RowSummary struct {
	RowID  types.RowID `json:"row_id"`
	Sum    int         `json:"sum"`
	Scores []int       `json:"scores"`
}
