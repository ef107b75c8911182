package models

import "github.com/thenoetrevino/tally/internal/types"

// Row is one horizontal record on the board: a fixed-size set of columns plus their cached sum
type Row struct {
	ID      types.RowID `json:"id"`
	Columns []Column    `json:"columns"`
	Sum     int         `json:"sum"`
}

// Clone returns a deep copy of the row
func (r Row) Clone() Row {
	columns := make([]Column, len(r.Columns))
	copy(columns, r.Columns)
	return Row{
		ID:      r.ID,
		Columns: columns,
		Sum:     r.Sum,
	}
}

// Scores returns the column scores in index order
func (r Row) Scores() []int {
	scores := make([]int, len(r.Columns))
	for i, c := range r.Columns {
		scores[i] = c.Score
	}
	return scores
}
