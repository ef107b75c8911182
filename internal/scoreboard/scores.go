package scoreboard

import (
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/types"
)

// SetColumnName stores name verbatim; no trimming or validation is applied
func (b *Board) SetColumnName(id types.RowID, index int, name string) error {
	_, col, err := b.column(id, index)
	if err != nil {
		return err
	}
	col.Name = name
	return nil
}

// AdjustScore adds delta to a column's score and returns the new score.
// Scores are unbounded in both directions.
func (b *Board) AdjustScore(id types.RowID, index int, delta int) (int, error) {
	row, col, err := b.column(id, index)
	if err != nil {
		return 0, err
	}
	col.Score += delta
	row.Sum = sumOf(row.Columns)
	return col.Score, nil
}

// DecreaseAllByOne subtracts one from every column in the row and returns the new sum
func (b *Board) DecreaseAllByOne(id types.RowID) (int, error) {
	row, err := b.row(id)
	if err != nil {
		return 0, err
	}
	for i := range row.Columns {
		row.Columns[i].Score--
	}
	row.Sum = sumOf(row.Columns)
	return row.Sum, nil
}

// ComputeSum returns the total of the row's scores without modifying anything
func (b *Board) ComputeSum(id types.RowID) (int, error) {
	row, err := b.row(id)
	if err != nil {
		return 0, err
	}
	return sumOf(row.Columns), nil
}

// RefreshSum recomputes the row's cached sum and returns it
func (b *Board) RefreshSum(id types.RowID) (int, error) {
	row, err := b.row(id)
	if err != nil {
		return 0, err
	}
	row.Sum = sumOf(row.Columns)
	return row.Sum, nil
}

// RecomputeAllSums refreshes the cached sum of every row
func (b *Board) RecomputeAllSums() {
	for i := range b.rows {
		b.rows[i].Sum = sumOf(b.rows[i].Columns)
	}
}

func sumOf(columns []models.Column) int {
	total := 0
	for _, c := range columns {
		total += c.Score
	}
	return total
}
