package scoreboard

import "github.com/thenoetrevino/tally/internal/models"

// Debug views over a snapshot. None of them mutate board state.

// RowSums lists every row's id, sum and scores
func RowSums(snap models.Snapshot) []models.RowSummary {
	out := make([]models.RowSummary, len(snap.Rows))
	for i, r := range snap.Rows {
		out[i] = models.RowSummary{
			RowID:  r.ID,
			Sum:    r.Sum,
			Scores: r.Scores(),
		}
	}
	return out
}

// ColumnTotals sums each column index across all rows
func ColumnTotals(snap models.Snapshot) []int {
	totals := make([]int, snap.ColumnsPerRow)
	for _, r := range snap.Rows {
		for i, c := range r.Columns {
			if i < len(totals) {
				totals[i] += c.Score
			}
		}
	}
	return totals
}

// RowCount returns the number of rows in the snapshot
func RowCount(snap models.Snapshot) int {
	return len(snap.Rows)
}
