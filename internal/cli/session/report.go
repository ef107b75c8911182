package session

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/scoreboard"
)

// Report is the debug view of a session's board
type Report struct {
	Session       string              `json:"session"`
	ColumnsPerRow int                 `json:"columns_per_row"`
	RowCount      int                 `json:"row_count"`
	RowSums       []models.RowSummary `json:"row_sums"`
	ColumnTotals  []int               `json:"column_totals"`
}

// NewReport builds the report from a snapshot
func NewReport(name string, snap models.Snapshot) Report {
	return Report{
		Session:       name,
		ColumnsPerRow: snap.ColumnsPerRow,
		RowCount:      scoreboard.RowCount(snap),
		RowSums:       scoreboard.RowSums(snap),
		ColumnTotals:  scoreboard.ColumnTotals(snap),
	}
}

// WriteTo prints the report as an aligned table
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Session: %s\n", r.Session)
	fmt.Fprintf(&b, "Players: %d\n", r.ColumnsPerRow)
	fmt.Fprintf(&b, "Rows:    %d\n\n", r.RowCount)

	fmt.Fprintf(&b, "%-10s %6s  %s\n", "ROW", "SUM", "SCORES")
	for _, row := range r.RowSums {
		fmt.Fprintf(&b, "%-10s %6d  %s\n", row.RowID, row.Sum, joinInts(row.Scores))
	}

	total := 0
	for _, t := range r.ColumnTotals {
		total += t
	}
	fmt.Fprintf(&b, "%-10s %6d  %s\n", "TOTAL", total, joinInts(r.ColumnTotals))

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
