package session

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tally/internal/scoreboard"
	"github.com/thenoetrevino/tally/internal/testutil"
)

// reportBoard has row-0 [4 0 -1], a removed row-1 and row-2 [2 2 2]
func reportBoard(t *testing.T) *scoreboard.Board {
	t.Helper()
	b, err := scoreboard.New(3, scoreboard.WithClock(testutil.FixedClock))
	require.NoError(t, err)

	first := b.FirstRowID()
	_, _ = b.AdjustScore(first, 0, 4)
	_, _ = b.AdjustScore(first, 2, -1)

	removed := b.CreateRow(scoreboard.CreateRowRequest{Mode: scoreboard.CreateFresh})
	last := b.CreateRow(scoreboard.CreateRowRequest{Mode: scoreboard.CreateFresh})
	require.NoError(t, b.RemoveRow(removed))
	for i := range 3 {
		_, _ = b.AdjustScore(last, i, 2)
	}
	return b
}

func TestReportGolden(t *testing.T) {
	report := NewReport("cup", reportBoard(t).Snapshot())

	var buf bytes.Buffer
	_, err := report.WriteTo(&buf)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "show_report", buf.Bytes())
}

func TestNewReport(t *testing.T) {
	report := NewReport("cup", reportBoard(t).Snapshot())

	assert.Equal(t, 3, report.ColumnsPerRow)
	assert.Equal(t, 2, report.RowCount)
	assert.Equal(t, []int{6, 2, 1}, report.ColumnTotals)
	require.Len(t, report.RowSums, 2)
	assert.Equal(t, "row-2", report.RowSums[1].RowID.String())
	assert.Equal(t, 6, report.RowSums[1].Sum)
	assert.Equal(t, []int{2, 2, 2}, report.RowSums[1].Scores)
}
