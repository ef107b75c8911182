package scoreboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/tally/internal/models"
)

func TestDebugViews(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t, 3)
	_, err := b.AdjustScore("row-0", 0, 4)
	require.NoError(t, err)
	id := b.CreateRow(CreateRowRequest{Mode: CreateDuplicateLast})
	_, err = b.AdjustScore(id, 2, -1)
	require.NoError(t, err)

	snap := b.Snapshot()
	before := b.Rows()

	assert.Equal(t, []models.RowSummary{
		{RowID: "row-0", Sum: 4, Scores: []int{4, 0, 0}},
		{RowID: "row-1", Sum: 3, Scores: []int{4, 0, -1}},
	}, RowSums(snap))
	assert.Equal(t, []int{8, 0, -1}, ColumnTotals(snap))
	assert.Equal(t, 2, RowCount(snap))
	assert.Equal(t, before, b.Rows())
}
