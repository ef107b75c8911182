package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTx_RollsBackOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := setupTestDB(t)
	boom := errors.New("boom")

	err := withTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO sessions (id, name, columns_per_row, created_at, updated_at)
			VALUES ('a', 'a', 1, '', '')`)
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&n))
	assert.Zero(t, n)
}

func TestTimeRoundTrip(t *testing.T) {
	t.Parallel()
	in := time.Date(2024, 2, 29, 23, 59, 59, 123456789, time.FixedZone("x", 3600))

	out, err := parseTime(formatTime(in))
	require.NoError(t, err)
	assert.True(t, in.Equal(out))

	_, err = parseTime("yesterday")
	assert.Error(t, err)
}
