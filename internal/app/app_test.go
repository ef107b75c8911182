package app

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tally/internal/clipboard"
	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/events"
	"github.com/thenoetrevino/tally/internal/scoreboard"
	sessionservice "github.com/thenoetrevino/tally/internal/services/session"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type fakeClipboard struct{ copied []string }

func (f *fakeClipboard) Copy(text string) (clipboard.Method, error) {
	f.copied = append(f.copied, text)
	return clipboard.MethodSystem, nil
}

type recordingPublisher struct {
	sent   []events.Event
	closed bool
}

func (r *recordingPublisher) SendEvent(e events.Event) error {
	r.sent = append(r.sent, e)
	return nil
}

func (r *recordingPublisher) Close() error {
	r.closed = true
	return nil
}

func TestNew(t *testing.T) {
	t.Parallel()
	app := New(setupTestDB(t), nil)

	require.NotNil(t, app.BoardService)
	require.NotNil(t, app.SessionService)
	assert.Equal(t, scoreboard.DefaultColumnsPerRow, app.BoardService.Board().ColumnsPerRow())
	assert.Equal(t, 1, app.BoardService.Board().RowCount())
	assert.NoError(t, app.Close())
}

func TestEventsReachBusAndPublisher(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	pub := &recordingPublisher{}
	app := New(setupTestDB(t), nil, WithEventPublisher(pub))

	var seen []events.EventType
	app.Events().Subscribe(func(e events.Event) error {
		seen = append(seen, e.Type)
		return nil
	})

	first := app.BoardService.Board().FirstRowID()
	_, err := app.BoardService.AdjustScore(ctx, first, 0, 3)
	require.NoError(t, err)

	assert.Equal(t, []events.EventType{events.EventScoreChanged}, seen)
	require.Len(t, pub.sent, 1)
	assert.Equal(t, 3, pub.sent[0].Value)

	require.NoError(t, app.Close())
	assert.True(t, pub.closed)
}

func TestSaveAndLoadSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clock := func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	app := New(setupTestDB(t), nil, WithClock(clock))

	b, err := app.NewBoard(2)
	require.NoError(t, err)
	require.NoError(t, app.BoardService.Replace(ctx, b))
	_, err = app.BoardService.AdjustScore(ctx, b.FirstRowID(), 1, 7)
	require.NoError(t, err)
	require.NoError(t, app.SaveSession(ctx, "cards"))

	// Diverge, then load back
	app.BoardService.CreateRow(ctx, scoreboard.CreateRowRequest{})
	require.NoError(t, app.LoadSession(ctx, "cards"))

	rows := app.BoardService.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, []int{0, 7}, rows[0].Scores())
	assert.Equal(t, clock(), app.BoardService.Snapshot().Timestamp)

	err = app.LoadSession(ctx, "missing")
	assert.ErrorIs(t, err, sessionservice.ErrSessionNotFound)
	assert.Len(t, app.BoardService.Rows(), 1, "failed load keeps the board")
}

func TestWithClipboard(t *testing.T) {
	t.Parallel()
	clip := &fakeClipboard{}
	app := New(setupTestDB(t), nil, WithClipboard(clip))

	first := app.BoardService.Board().FirstRowID()
	res, err := app.BoardService.Export(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, clipboard.MethodSystem, res.Method)
	require.Len(t, clip.copied, 1)
	assert.Contains(t, clip.copied[0], "Player 1: 0")
}

func TestMetricsCountBoardEvents(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)
	app := New(setupTestDB(t), nil, WithClock(func() time.Time { return start }))
	ctx := context.Background()

	id := app.BoardService.CreateRow(ctx, scoreboard.CreateRowRequest{})
	_, err := app.BoardService.AdjustScore(ctx, id, 0, 2)
	require.NoError(t, err)
	_, err = app.BoardService.DecreaseAllByOne(ctx, id)
	require.NoError(t, err)
	require.NoError(t, app.BoardService.RemoveRow(ctx, id))

	m := app.Metrics()
	assert.Equal(t, int64(4), m.EventsTotal)
	assert.Equal(t, int64(1), m.RowsCreated)
	assert.Equal(t, int64(2), m.ScoreChanges, "decrease-all counts as a score change")
	assert.Equal(t, int64(1), m.RowsRemoved)
	assert.Equal(t, start, m.StartTime)
}
