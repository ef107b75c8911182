package testutil

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/scoreboard"
	sessionservice "github.com/thenoetrevino/tally/internal/services/session"
)

// FixedTime is the clock tests pin boards and sessions to
var FixedTime = time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)

// FixedClock returns FixedTime
func FixedClock() time.Time { return FixedTime }

// SetupTestDB creates an in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestSession saves a board under name and returns it. build may be nil for
// a board holding only its first row.
func CreateTestSession(t *testing.T, db *sql.DB, name string, columns int, build func(b *scoreboard.Board)) *scoreboard.Board {
	t.Helper()
	b, err := scoreboard.New(columns, scoreboard.WithClock(FixedClock))
	if err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}
	if build != nil {
		build(b)
	}

	svc := sessionservice.NewService(database.NewSessionRepo(db), slog.Default(),
		sessionservice.WithClock(FixedClock),
		sessionservice.WithOwner(func() string { return "tester" }),
	)
	if _, err := svc.Save(context.Background(), name, b); err != nil {
		t.Fatalf("Failed to save test session: %v", err)
	}
	return b
}
