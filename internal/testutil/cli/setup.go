package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/tally/internal/app"
	"github.com/thenoetrevino/tally/internal/clipboard"
	"github.com/thenoetrevino/tally/internal/testutil"
)

// FakeClipboard records copied text. Setting Err makes every copy fail.
type FakeClipboard struct {
	Copied []string
	Err    error
}

// Copy implements the board service's clipboard collaborator
func (f *FakeClipboard) Copy(text string) (clipboard.Method, error) {
	if f.Err != nil {
		return clipboard.MethodNone, f.Err
	}
	f.Copied = append(f.Copied, text)
	return clipboard.MethodSystem, nil
}

// SetupCLITest creates an in-memory DB and returns the DB, an App over it and the
// fake clipboard the App exports to.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*sql.DB, *app.App, *FakeClipboard) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	clip := &FakeClipboard{}
	appInstance := app.New(db, nil,
		app.WithClipboard(clip),
		app.WithClock(testutil.FixedClock),
	)
	t.Cleanup(func() { _ = appInstance.Close() })

	return db, appInstance, clip
}
