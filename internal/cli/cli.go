// Package cli holds what the tally subcommands share: the application container,
// output formatting, argument parsing and exit codes.
package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/tally/internal/app"
	"github.com/thenoetrevino/tally/internal/config"
	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	db        *sql.DB
	logCloser io.Closer
	owned     bool
}

type contextKey string

const appKey contextKey = "tally.app"

// WithApp returns a context carrying an existing app. Commands run under it use
// that app instead of opening the configured database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns the CLI for a command: the app injected with WithApp if
// there is one, a freshly opened CLI otherwise.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: config.Default()}, nil
	}
	return NewCLI(ctx)
}

// NewCLI loads the configuration, starts file logging and opens the session database
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logCloser, err := logging.Init(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:       app.New(db, nil, app.WithLogger(slog.Default())),
		Config:    cfg,
		db:        db,
		logCloser: logCloser,
		owned:     true,
	}, nil
}

// Close cleans up CLI resources. An injected app is left open for its owner.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return errors.Join(c.App.Close(), c.db.Close(), c.logCloser.Close())
}

// LoadSession makes the named session the app's current board
func (c *CLI) LoadSession(ctx context.Context, name string) error {
	return c.App.LoadSession(ctx, name)
}

// SaveSession writes the current board back under name
func (c *CLI) SaveSession(ctx context.Context, name string) error {
	return c.App.SaveSession(ctx, name)
}
