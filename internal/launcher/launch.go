// Package launcher starts the interactive board.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tally/internal/app"
	"github.com/thenoetrevino/tally/internal/config"
	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/logging"
	"github.com/thenoetrevino/tally/internal/scoreboard"
	sessionservice "github.com/thenoetrevino/tally/internal/services/session"
	"github.com/thenoetrevino/tally/internal/tui/core"
)

// Options selects what the TUI opens
type Options struct {
	// Session is loaded when it exists and is the name `w` saves to. Empty starts an
	// unsaved board.
	Session string
	// Columns overrides the configured column count for a new board
	Columns int
	// Ephemeral keeps everything in memory
	Ephemeral bool
}

// Launch starts the TUI application
func Launch(opts Options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logging to file before anything else
	logCloser, err := logging.Init(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logCloser.Close() }()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	dbPath := cfg.DatabasePath
	if opts.Ephemeral {
		dbPath = database.MemoryPath
	}
	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	columns := cfg.Board.ColumnsPerRow
	if opts.Columns > 0 {
		columns = opts.Columns
	}
	board, err := scoreboard.New(columns)
	if err != nil {
		return err
	}

	application := app.New(db, board, app.WithLogger(slog.Default()))
	defer func() {
		slog.Info("board activity", application.Metrics().LogAttrs()...)
		if err := application.Close(); err != nil {
			slog.Error("error closing app", "error", err)
		}
	}()

	if opts.Session != "" {
		err := application.LoadSession(ctx, opts.Session)
		switch {
		case errors.Is(err, sessionservice.ErrSessionNotFound):
			slog.Info("starting new session", "session", opts.Session, "columns", columns)
		case err != nil:
			return fmt.Errorf("failed to load session %q: %w", opts.Session, err)
		default:
			slog.Info("session loaded", "session", opts.Session)
		}
	}

	tuiApp := core.New(ctx, application, cfg, opts.Session)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			slog.Info("shutdown signal received, cleaning up")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}

	if m := tuiApp.GetModel(); m.Session.Dirty {
		slog.Warn("exited with unsaved changes", "session", m.Session.Name)
	}
	return nil
}
