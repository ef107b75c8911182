// Package app wires the board, its services and the session store into one container.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/tally/internal/clipboard"
	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/events"
	"github.com/thenoetrevino/tally/internal/scoreboard"
	boardservice "github.com/thenoetrevino/tally/internal/services/board"
	sessionservice "github.com/thenoetrevino/tally/internal/services/session"
)

// App holds all application services and provides dependency injection.
type App struct {
	db          *sql.DB
	bus         *events.Bus
	metrics     *events.Metrics
	eventClient events.EventPublisher
	logger      *slog.Logger
	now         func() time.Time

	// Service layer (business logic)
	BoardService   boardservice.Service
	SessionService sessionservice.Service
}

// New creates the container around b. A nil board is replaced by a fresh board with
// the default column count.
func New(db *sql.DB, b *scoreboard.Board, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}
	if cfg.clip == nil {
		cfg.clip = clipboard.NewExporter()
	}
	if b == nil {
		// cannot fail for the default column count
		b, _ = scoreboard.New(scoreboard.DefaultColumnsPerRow, scoreboard.WithClock(cfg.now))
	}

	bus := events.NewBus()
	metrics := events.NewMetrics(cfg.now())
	bus.Subscribe(metrics.Observe)
	if cfg.eventClient != nil {
		ec := cfg.eventClient
		retry := events.DefaultRetryPolicy(cfg.logger)
		bus.Subscribe(func(e events.Event) error {
			if err := retry.Publish(ec, e); err != nil {
				metrics.IncPublishFailures()
				return err
			}
			return nil
		})
	}

	return &App{
		db:             db,
		bus:            bus,
		metrics:        metrics,
		eventClient:    cfg.eventClient,
		logger:         cfg.logger,
		now:            cfg.now,
		BoardService:   boardservice.NewService(b, cfg.clip, bus, cfg.logger),
		SessionService: sessionservice.NewService(database.NewSessionRepo(db), cfg.logger, sessionservice.WithClock(cfg.now)),
	}
}

// Events returns the bus every board mutation is published on
func (a *App) Events() *events.Bus {
	return a.bus
}

// Metrics returns the event counts since the app was created
func (a *App) Metrics() events.MetricsSnapshot {
	return a.metrics.GetSnapshot(a.now())
}

// NewBoard creates an empty board that shares the app's clock
func (a *App) NewBoard(columnsPerRow int) (*scoreboard.Board, error) {
	return scoreboard.New(columnsPerRow, scoreboard.WithClock(a.now))
}

// SaveSession stores the current board under name
func (a *App) SaveSession(ctx context.Context, name string) error {
	_, err := a.SessionService.Save(ctx, name, a.BoardService.Board())
	return err
}

// LoadSession replaces the current board with the named session
func (a *App) LoadSession(ctx context.Context, name string) error {
	b, err := a.SessionService.Load(ctx, name, scoreboard.WithClock(a.now))
	if err != nil {
		return err
	}
	if err := a.BoardService.Replace(ctx, b); err != nil {
		return fmt.Errorf("failed to replace board: %w", err)
	}
	return nil
}

// Close releases the event bus and any external publisher. The database is owned
// by the caller.
func (a *App) Close() error {
	var errs []error
	if err := a.bus.Close(); err != nil {
		errs = append(errs, err)
	}
	if a.eventClient != nil {
		if err := a.eventClient.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
