package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/tally/internal/events"
	boardservice "github.com/thenoetrevino/tally/internal/services/board"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	clip        boardservice.Clipboard
	now         func() time.Time
}

// WithEventPublisher forwards every board event to ec in addition to the app's bus
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithClipboard replaces the system/OSC 52 exporter used for row export
func WithClipboard(clip boardservice.Clipboard) Option {
	return func(cfg *appConfig) {
		cfg.clip = clip
	}
}

// WithClock sets the time source for snapshots and session stamps
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.now = now
	}
}
