package database

import (
	"context"

	"github.com/thenoetrevino/tally/internal/models"
)

// SessionReader defines read operations for saved sessions.
type SessionReader interface {
	GetSessionByName(ctx context.Context, name string) (*models.Session, error)
	ListSessions(ctx context.Context) ([]*models.SessionSummary, error)
}

// SessionWriter defines write operations for saved sessions.
type SessionWriter interface {
	SaveSession(ctx context.Context, session *models.Session) error
	DeleteSession(ctx context.Context, name string) error
}

// SessionRepository combines all session-related operations.
type SessionRepository interface {
	SessionReader
	SessionWriter
}

// Compile-time verification that *SessionRepo implements SessionRepository
var _ SessionRepository = (*SessionRepo)(nil)
