package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/scoreboard"
	"github.com/thenoetrevino/tally/internal/types"
	"github.com/thenoetrevino/tally/internal/user"
)

// MaxNameLength is the longest accepted session name, in runes
const MaxNameLength = 64

// Service defines all session-related business operations
type Service interface {
	// Read operations
	Get(ctx context.Context, name string) (*models.Session, error)
	Load(ctx context.Context, name string, opts ...scoreboard.Option) (*scoreboard.Board, error)
	List(ctx context.Context) ([]*models.SessionSummary, error)

	// Write operations
	Save(ctx context.Context, name string, b *scoreboard.Board) (*models.Session, error)
	Delete(ctx context.Context, name string) error
}

// repository defines the data access methods needed by the session service.
// *database.SessionRepo satisfies it.
type repository interface {
	SaveSession(ctx context.Context, session *models.Session) error
	GetSessionByName(ctx context.Context, name string) (*models.Session, error)
	ListSessions(ctx context.Context) ([]*models.SessionSummary, error)
	DeleteSession(ctx context.Context, name string) error
}

// Option configures the service
type Option func(*service)

// WithClock overrides the time source used for created/updated stamps
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithOwner overrides how the owner recorded on saved sessions is resolved
func WithOwner(owner func() string) Option {
	return func(s *service) {
		if owner != nil {
			s.owner = owner
		}
	}
}

type service struct {
	repo   repository
	logger *slog.Logger
	now    func() time.Time
	owner  func() string
	newID  func() string
}

// NewService creates a session service over the given repository
func NewService(repo repository, logger *slog.Logger, opts ...Option) Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		owner:  user.GetCurrentUsername,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save stores the board under name, replacing any session with the same name
func (s *service) Save(ctx context.Context, name string, b *scoreboard.Board) (*models.Session, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNilBoard
	}

	now := s.now()
	sess := &models.Session{
		ID:        types.SessionID(s.newID()),
		Name:      name,
		Owner:     s.owner(),
		Snapshot:  b.Snapshot(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.SaveSession(ctx, sess); err != nil {
		s.logger.ErrorContext(ctx, "failed to save session", "session", name, "error", err)
		return nil, fmt.Errorf("failed to save session %q: %w", name, err)
	}

	s.logger.InfoContext(ctx, "session saved", "session", name, "session_id", sess.ID, "rows", len(sess.Snapshot.Rows))
	return sess, nil
}

// Get returns the stored session without restoring it
func (s *service) Get(ctx context.Context, name string) (*models.Session, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	sess, err := s.repo.GetSessionByName(ctx, name)
	if err != nil {
		return nil, s.mapLookupError(name, err)
	}
	return sess, nil
}

// Load restores the named session into a new board
func (s *service) Load(ctx context.Context, name string, opts ...scoreboard.Option) (*scoreboard.Board, error) {
	sess, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	b, err := scoreboard.Restore(sess.Snapshot, opts...)
	if err != nil {
		s.logger.ErrorContext(ctx, "stored session is invalid", "session", name, "error", err)
		return nil, fmt.Errorf("failed to restore session %q: %w", name, err)
	}

	s.logger.DebugContext(ctx, "session loaded", "session", name, "rows", b.RowCount())
	return b, nil
}

// List returns summaries of every saved session
func (s *service) List(ctx context.Context) ([]*models.SessionSummary, error) {
	sessions, err := s.repo.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// Delete removes the named session
func (s *service) Delete(ctx context.Context, name string) error {
	name, err := validateName(name)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteSession(ctx, name); err != nil {
		return s.mapLookupError(name, err)
	}
	s.logger.InfoContext(ctx, "session deleted", "session", name)
	return nil
}

func (s *service) mapLookupError(name string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, name)
	}
	return fmt.Errorf("failed to read session %q: %w", name, err)
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}
