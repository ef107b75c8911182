package board

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tally/internal/clipboard"
	"github.com/thenoetrevino/tally/internal/events"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/scoreboard"
	"github.com/thenoetrevino/tally/internal/types"
)

// Service defines all operations the presentation layer performs on a board.
// Each successful mutation publishes exactly one event.
type Service interface {
	// Read operations
	Board() *scoreboard.Board
	Rows() []models.Row
	Row(id types.RowID) (models.Row, error)
	Snapshot() models.Snapshot
	ComputeSum(ctx context.Context, id types.RowID) (int, error)
	FormatRowForExport(ctx context.Context, id types.RowID) (string, error)

	// Write operations
	CreateRow(ctx context.Context, req scoreboard.CreateRowRequest) types.RowID
	RemoveRow(ctx context.Context, id types.RowID) error
	SetColumnName(ctx context.Context, id types.RowID, column int, name string) error
	AdjustScore(ctx context.Context, id types.RowID, column int, delta int) (int, error)
	DecreaseAllByOne(ctx context.Context, id types.RowID) (int, error)
	RefreshSum(ctx context.Context, id types.RowID) (int, error)
	RecomputeAllSums(ctx context.Context)
	Replace(ctx context.Context, b *scoreboard.Board) error

	// Export formats a row and hands it to the clipboard
	Export(ctx context.Context, id types.RowID) (ExportResult, error)
}

// Clipboard is the export collaborator; *clipboard.Exporter satisfies it
type Clipboard interface {
	Copy(text string) (clipboard.Method, error)
}

// ExportResult carries the formatted row and the mechanism that copied it
type ExportResult struct {
	RowID  types.RowID
	Text   string
	Method clipboard.Method
}

type service struct {
	board       *scoreboard.Board
	clip        Clipboard
	eventClient events.EventPublisher
	logger      *slog.Logger
}

// NewService creates a board service. clip, eventClient and logger may be nil.
func NewService(b *scoreboard.Board, clip Clipboard, eventClient events.EventPublisher, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		board:       b,
		clip:        clip,
		eventClient: eventClient,
		logger:      logger,
	}
}

func (s *service) Board() *scoreboard.Board {
	return s.board
}

func (s *service) Rows() []models.Row {
	return s.board.Rows()
}

func (s *service) Row(id types.RowID) (models.Row, error) {
	return s.board.Row(id)
}

func (s *service) Snapshot() models.Snapshot {
	return s.board.Snapshot()
}

func (s *service) ComputeSum(ctx context.Context, id types.RowID) (int, error) {
	sum, err := s.board.ComputeSum(id)
	if err != nil {
		s.logFailure(ctx, "compute sum", id, err)
		return 0, err
	}
	return sum, nil
}

func (s *service) FormatRowForExport(ctx context.Context, id types.RowID) (string, error) {
	text, err := s.board.FormatRowForExport(id)
	if err != nil {
		s.logFailure(ctx, "format row", id, err)
		return "", err
	}
	return text, nil
}

// CreateRow appends a row; it cannot fail
func (s *service) CreateRow(ctx context.Context, req scoreboard.CreateRowRequest) types.RowID {
	id := s.board.CreateRow(req)
	row, _ := s.board.Row(id)
	s.logger.DebugContext(ctx, "row created", "row_id", id, "mode", req.Mode.String(), "sum", row.Sum)
	s.publish(events.Event{Type: events.EventRowCreated, RowID: id, Column: -1, Value: row.Sum})
	return id
}

func (s *service) RemoveRow(ctx context.Context, id types.RowID) error {
	if err := s.board.RemoveRow(id); err != nil {
		s.logFailure(ctx, "remove row", id, err)
		return err
	}
	s.logger.DebugContext(ctx, "row removed", "row_id", id, "rows", s.board.RowCount())
	s.publish(events.Event{Type: events.EventRowRemoved, RowID: id, Column: -1, Value: s.board.RowCount()})
	return nil
}

func (s *service) SetColumnName(ctx context.Context, id types.RowID, column int, name string) error {
	if err := s.board.SetColumnName(id, column, name); err != nil {
		s.logFailure(ctx, "set column name", id, err)
		return err
	}
	s.publish(events.Event{Type: events.EventNameChanged, RowID: id, Column: column, Text: name})
	return nil
}

func (s *service) AdjustScore(ctx context.Context, id types.RowID, column int, delta int) (int, error) {
	score, err := s.board.AdjustScore(id, column, delta)
	if err != nil {
		s.logFailure(ctx, "adjust score", id, err)
		return 0, err
	}
	s.logger.DebugContext(ctx, "score adjusted", "row_id", id, "column", column, "delta", delta, "score", score)
	s.publish(events.Event{Type: events.EventScoreChanged, RowID: id, Column: column, Value: score})
	return score, nil
}

func (s *service) DecreaseAllByOne(ctx context.Context, id types.RowID) (int, error) {
	sum, err := s.board.DecreaseAllByOne(id)
	if err != nil {
		s.logFailure(ctx, "decrease all", id, err)
		return 0, err
	}
	// every column changed, so the event carries the new row sum
	s.publish(events.Event{Type: events.EventScoreChanged, RowID: id, Column: -1, Value: sum})
	return sum, nil
}

func (s *service) RefreshSum(ctx context.Context, id types.RowID) (int, error) {
	sum, err := s.board.RefreshSum(id)
	if err != nil {
		s.logFailure(ctx, "refresh sum", id, err)
		return 0, err
	}
	s.publish(events.Event{Type: events.EventSumRefreshed, RowID: id, Column: -1, Value: sum})
	return sum, nil
}

func (s *service) RecomputeAllSums(ctx context.Context) {
	s.board.RecomputeAllSums()
	s.logger.DebugContext(ctx, "all sums recomputed", "rows", s.board.RowCount())
}

// Replace swaps in another board, e.g. one restored from a saved session
func (s *service) Replace(ctx context.Context, b *scoreboard.Board) error {
	if b == nil {
		return ErrNilBoard
	}
	s.board = b
	s.logger.InfoContext(ctx, "board replaced", "rows", b.RowCount(), "columns_per_row", b.ColumnsPerRow())
	s.publish(events.Event{Type: events.EventBoardRestored, Column: -1, Value: b.RowCount()})
	return nil
}

// Export formats the row and copies it. When copying fails the formatted text is
// still returned alongside an error wrapping ErrCopyFailed.
func (s *service) Export(ctx context.Context, id types.RowID) (ExportResult, error) {
	text, err := s.FormatRowForExport(ctx, id)
	if err != nil {
		return ExportResult{}, err
	}

	result := ExportResult{RowID: id, Text: text}
	if s.clip == nil {
		return result, fmt.Errorf("%w: %w", ErrCopyFailed, clipboard.ErrNoCopier)
	}

	method, err := s.clip.Copy(text)
	if err != nil {
		s.logger.WarnContext(ctx, "clipboard copy failed", "row_id", id, "error", err)
		return result, fmt.Errorf("%w: %w", ErrCopyFailed, err)
	}

	result.Method = method
	s.logger.InfoContext(ctx, "row exported", "row_id", id, "method", string(method))
	s.publish(events.Event{Type: events.EventRowExported, RowID: id, Column: -1, Text: text})
	return result, nil
}

func (s *service) logFailure(ctx context.Context, op string, id types.RowID, err error) {
	s.logger.WarnContext(ctx, op+" failed", "row_id", id, "error", err)
}

// publish sends an event; failures are logged and never undo the mutation
func (s *service) publish(event events.Event) {
	if s.eventClient == nil {
		return
	}
	if err := s.eventClient.SendEvent(event); err != nil {
		s.logger.Warn("failed to send board event", "event_type", event.Type, "row_id", event.RowID, "error", err)
	}
}
