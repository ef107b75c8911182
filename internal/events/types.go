package events

import (
	"time"

	"github.com/thenoetrevino/tally/internal/types"
)

// EventType indicates what kind of change occurred on a board
type EventType string

const (
	EventRowCreated    EventType = "row_created"
	EventRowRemoved    EventType = "row_removed"
	EventNameChanged   EventType = "name_changed"
	EventScoreChanged  EventType = "score_changed"
	EventSumRefreshed  EventType = "sum_refreshed"
	EventRowExported   EventType = "row_exported"
	EventBoardRestored EventType = "board_restored"
)

// Event describes a single completed board mutation.
// Column is -1 when the event concerns a whole row.
type Event struct {
	Type       EventType
	RowID      types.RowID
	Column     int
	Value      int       // New score (new sum when Column is -1), or row count, depending on Type
	Text       string    // New name or export payload
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
