package models

import (
	"time"

	"github.com/thenoetrevino/tally/internal/types"
)

// Session is a named, persisted board snapshot
type Session struct {
	ID        types.SessionID
	Name      string
	Owner     string
	Snapshot  Snapshot
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionSummary is the lightweight listing form of a session
type SessionSummary struct {
	ID            types.SessionID `json:"id"`
	Name          string          `json:"name"`
	Owner         string          `json:"owner"`
	ColumnsPerRow int             `json:"columns_per_row"`
	RowCount      int             `json:"row_count"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
