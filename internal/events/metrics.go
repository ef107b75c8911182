package events

import (
	"sync/atomic"
	"time"
)

// Metrics counts the events seen on a bus using atomic operations for thread-safety
type Metrics struct {
	EventsTotal    atomic.Int64
	RowsCreated    atomic.Int64
	RowsRemoved    atomic.Int64
	ScoreChanges   atomic.Int64
	NameChanges    atomic.Int64
	Exports        atomic.Int64
	PublishFailure atomic.Int64
	StartTime      time.Time
}

// NewMetrics creates a new Metrics instance starting at now
func NewMetrics(now time.Time) *Metrics {
	return &Metrics{StartTime: now}
}

// Observe counts e. It has the Handler signature so it can subscribe to a Bus.
func (m *Metrics) Observe(e Event) error {
	m.EventsTotal.Add(1)
	switch e.Type {
	case EventRowCreated:
		m.RowsCreated.Add(1)
	case EventRowRemoved:
		m.RowsRemoved.Add(1)
	case EventScoreChanged:
		m.ScoreChanges.Add(1)
	case EventNameChanged:
		m.NameChanges.Add(1)
	case EventRowExported:
		m.Exports.Add(1)
	}
	return nil
}

// IncPublishFailures counts an event an external publisher could not deliver
func (m *Metrics) IncPublishFailures() {
	m.PublishFailure.Add(1)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	EventsTotal     int64         `json:"events_total"`
	RowsCreated     int64         `json:"rows_created"`
	RowsRemoved     int64         `json:"rows_removed"`
	ScoreChanges    int64         `json:"score_changes"`
	NameChanges     int64         `json:"name_changes"`
	Exports         int64         `json:"exports"`
	PublishFailures int64         `json:"publish_failures"`
	StartTime       time.Time     `json:"start_time"`
	Uptime          time.Duration `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics as of now
func (m *Metrics) GetSnapshot(now time.Time) MetricsSnapshot {
	return MetricsSnapshot{
		EventsTotal:     m.EventsTotal.Load(),
		RowsCreated:     m.RowsCreated.Load(),
		RowsRemoved:     m.RowsRemoved.Load(),
		ScoreChanges:    m.ScoreChanges.Load(),
		NameChanges:     m.NameChanges.Load(),
		Exports:         m.Exports.Load(),
		PublishFailures: m.PublishFailure.Load(),
		StartTime:       m.StartTime,
		Uptime:          now.Sub(m.StartTime),
	}
}

// LogAttrs flattens the snapshot into slog key/value pairs
func (s MetricsSnapshot) LogAttrs() []any {
	return []any{
		"events", s.EventsTotal,
		"rows_created", s.RowsCreated,
		"rows_removed", s.RowsRemoved,
		"score_changes", s.ScoreChanges,
		"name_changes", s.NameChanges,
		"exports", s.Exports,
		"publish_failures", s.PublishFailures,
		"uptime", s.Uptime.String(),
	}
}
