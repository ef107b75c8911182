package events_test

import (
	"github.com/thenoetrevino/tally/internal/events"
)

// MockEventPublisher records all published events for verification in tests.
type MockEventPublisher struct {
	SentEvents  []events.Event
	CloseCalled bool
}

// NewMockEventPublisher creates a new mock event publisher.
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{SentEvents: []events.Event{}}
}

// SendEvent records the event for later verification.
func (m *MockEventPublisher) SendEvent(event events.Event) error {
	m.SentEvents = append(m.SentEvents, event)
	return nil
}

// Close records that Close was called.
func (m *MockEventPublisher) Close() error {
	m.CloseCalled = true
	return nil
}

var _ events.EventPublisher = (*MockEventPublisher)(nil)
