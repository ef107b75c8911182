package events

// EventPublisher defines the interface for sending board events.
// Services depend on this behaviour rather than on the concrete Bus.
type EventPublisher interface {
	// SendEvent delivers an event to all interested parties
	SendEvent(event Event) error

	// Close releases the publisher; later sends fail with ErrClosed
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
