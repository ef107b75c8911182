package events

import (
	"errors"
	"time"
)

// Handler receives events from a Bus
type Handler func(Event) error

// Bus is a synchronous in-process publisher. Handlers run in the sender's goroutine
// in subscription order, so a Bus shares the single-writer discipline of the board
// it reports on and needs no locking.
type Bus struct {
	handlers []Handler
	sequence int64
	closed   bool
	now      func() time.Time
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{now: time.Now}
}

// Subscribe registers a handler for every subsequent event
func (b *Bus) Subscribe(h Handler) {
	if h == nil {
		return
	}
	b.handlers = append(b.handlers, h)
}

// SendEvent stamps the event and delivers it to every handler. All handlers run even
// when some fail; their errors are joined.
func (b *Bus) SendEvent(event Event) error {
	if b.closed {
		return ErrClosed
	}

	b.sequence++
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}

	var errs []error
	for _, h := range b.handlers {
		if err := h(event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close stops delivery and drops all handlers
func (b *Bus) Close() error {
	b.closed = true
	b.handlers = nil
	return nil
}
