package events_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/tally/internal/events"
)

func TestBus_DeliversInOrderWithSequence(t *testing.T) {
	bus := events.NewBus()
	first := NewMockEventPublisher()
	second := NewMockEventPublisher()
	bus.Subscribe(first.SendEvent)
	bus.Subscribe(second.SendEvent)

	require.NoError(t, bus.SendEvent(events.Event{Type: events.EventRowCreated, RowID: "row-1"}))
	require.NoError(t, bus.SendEvent(events.Event{Type: events.EventScoreChanged, RowID: "row-1", Column: 2, Value: 4}))

	require.Len(t, first.SentEvents, 2)
	assert.Equal(t, first.SentEvents, second.SentEvents)
	assert.Equal(t, int64(1), first.SentEvents[0].SequenceID)
	assert.Equal(t, int64(2), first.SentEvents[1].SequenceID)
	assert.False(t, first.SentEvents[0].Timestamp.IsZero())
	assert.Equal(t, 4, first.SentEvents[1].Value)
}

func TestBus_JoinsHandlerErrors(t *testing.T) {
	bus := events.NewBus()
	errA := errors.New("a failed")
	rec := NewMockEventPublisher()
	bus.Subscribe(func(events.Event) error { return errA })
	bus.Subscribe(rec.SendEvent)

	err := bus.SendEvent(events.Event{Type: events.EventRowRemoved})

	assert.ErrorIs(t, err, errA)
	assert.Len(t, rec.SentEvents, 1, "later handlers still run")
}

func TestBus_Close(t *testing.T) {
	bus := events.NewBus()
	rec := NewMockEventPublisher()
	bus.Subscribe(rec.SendEvent)
	bus.Subscribe(nil)

	require.NoError(t, bus.Close())
	err := bus.SendEvent(events.Event{Type: events.EventRowCreated})

	assert.ErrorIs(t, err, events.ErrClosed)
	assert.Empty(t, rec.SentEvents)
}
