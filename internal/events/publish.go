package events

import (
	"errors"
	"log/slog"
	"time"
)

// RetryPolicy resends events to a publisher that can fail transiently. Board events
// are informational: a publish that still fails after the last attempt is logged and
// reported, never rolled back into the board.
type RetryPolicy struct {
	Attempts  int
	BaseDelay time.Duration // doubled after every failed attempt

	Sleep  func(time.Duration) // time.Sleep when nil
	Logger *slog.Logger        // slog.Default() when nil
}

// DefaultRetryPolicy makes three attempts, waiting 50ms then 100ms between them
func DefaultRetryPolicy(logger *slog.Logger) RetryPolicy {
	return RetryPolicy{Attempts: 3, BaseDelay: 50 * time.Millisecond, Logger: logger}
}

// Publish sends event until it is accepted, the publisher reports ErrClosed, or the
// attempts run out. It returns the error of the last attempt. A nil client or a
// policy with no attempts sends nothing.
func (p RetryPolicy) Publish(client EventPublisher, event Event) error {
	if client == nil {
		return nil
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var lastErr error
	delay := p.BaseDelay
	for attempt := 1; attempt <= p.Attempts; attempt++ {
		err := client.SendEvent(event)
		if err == nil {
			if attempt > 1 {
				logger.Debug("event published after retry", "attempt", attempt, "event_type", event.Type, "row_id", event.RowID)
			}
			return nil
		}

		lastErr = err
		if errors.Is(err, ErrClosed) || attempt == p.Attempts {
			break
		}
		logger.Debug("event publish failed, retrying", "attempt", attempt, "retry_delay", delay, "error", err)
		sleep(delay)
		delay *= 2
	}

	if lastErr != nil {
		logger.Warn("event publish failed", "event_type", event.Type, "row_id", event.RowID, "seq", event.SequenceID, "error", lastErr)
	}
	return lastErr
}
