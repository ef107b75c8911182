package state

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications (blue, bell icon)
	LevelInfo NotificationLevel = iota
	// LevelWarning represents warning notifications (yellow, warning icon)
	LevelWarning
	// LevelError represents error notifications (red, error icon)
	LevelError
)

// Notification represents a single notification message with a severity level.
// Seq orders notifications so a timed expiry only removes what it was scheduled for.
type Notification struct {
	Level   NotificationLevel
	Message string
	Seq     int
}

// NotificationState manages notification display state.
type NotificationState struct {
	notifications []Notification
	seq           int
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add adds a new notification and returns its sequence number.
func (s *NotificationState) Add(level NotificationLevel, message string) int {
	s.seq++
	s.notifications = append(s.notifications, Notification{
		Level:   level,
		Message: message,
		Seq:     s.seq,
	})
	return s.seq
}

// Expire removes every notification added at or before seq.
func (s *NotificationState) Expire(seq int) {
	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.Seq > seq {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = nil
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// Latest returns the most recent notification.
func (s *NotificationState) Latest() (Notification, bool) {
	if len(s.notifications) == 0 {
		return Notification{}, false
	}
	return s.notifications[len(s.notifications)-1], true
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}
