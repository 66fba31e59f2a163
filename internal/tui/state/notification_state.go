package state

// NotificationLevel represents the severity of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelError represents error notifications
	LevelError
)

// Notification is a single status-line message.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the message shown in the status line.
// Only the latest notification is kept; any key press clears it.
type NotificationState struct {
	current *Notification
}

// NewNotificationState creates an empty NotificationState.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add replaces the current notification.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.current = &Notification{Level: level, Message: message}
}

// Clear removes the current notification.
func (s *NotificationState) Clear() {
	s.current = nil
}

// Current returns the current notification, or nil.
func (s *NotificationState) Current() *Notification {
	return s.current
}

// HasAny returns true if a notification is showing.
func (s *NotificationState) HasAny() bool {
	return s.current != nil
}
