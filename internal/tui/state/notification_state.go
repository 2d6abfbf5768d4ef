package state

// NotificationLevel picks the banner style of a notification
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelWarning
	LevelError
)

// Notification is one status bar message
type Notification struct {
	Level   NotificationLevel
	Message string
}

// maxNotifications bounds what one key press can queue
const maxNotifications = 8

// NotificationState collects the messages produced by the last key press.
// The status bar shows the newest and how many came before it.
type NotificationState struct {
	queue []Notification
}

func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add queues a message, dropping the oldest past maxNotifications
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.queue = append(s.queue, Notification{Level: level, Message: message})
	if len(s.queue) > maxNotifications {
		s.queue = s.queue[len(s.queue)-maxNotifications:]
	}
}

func (s *NotificationState) Clear() {
	s.queue = nil
}

// Len is the number of queued messages
func (s *NotificationState) Len() int {
	return len(s.queue)
}

// Latest returns the newest message
func (s *NotificationState) Latest() (Notification, bool) {
	if len(s.queue) == 0 {
		return Notification{}, false
	}
	return s.queue[len(s.queue)-1], true
}
