package state

import (
	"beforeafter/models"
	"sync"
)

// AppState holds per-process runtime state: the admin notice queue. Notices
// are appended by save paths and drained by the next page render.
type AppState struct {
	notices []models.Notice
	sync.RWMutex
}

// Global is the shared application state instance
var Global = &AppState{}

// PushNotice queues a notice for the next admin page render.
func (s *AppState) PushNotice(level, message string) {
	s.Lock()
	defer s.Unlock()
	s.notices = append(s.notices, models.Notice{Level: level, Message: message})
}

// DrainNotices returns queued notices and empties the queue.
func (s *AppState) DrainNotices() []models.Notice {
	s.Lock()
	defer s.Unlock()

	out := s.notices
	s.notices = nil
	return out
}

// NoticeCount returns the number of queued notices.
func (s *AppState) NoticeCount() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.notices)
}
