package reminder

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Notification is the payload handed to a Dispatcher when a reminder fires.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Dispatcher delivers a fired reminder to a user. Delivery guarantees are
// the dispatcher's concern, not the scheduler's.
type Dispatcher interface {
	Dispatch(userID int, n Notification) error
}

type pendingReminder struct {
	timer  *time.Timer
	userID int
	fireAt time.Time
}

// Scheduler owns the map of reminder id -> pending timer. Arming an id
// that is already pending replaces the previous timer. The zero value is
// not usable; construct with NewScheduler.
type Scheduler struct {
	mu         sync.Mutex
	pending    map[string]pendingReminder
	dispatcher Dispatcher
}

func NewScheduler(d Dispatcher) *Scheduler {
	return &Scheduler{
		pending:    make(map[string]pendingReminder),
		dispatcher: d,
	}
}

// Arm schedules a notification for id after delay and returns the
// resolved fire time. A non-positive delay fires immediately.
func (s *Scheduler) Arm(id string, userID int, delay time.Duration, n Notification) time.Time {
	fireAt := time.Now().Add(delay)

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.pending[id]; ok {
		prev.timer.Stop()
	}

	timer := time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.pending, id)
		s.mu.Unlock()

		if err := s.dispatcher.Dispatch(userID, n); err != nil {
			log.Error().Err(err).Str("reminder_id", id).Int("user_id", userID).Msg("reminder dispatch failed")
		}
	})
	s.pending[id] = pendingReminder{timer: timer, userID: userID, fireAt: fireAt}

	return fireAt
}

// Cancel stops a pending reminder. Returns false if nothing was pending
// under that id.
func (s *Scheduler) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[id]
	if !ok {
		return false
	}
	p.timer.Stop()
	delete(s.pending, id)
	return true
}

func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, p := range s.pending {
		p.timer.Stop()
		delete(s.pending, id)
	}
}

// Pending returns the ids of reminders that have not fired yet.
func (s *Scheduler) Pending() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	return ids
}
