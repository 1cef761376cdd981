// Package session keeps in-flight quiz attempts in memory. Nothing here
// is durable: an attempt lives for the duration of one quiz run and is
// swept after its TTL expires.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hmiyata/shindan/internal/logger"
	"github.com/hmiyata/shindan/internal/quiz"
)

// Session binds an attempt to its id and serializes access to it. The
// quiz flow itself is single-user and turn-based; the mutex only guards
// against the forward worker touching lead status while a request is in
// flight.
type Session struct {
	ID      string
	Attempt *quiz.Attempt

	mu        sync.Mutex
	touchedAt time.Time
}

// Do runs fn while holding the session lock.
func (s *Session) Do(fn func(a *quiz.Attempt)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.Attempt)
}

// Store holds live sessions keyed by id.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	log      *logger.Logger
}

// NewStore creates a session store whose entries expire after ttl of
// inactivity.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		log:      logger.Default().WithPrefix("session"),
	}
}

// Create registers a new session for a freshly started attempt.
func (st *Store) Create(attempt *quiz.Attempt) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Attempt:   attempt,
		touchedAt: time.Now(),
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	st.log.Debug("session created: id=%s, quiz=%s", s.ID, attempt.Bank().Key)
	return s
}

// Get returns the session with the given id and refreshes its TTL.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, false
	}

	s.mu.Lock()
	s.touchedAt = time.Now()
	s.mu.Unlock()
	return s, true
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep drops sessions idle longer than the TTL and returns how many
// were removed.
func (st *Store) Sweep() int {
	cutoff := time.Now().Add(-st.ttl)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		s.mu.Lock()
		expired := s.touchedAt.Before(cutoff)
		s.mu.Unlock()
		if expired {
			delete(st.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		st.log.Info("swept %d expired sessions, %d live", removed, len(st.sessions))
	}
	return removed
}

// Run sweeps periodically until the context is cancelled.
func (st *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	st.log.Debug("session sweeper started, interval=%v, ttl=%v", interval, st.ttl)
	for {
		select {
		case <-ctx.Done():
			st.log.Debug("session sweeper stopped")
			return
		case <-ticker.C:
			st.Sweep()
		}
	}
}
