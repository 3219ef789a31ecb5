package web

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionIdle is how long an unused page session is kept
const DefaultSessionIdle = 30 * time.Minute

// maxSessions bounds the registry; the least recently seen session goes first
const maxSessions = 10000

type session struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Sessions maps browser session IDs to their controllers
type Sessions struct {
	api     WeatherFetcher
	idleTTL time.Duration

	mu    sync.Mutex
	items map[string]*session
	now   func() time.Time
}

// NewSessions creates a session registry whose controllers share api
func NewSessions(api WeatherFetcher, idleTTL time.Duration) *Sessions {
	if idleTTL <= 0 {
		idleTTL = DefaultSessionIdle
	}
	return &Sessions{
		api:     api,
		idleTTL: idleTTL,
		items:   make(map[string]*session),
		now:     time.Now,
	}
}

// Get returns the controller for id. Unknown, expired or empty IDs get a new
// session; the returned ID is the one the caller should hand back to the browser.
func (s *Sessions) Get(id string) (string, *Controller) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.prune(now)

	if sess, ok := s.items[id]; ok && id != "" {
		sess.lastSeen = now
		return id, sess.ctrl
	}

	if len(s.items) >= maxSessions {
		s.evictOldest()
	}

	id = uuid.NewString()
	sess := &session{ctrl: NewController(s.api), lastSeen: now}
	s.items[id] = sess
	return id, sess.ctrl
}

// Lookup returns the controller for an existing session without creating one
func (s *Sessions) Lookup(id string) (*Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess, ok := s.items[id]
	if !ok || now.Sub(sess.lastSeen) > s.idleTTL {
		return nil, false
	}
	sess.lastSeen = now
	return sess.ctrl, true
}

// Len returns the number of live sessions
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Sessions) prune(now time.Time) {
	for id, sess := range s.items {
		if now.Sub(sess.lastSeen) > s.idleTTL {
			delete(s.items, id)
		}
	}
}

func (s *Sessions) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, sess := range s.items {
		if oldestID == "" || sess.lastSeen.Before(oldest) {
			oldestID, oldest = id, sess.lastSeen
		}
	}
	delete(s.items, oldestID)
}
