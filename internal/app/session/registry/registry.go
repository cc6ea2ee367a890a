// Package registry keeps the set of live playback sessions.
package registry

import (
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/osa030/mediadeck/internal/app/playback"
)

var (
	ErrUnknownSession = errors.New("unknown session")
	ErrLastSession    = errors.New("cannot close the last session")
)

// Session binds a controller to its engine.
type Session struct {
	Handle     string
	Controller *playback.Controller
	Engine     playback.Engine
	CreatedAt  time.Time

	// Stop terminates the session's dispatch loop (optional).
	Stop func()
}

// SessionRegistry manages sessions with thread-safe access.
// Sessions are kept in creation order.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	order    []string
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*Session),
		order:    make([]string, 0),
	}
}

// Add registers a new session under a fresh handle.
func (r *SessionRegistry) Add(ctrl *playback.Controller, engine playback.Engine) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &Session{
		Handle:     uuid.New().String(),
		Controller: ctrl,
		Engine:     engine,
		CreatedAt:  time.Now(),
	}
	r.sessions[s.Handle] = s
	r.order = append(r.order, s.Handle)
	return s
}

// Get retrieves a session by handle.
func (r *SessionRegistry) Get(handle string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[handle]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSession, "handle %q", handle)
	}
	return s, nil
}

// Remove unregisters a session and returns it.
// The last remaining session cannot be removed.
func (r *SessionRegistry) Remove(handle string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[handle]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSession, "handle %q", handle)
	}
	if len(r.sessions) <= 1 {
		return nil, ErrLastSession
	}

	delete(r.sessions, handle)
	for i, h := range r.order {
		if h == handle {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return s, nil
}

// First returns the oldest live session.
func (r *SessionRegistry) First() (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.order) == 0 {
		return nil, false
	}
	return r.sessions[r.order[0]], true
}

// All returns all sessions in creation order.
func (r *SessionRegistry) All() []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Session, 0, len(r.order))
	for _, h := range r.order {
		result = append(result, r.sessions[h])
	}
	return result
}

// Drain removes and returns every session, ignoring the last-session rule.
// Used on shutdown.
func (r *SessionRegistry) Drain() []*Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*Session, 0, len(r.order))
	for _, h := range r.order {
		result = append(result, r.sessions[h])
	}
	r.sessions = make(map[string]*Session)
	r.order = make([]string, 0)
	return result
}

// Count returns the number of sessions.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
