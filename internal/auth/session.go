package auth

import (
	"sync"
	"time"
)

// SessionRegistry tracks live session IDs so logout and expiry actually
// invalidate tokens instead of relying on clients to forget them.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]time.Time
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]time.Time)}
}

func (r *SessionRegistry) Add(sessionID string, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionID] = expiresAt
}

// Active reports whether the session exists and has not expired.
// Expired entries are pruned on sight.
func (r *SessionRegistry) Active(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	expiresAt, ok := r.sessions[sessionID]
	if !ok {
		return false
	}
	if time.Now().After(expiresAt) {
		delete(r.sessions, sessionID)
		return false
	}
	return true
}

func (r *SessionRegistry) Revoke(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}
