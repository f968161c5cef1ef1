// services/session_registry.go - In-memory bearer session store
package services

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
)

const sessionTokenBytes = 32

// SessionRegistry maps opaque bearer tokens to user IDs. It lives only
// as long as the process: a restart invalidates every session, which is
// the intended lifecycle. Construct one in main and inject it wherever
// sessions are needed.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]uint
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]uint)}
}

// Issue mints an unguessable token for the user and records it.
func (r *SessionRegistry) Issue(userID uint) (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	r.mu.Lock()
	r.sessions[token] = userID
	r.mu.Unlock()

	return token, nil
}

// Resolve returns the user ID the token was issued to.
func (r *SessionRegistry) Resolve(token string) (uint, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	userID, ok := r.sessions[token]
	return userID, ok
}

// Revoke removes the token. Revoking an unknown token is a no-op, so
// logout is idempotent.
func (r *SessionRegistry) Revoke(token string) {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
}

// Len reports the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
