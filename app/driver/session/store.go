// Package session keeps the binding between transport-level session handles
// and authenticated session contexts in memory. It is safe for concurrent
// use and primarily intended for single-instance deployments; the handle is
// an unforgeable random value minted at login and carried in a cookie.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"

	"slidealbum-service/app/domain"
	"slidealbum-service/app/port"
)

const handleBytes = 32

// MemoryStore is an in-memory SessionStore implementation.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.SessionContext
}

// NewMemoryStore constructs an in-memory store implementation.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]domain.SessionContext)}
}

var _ port.SessionStore = (*MemoryStore)(nil)

// Establish creates or replaces the session context bound to handle. The
// replacement is atomic with respect to concurrent readers: they observe
// either the previous or the new context in full.
func (s *MemoryStore) Establish(handle string, sc domain.SessionContext) {
	s.mu.Lock()
	s.sessions[handle] = sc
	s.mu.Unlock()
}

// Current returns the session context bound to handle.
func (s *MemoryStore) Current(handle string) (domain.SessionContext, bool) {
	s.mu.RLock()
	sc, ok := s.sessions[handle]
	s.mu.RUnlock()
	return sc, ok
}

// Clear removes the binding for handle; idempotent.
func (s *MemoryStore) Clear(handle string) {
	s.mu.Lock()
	delete(s.sessions, handle)
	s.mu.Unlock()
}

// IsEstablished reports whether a context is bound to handle.
func (s *MemoryStore) IsEstablished(handle string) bool {
	s.mu.RLock()
	_, ok := s.sessions[handle]
	s.mu.RUnlock()
	return ok
}

// NewHandle mints a cryptographically random session handle.
func NewHandle() (string, error) {
	buf := make([]byte, handleBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session handle: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
