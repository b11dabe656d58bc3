package port

//go:generate mockgen -source=session_port.go -destination=../mocks/mock_session_port.go -package=mocks

import "slidealbum-service/app/domain"

// SessionStore binds transport-level session handles to session contexts.
// It is the single source of truth for "is this caller authenticated".
type SessionStore interface {
	// Establish creates or atomically replaces the context bound to handle.
	Establish(handle string, sc domain.SessionContext)

	// Current returns the context bound to handle, if any.
	Current(handle string) (domain.SessionContext, bool)

	// Clear removes the binding; clearing an unknown handle is a no-op.
	Clear(handle string)

	// IsEstablished reports whether a context is bound to handle.
	IsEstablished(handle string) bool
}
