package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go -package=mocks

import (
	"context"

	"slidealbum-service/app/domain"
)

// AuthUsecase defines authentication business logic
type AuthUsecase interface {
	// Login authenticates against the external service and, on success,
	// establishes a session context for the given handle.
	Login(ctx context.Context, handle, username, password string) (*domain.SessionContext, error)

	// Logout revokes the token with the external service and clears the
	// local session. The local session is cleared even when revocation
	// cannot be confirmed.
	Logout(ctx context.Context, handle string) error

	// CurrentSession resolves the session bound to the handle and verifies
	// its token with the external service. An invalid token clears the
	// session and yields an unauthorized error.
	CurrentSession(ctx context.Context, handle string) (*domain.SessionContext, error)
}

// AuthGateway translates external authentication service responses into
// domain types.
type AuthGateway interface {
	// Login returns the session context for valid credentials,
	// ErrInvalidCredentials for a 401, ErrMalformedAuthResponse for an
	// unusable 200 payload and ErrAuthServiceUnavailable otherwise.
	Login(ctx context.Context, username, password string) (*domain.SessionContext, error)

	// Logout asks the service to revoke the token. A non-confirmed
	// revocation is an error; callers decide how much to care.
	Logout(ctx context.Context, token string) error

	// Validate reports whether the token is still attested as valid.
	// Transport failures count as invalid.
	Validate(ctx context.Context, token string) bool
}
