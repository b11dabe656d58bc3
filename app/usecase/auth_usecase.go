package usecase

import (
	"context"
	"log/slog"

	"slidealbum-service/app/domain"
	"slidealbum-service/app/port"
	apperrors "slidealbum-service/app/utils/errors"
)

// AuthUseCase implements the session-bound authentication flow: the
// external service attests credentials and tokens, the session store binds
// the resulting identity to the caller's transport session.
type AuthUseCase struct {
	gateway  port.AuthGateway
	sessions port.SessionStore
	logger   *slog.Logger
}

// NewAuthUseCase creates a new AuthUseCase instance
func NewAuthUseCase(gateway port.AuthGateway, sessions port.SessionStore, logger *slog.Logger) *AuthUseCase {
	return &AuthUseCase{
		gateway:  gateway,
		sessions: sessions,
		logger:   logger.With("component", "auth_usecase"),
	}
}

var _ port.AuthUsecase = (*AuthUseCase)(nil)

// Login authenticates the credentials and establishes the session context
// for the handle. Establishing replaces any previous context for the same
// handle.
func (uc *AuthUseCase) Login(ctx context.Context, handle, username, password string) (*domain.SessionContext, error) {
	sc, err := uc.gateway.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	uc.sessions.Establish(handle, *sc)

	uc.logger.Info("session established",
		"username", sc.Identity.Username,
		"customers", len(sc.Identity.Customers))
	return sc, nil
}

// Logout revokes the token with the external service and clears the local
// session. The local session is cleared even when the service cannot
// confirm revocation; a stale local context must not survive a logout.
func (uc *AuthUseCase) Logout(ctx context.Context, handle string) error {
	sc, ok := uc.sessions.Current(handle)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	err := uc.gateway.Logout(ctx, sc.Token)
	uc.sessions.Clear(handle)
	if err != nil {
		uc.logger.Warn("token revocation not confirmed, local session cleared anyway",
			"username", sc.Identity.Username,
			"error", err)
		return nil
	}

	uc.logger.Info("session closed", "username", sc.Identity.Username)
	return nil
}

// CurrentSession resolves and revalidates the session bound to the handle.
// Validation calls through to the external service on every request; a
// token that fails validation clears the binding so it cannot be retried.
func (uc *AuthUseCase) CurrentSession(ctx context.Context, handle string) (*domain.SessionContext, error) {
	sc, ok := uc.sessions.Current(handle)
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}

	if !uc.gateway.Validate(ctx, sc.Token) {
		uc.sessions.Clear(handle)
		uc.logger.Info("session token no longer valid, binding cleared",
			"username", sc.Identity.Username)
		return nil, apperrors.ErrUnauthorized.WithDetails("session is invalid or expired")
	}

	return &sc, nil
}
