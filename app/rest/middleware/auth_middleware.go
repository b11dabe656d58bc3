package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"slidealbum-service/app/domain"
	"slidealbum-service/app/port"
	apperrors "slidealbum-service/app/utils/errors"
)

// SessionCookieName carries the opaque session handle between requests.
const SessionCookieName = "sa_session"

// Context keys under which the middleware attaches the authenticated caller.
const (
	ContextKeyIdentity = "identity"
	ContextKeySession  = "session_context"
	ContextKeyHandle   = "session_handle"
)

// AuthMiddleware gates protected routes on an established, still-valid
// session. A request that fails any step gets a 401 and never proceeds with
// a degraded identity.
type AuthMiddleware struct {
	authUsecase port.AuthUsecase
	logger      *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_middleware"),
	}
}

// RequireAuth resolves the session handle cookie, revalidates the bound
// token and attaches the identity to the request context. An invalid or
// missing session expires the cookie so clients stop presenting it.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			handle := SessionHandle(c)
			if handle == "" {
				return apperrors.ErrUnauthorized
			}

			sc, err := m.authUsecase.CurrentSession(c.Request().Context(), handle)
			if err != nil {
				m.logger.Info("rejected request with invalid session",
					"path", c.Request().URL.Path,
					"ip", c.RealIP())
				c.SetCookie(ExpiredSessionCookie())
				return err
			}

			c.Set(ContextKeyIdentity, sc.Identity)
			c.Set(ContextKeySession, *sc)
			c.Set(ContextKeyHandle, handle)
			return next(c)
		}
	}
}

// SessionHandle extracts the session handle from the request cookie.
func SessionHandle(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return cookie.Value
}

// IdentityFrom returns the identity attached by RequireAuth.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(ContextKeyIdentity).(domain.Identity)
	return identity, ok
}

// NewSessionCookie builds the HttpOnly cookie carrying the session handle.
// The handle is a random value with no structure; the session store is the
// only party that can resolve it.
func NewSessionCookie(handle string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    handle,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredSessionCookie builds a cookie that deletes the session handle.
func ExpiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
}
