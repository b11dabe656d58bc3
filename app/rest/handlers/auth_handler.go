package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"slidealbum-service/app/domain"
	"slidealbum-service/app/driver/session"
	"slidealbum-service/app/port"
	custommw "slidealbum-service/app/rest/middleware"
	apperrors "slidealbum-service/app/utils/errors"
	"slidealbum-service/app/utils/validator"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase port.AuthUsecase
	validator   *validator.Validator
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator.New(),
		logger:      logger.With("component", "auth_handler"),
	}
}

// LoginRequest carries the credentials forwarded to the external service.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SuccessResponse is the generic success body.
type SuccessResponse struct {
	Message string `json:"message"`
}

// Login authenticates the credentials and establishes a session. The
// response carries the identity; the session handle rides only in the
// HttpOnly cookie, never in the body.
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidRequest.WithDetails("request body could not be parsed")
	}
	if err := h.validator.Validate(&req); err != nil {
		return apperrors.ErrInvalidRequest.WithDetails(err.Error())
	}

	handle, err := session.NewHandle()
	if err != nil {
		h.logger.Error("could not mint session handle", "error", err)
		return apperrors.NewInternalError(err)
	}

	sc, err := h.authUsecase.Login(ctx, handle, req.Username, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(custommw.NewSessionCookie(handle))

	h.logger.Info("login succeeded",
		"username", sc.Identity.Username,
		"ip", c.RealIP())
	return c.JSON(http.StatusOK, sc)
}

// Logout clears the session. The cookie is expired regardless of whether
// the external service confirmed the revocation.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	handle, _ := c.Get(custommw.ContextKeyHandle).(string)
	err := h.authUsecase.Logout(ctx, handle)
	c.SetCookie(custommw.ExpiredSessionCookie())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "logout successful"})
}

// Session echoes the authenticated caller's identity.
func (h *AuthHandler) Session(c echo.Context) error {
	sc, ok := c.Get(custommw.ContextKeySession).(domain.SessionContext)
	if !ok {
		return apperrors.ErrUnauthorized
	}
	return c.JSON(http.StatusOK, sc)
}
