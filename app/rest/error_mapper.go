package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "slidealbum-service/app/utils/errors"
)

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// NewErrorMapper returns the central Echo error handler. Application errors
// map to their status and code; anything unrecognized becomes a bare 500
// with the detail only in the log.
func NewErrorMapper(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := ErrorBody{
			Error: "internal server error",
			Code:  string(apperrors.ErrCodeInternalError),
		}

		var appErr *apperrors.AppError
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			status = appErr.StatusCode
			body.Error = appErr.Message
			body.Code = string(appErr.Code)
			if appErr.Details != "" {
				body.Error = appErr.Message + ": " + appErr.Details
			}
		case errors.As(err, &httpErr):
			status = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				body.Error = msg
			} else {
				body.Error = http.StatusText(status)
			}
			body.Code = codeForStatus(status)
		default:
			logger.Error("unhandled error", "path", c.Request().URL.Path, "error", err)
		}

		if status == http.StatusInternalServerError {
			logger.Error("request failed",
				"path", c.Request().URL.Path,
				"method", c.Request().Method,
				"status", status,
				"error", err)
			// Internal detail never leaves the process.
			body.Error = "internal server error"
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return string(apperrors.ErrCodeNotFound)
	case http.StatusUnauthorized:
		return string(apperrors.ErrCodeUnauthorized)
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		return string(apperrors.ErrCodeInvalidRequest)
	case http.StatusTooManyRequests:
		return string(apperrors.ErrCodeRateLimitExceeded)
	default:
		return string(apperrors.ErrCodeInternalError)
	}
}
