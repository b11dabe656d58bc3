package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "slidealbum-service/app/utils/errors"
	"slidealbum-service/app/utils/logger"
)

func mapError(t *testing.T, err error) (int, ErrorBody) {
	t.Helper()

	testLogger, lerr := logger.New("debug")
	require.NoError(t, lerr)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/slidealbums", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewErrorMapper(testLogger)(err, c)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestErrorMapper(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found",
			err:        apperrors.NewNotFound(),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "unauthorized",
			err:        apperrors.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "conflict",
			err:        apperrors.ErrConflict,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "invalid credentials",
			err:        apperrors.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
		},
		{
			name:       "auth service unavailable",
			err:        apperrors.ErrAuthServiceUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "AUTH_SERVICE_UNAVAILABLE",
		},
		{
			name:       "rate limited",
			err:        apperrors.ErrRateLimitExceeded,
			wantStatus: http.StatusTooManyRequests,
			wantCode:   "RATE_LIMIT_EXCEEDED",
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusNotFound, "not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "unknown error stays opaque",
			err:        assertAnError{},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := mapError(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}

func TestErrorMapper_InternalDetailIsHidden(t *testing.T) {
	status, body := mapError(t, apperrors.NewStorageError(assertAnError{}))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", body.Error)
	assert.NotContains(t, body.Error, "secret detail")
}

func TestErrorMapper_NotFoundShapeIsConstant(t *testing.T) {
	_, absent := mapError(t, apperrors.NewNotFound())
	_, foreign := mapError(t, apperrors.NewNotFound())
	assert.Equal(t, absent, foreign)
}

type assertAnError struct{}

func (assertAnError) Error() string { return "secret detail" }
