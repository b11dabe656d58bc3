package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeInvalidCredentials, http.StatusUnauthorized},
		{ErrCodeSessionNotFound, http.StatusUnauthorized},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeConflict, http.StatusConflict},
		{ErrCodeInvalidRequest, http.StatusBadRequest},
		{ErrCodeMissingField, http.StatusBadRequest},
		{ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{ErrCodeAuthServiceUnavailable, http.StatusServiceUnavailable},
		{ErrCodeMalformedAuthResponse, http.StatusInternalServerError},
		{ErrCodeStorageError, http.StatusInternalServerError},
		{ErrCodeConfigError, http.StatusInternalServerError},
		{ErrCodeInternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.code, "msg").StatusCode)
		})
	}
}

func TestAppError_IsMatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("login failed: %w", ErrInvalidCredentials)

	assert.True(t, errors.Is(wrapped, ErrInvalidCredentials))
	assert.False(t, errors.Is(wrapped, ErrUnauthorized))

	// A fresh error with the same code still matches the sentinel.
	assert.True(t, errors.Is(New(ErrCodeNotFound, "gone"), ErrNotFound))
}

func TestAppError_WithDetailsClones(t *testing.T) {
	detailed := ErrUnauthorized.WithDetails("session is invalid or expired")

	assert.Equal(t, "session is invalid or expired", detailed.Details)
	assert.Empty(t, ErrUnauthorized.Details)
	assert.Equal(t, ErrUnauthorized.Code, detailed.Code)
	assert.True(t, errors.Is(detailed, ErrUnauthorized))
}

func TestAppError_WithCauseClones(t *testing.T) {
	cause := errors.New("connection refused")
	wrapped := ErrAuthServiceUnavailable.WithCause(cause)

	assert.ErrorIs(t, wrapped, cause)
	assert.NoError(t, ErrAuthServiceUnavailable.Unwrap())
	assert.Contains(t, wrapped.Error(), "connection refused")
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeConflict, GetErrorCode(ErrConflict))
	assert.Equal(t, ErrCodeConflict, GetErrorCode(fmt.Errorf("create: %w", ErrConflict)))
	assert.Equal(t, ErrCodeInternalError, GetErrorCode(errors.New("plain")))
}

func TestGetHTTPStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetHTTPStatusCode(NewNotFound()))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatusCode(errors.New("plain")))
}

func TestNewMissingField(t *testing.T) {
	err := NewMissingField("title")

	assert.Equal(t, ErrCodeMissingField, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Contains(t, err.Message, "title")
}

func TestNewNotFound_ConstantShape(t *testing.T) {
	a := NewNotFound()
	b := NewNotFound()

	require.Equal(t, a.Error(), b.Error())
	assert.Empty(t, a.Details)
	assert.NotContains(t, a.Message, "customer")
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageError(cause)

	assert.Equal(t, ErrCodeStorageError, err.Code)
	assert.ErrorIs(t, err, cause)
	assert.True(t, errors.Is(err, ErrStorageError))
}
