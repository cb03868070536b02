package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"database", NewDatabaseError("db", nil), http.StatusInternalServerError},
		{"auth", NewAuthError("no token", nil), http.StatusUnauthorized},
		{"not found", NewNotFoundError("gone", nil), http.StatusNotFound},
		{"validation", NewValidationError("bad input", nil), http.StatusBadRequest},
		{"bad request", NewBadRequestError("bad", nil), http.StatusBadRequest},
		{"internal", NewInternalError("boom", nil), http.StatusInternalServerError},
		{"external service", NewExternalServiceError("mail down", nil), http.StatusInternalServerError},
		{"conflict", NewConflictError("exists", nil), http.StatusConflict},
		{"unknown", NewAppError(UnknownError, "???", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestToResponse_OnlyExposesMessage(t *testing.T) {
	appErr := NewDatabaseError("failed to create user", errors.New("connection refused: 10.0.0.5"))

	body, err := json.Marshal(appErr.ToResponse())
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"failed to create user"}`, string(body))
	assert.NotContains(t, string(body), "10.0.0.5", "underlying detail must not leak")
}

func TestErrorAndUnwrap(t *testing.T) {
	underlying := errors.New("no documents")
	appErr := NewNotFoundError("user not found", underlying)

	assert.Equal(t, "user not found: no documents", appErr.Error())
	assert.ErrorIs(t, appErr, underlying)

	bare := NewBadRequestError("invalid credentials", nil)
	assert.Equal(t, "invalid credentials", bare.Error())
}

func TestFromError(t *testing.T) {
	appErr := NewValidationError("missing title", nil)

	got, ok := FromError(appErr)
	require.True(t, ok)
	assert.Equal(t, appErr, got)

	// Wrapped AppErrors are still recognized.
	wrapped := fmt.Errorf("handler: %w", appErr)
	got, ok = FromError(wrapped)
	require.True(t, ok)
	assert.Equal(t, appErr, got)

	_, ok = FromError(errors.New("plain"))
	assert.False(t, ok)

	_, ok = FromError(nil)
	assert.False(t, ok)
}

func TestTypeCheckers(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("x", nil)))
	assert.False(t, IsNotFound(NewAuthError("x", nil)))
	assert.True(t, IsAuthError(NewAuthError("x", nil)))
	assert.True(t, IsValidationError(NewValidationError("x", nil)))
	assert.True(t, IsBadRequest(NewBadRequestError("x", nil)))
	assert.True(t, IsConflictError(NewConflictError("x", nil)))
	assert.False(t, IsBadRequest(errors.New("plain")))
}
