package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/projtrack-go/config"
)

// newGuardedServer wraps a probe handler with the JWT middleware and reports
// the user id the middleware injected.
func newGuardedServer(cfg *config.AuthConfig) http.Handler {
	mw := JWTMiddleware(cfg)
	return mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := GetUserIDFromContext(r.Context())
		WriteJSON(w, http.StatusOK, map[string]string{"user_id": userID})
	}))
}

func signToken(t *testing.T, secret, userID string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTMiddleware(t *testing.T) {
	cfg := &config.AuthConfig{JWTSecret: "test-secret", TokenDuration: time.Hour}
	handler := newGuardedServer(cfg)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc123", http.StatusUnauthorized},
		{"malformed token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", "u1", time.Hour), http.StatusUnauthorized},
		{"expired token", "Bearer " + signToken(t, "test-secret", "u1", -time.Minute), http.StatusUnauthorized},
		{"missing user id claim", "Bearer " + signToken(t, "test-secret", "", time.Hour), http.StatusUnauthorized},
		{"valid token", "Bearer " + signToken(t, "test-secret", "u1", time.Hour), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusUnauthorized {
				// Every failure has the standard {message} body.
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.NotEmpty(t, body["message"])
			}
		})
	}
}

func TestJWTMiddleware_InjectsUserID(t *testing.T) {
	cfg := &config.AuthConfig{JWTSecret: "test-secret", TokenDuration: time.Hour}
	handler := newGuardedServer(cfg)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "user-42", time.Hour))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "user-42", body["user_id"])
}
