// This file defines the HTTP middleware guarding authenticated routes: it
// verifies the bearer token from the Authorization header and injects the
// caller's identity into the request context.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/projtrack-go/apperror"
	"github.com/user/projtrack-go/config"
)

// ContextKey is a type used for context keys to avoid collisions.
type ContextKey string

// UserIDKey is the key under which the authenticated user's id is stored in
// the request context.
const UserIDKey ContextKey = "userID"

// JWTMiddleware creates a middleware that verifies the token from the
// Authorization header and adds the user id to the context. Any missing,
// malformed, badly signed, or expired token yields a 401.
func JWTMiddleware(cfg *config.AuthConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthError("authorization header is missing", nil))
				return
			}

			// The header must be in the form "Bearer {token}".
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				WriteError(w, r, apperror.NewAuthError("authorization header format must be Bearer {token}", nil))
				return
			}

			tokenString := parts[1]
			claims := &Claims{}

			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil {
				WriteError(w, r, apperror.NewAuthError("invalid token", err))
				return
			}

			if !token.Valid {
				WriteError(w, r, apperror.NewAuthError("invalid token", nil))
				return
			}

			if claims.UserID == "" {
				WriteError(w, r, apperror.NewAuthError("invalid token: user_id claim is missing", nil))
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext retrieves the authenticated user id from the request
// context. Returns "" and false if no identity was attached.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}
