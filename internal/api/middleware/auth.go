// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/taskwell/taskboard-api/internal/api/shared"
	"github.com/taskwell/taskboard-api/internal/platform/logger"
	"github.com/taskwell/taskboard-api/internal/service/auth"
)

// usernameContextKey is a private type for the authenticated-username
// context key to avoid collisions.
type usernameContextKey struct{}

var usernameKey usernameContextKey

// ErrCodeUnauthorized is the fixed error code for every auth failure.
// Missing header, bad format, invalid signature, and expiry are deliberately
// indistinguishable in the response.
const ErrCodeUnauthorized = "unauthorized"

// AuthMiddleware provides JWT authentication for protected routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// Authenticate validates the bearer token from the Authorization header and
// adds the authenticated username to the request context. It runs before the
// wrapped handler, so on a protected route auth is checked before any of the
// handler's own validation (a bad token with a bad task id yields 401, not
// 400).
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, ErrCodeUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, ErrCodeUnauthorized)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			logger.FromContext(r.Context()).Debug("rejected bearer token",
				"error", err,
				"path", r.URL.Path)
			shared.RespondWithError(w, r, http.StatusUnauthorized, ErrCodeUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), usernameKey, claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUsername extracts the authenticated username from the request context.
// Returns the username and a boolean indicating if it was found.
func GetUsername(r *http.Request) (string, bool) {
	username, ok := r.Context().Value(usernameKey).(string)
	return username, ok
}
