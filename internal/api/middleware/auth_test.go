package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwell/taskboard-api/internal/mocks"
	"github.com/taskwell/taskboard-api/internal/service/auth"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		authHeader       string
		validateErr      error
		claims           *auth.Claims
		expectedStatus   int
		expectedUsername string
	}{
		{
			name:             "valid token",
			authHeader:       "Bearer valid-token",
			claims:           &auth.Claims{Role: "admin", Username: "admin"},
			expectedStatus:   http.StatusOK,
			expectedUsername: "admin",
		},
		{
			name:           "missing auth header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "no bearer prefix",
			authHeader:     "valid-token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty token after prefix",
			authHeader:     "Bearer ",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer expired-token",
			validateErr:    auth.ErrExpiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer invalid-token",
			validateErr:    auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{
				ValidateErr: tt.validateErr,
				Claims:      tt.claims,
			}
			mw := NewAuthMiddleware(jwtService)

			var capturedUsername string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if username, ok := GetUsername(r); ok {
					capturedUsername = username
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPatch, "/api/tasks/5", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			mw.Authenticate(next).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedUsername, capturedUsername)
			} else {
				// Every failure mode collapses to the same response body.
				var body map[string]string
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				assert.Equal(t, map[string]string{"error": "unauthorized"}, body)
			}
		})
	}
}

func TestGetUsername_MissingFromContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	username, ok := GetUsername(req)
	assert.False(t, ok)
	assert.Empty(t, username)
}
