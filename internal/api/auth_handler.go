// Package api provides HTTP handlers for the API.
package api

import (
	"net/http"

	"github.com/taskwell/taskboard-api/internal/api/shared"
	"github.com/taskwell/taskboard-api/internal/platform/logger"
	"github.com/taskwell/taskboard-api/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	credentials *auth.CredentialVerifier
	jwtService  auth.JWTService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(credentials *auth.CredentialVerifier, jwtService auth.JWTService) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		jwtService:  jwtService,
	}
}

// Login handles POST /api/login. A matching credential pair yields a signed
// session token; every other outcome, including undecodable bodies and
// missing fields, is the same invalid_credentials response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, ErrCodeInvalidCredentials)
		return
	}

	if err := h.credentials.Verify(req.Username, req.Password); err != nil {
		log.Debug("login rejected", "username", req.Username)
		shared.RespondWithError(w, r, http.StatusUnauthorized, ErrCodeInvalidCredentials)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), req.Username)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, ErrCodeFailedToLogin, err)
		return
	}

	log.Info("login succeeded", "username", req.Username)
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{Token: token})
}
