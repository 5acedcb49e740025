package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskwell/taskboard-api/internal/config"
)

// CredentialVerifier validates login attempts against the single configured
// credential pair. The plaintext password is bcrypt-hashed at construction
// and never held in memory afterwards.
type CredentialVerifier struct {
	username     string
	passwordHash []byte
}

// NewCredentialVerifier creates a verifier for the configured admin
// credentials.
func NewCredentialVerifier(cfg config.AuthConfig) (*CredentialVerifier, error) {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil, fmt.Errorf("admin credentials must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	return &CredentialVerifier{
		username:     cfg.AdminUsername,
		passwordHash: hash,
	}, nil
}

// Verify checks a login attempt. Every failure, including empty input and
// unknown usernames, returns ErrInvalidCredentials so callers cannot tell
// which part was wrong. The password is always compared, even for unknown
// usernames, to keep the failure timing uniform.
func (v *CredentialVerifier) Verify(username, password string) error {
	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password))

	if !usernameMatch || passwordErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}
