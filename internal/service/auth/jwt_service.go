package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT session tokens.
type JWTService interface {
	// GenerateToken creates a signed session token asserting the given
	// username with the admin role. Returns the token string or an error
	// if signing fails.
	GenerateToken(ctx context.Context, username string) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns ErrExpiredToken if the token's expiry has elapsed, or
	// ErrInvalidToken for any other validation failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the application view of a validated session token.
type Claims struct {
	// Role is the role claim carried by the token. Always "admin" for
	// tokens this service issues; not currently consulted for fine-grained
	// permissions.
	Role string `json:"role"`

	// Username is the authenticated username the token was issued for.
	Username string `json:"username"`

	// Standard registered claims surfaced for callers that need them.
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
