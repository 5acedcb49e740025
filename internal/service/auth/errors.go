// Package auth provides credential verification and JWT session tokens.
package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for every failed login attempt.
	// Unknown username and wrong password are deliberately indistinguishable
	// to prevent credential enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a token is malformed, carries an
	// invalid signature, or fails validation for any reason other than expiry.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token's expiry has elapsed.
	ErrExpiredToken = errors.New("token expired")
)
