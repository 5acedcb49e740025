package api

import (
	"errors"
	"net/http"

	"github.com/taskwell/taskboard-api/internal/domain"
	"github.com/taskwell/taskboard-api/internal/service/auth"
	"github.com/taskwell/taskboard-api/internal/store"
)

// Fixed error codes returned to clients. One code per failure class and
// operation; internal error detail stays in the logs.
const (
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeFailedToLogin      = "failed_to_login"
	ErrCodeFailedToList       = "failed_to_list"
	ErrCodeFieldsRequired     = "username_email_text_required"
	ErrCodeFailedToCreate     = "failed_to_create"
	ErrCodeInvalidID          = "invalid_id"
	ErrCodeNotFound           = "not_found"
	ErrCodeFailedToUpdate     = "failed_to_update"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes based on
// the error type. Unmapped errors are reported as internal server errors.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrMissingRequiredField),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	case store.IsNotFoundError(err):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
