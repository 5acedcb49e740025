// Package shared holds request/response helpers common to all API handlers.
package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse defines the standard error response structure. Error carries
// a fixed machine-readable code per operation; internal detail never reaches
// the client.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method)
	}
}

// RespondWithError writes a JSON error response with the given status code
// and error code.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, code string) {
	RespondWithJSON(w, r, status, ErrorResponse{Error: code})
}

// RespondWithErrorAndLog writes a JSON error response carrying only the
// fixed error code, and logs the underlying error. Server errors log at
// ERROR level, client errors at DEBUG.
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	attrs := []slog.Attr{
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("error_code", code),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	slog.LogAttrs(r.Context(), level, "API error response", attrs...)

	RespondWithError(w, r, status, code)
}
