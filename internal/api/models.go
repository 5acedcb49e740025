package api

import (
	"encoding/json"

	"github.com/taskwell/taskboard-api/internal/store"
)

// Common request/response structures

// LoginRequest defines the payload for the login endpoint. Presence is the
// only constraint; anything that fails to match the configured credential
// pair collapses to the same invalid_credentials response.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	Token string `json:"token"`
}

// HealthResponse defines the response for the health endpoint.
type HealthResponse struct {
	OK bool `json:"ok"`
}

// CreateTaskRequest defines the payload for task creation.
type CreateTaskRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Text     string `json:"text"     validate:"required"`
}

// UpdateTaskRequest defines the payload for a partial task update. Each
// field is decoded independently from raw JSON: a field that is absent or
// carries a value of the wrong type is simply not part of the patch, never
// an error. Only well-typed, present fields change the stored task.
type UpdateTaskRequest struct {
	Text      json.RawMessage `json:"text"`
	Completed json.RawMessage `json:"completed"`
}

// Patch converts the request into the explicit optional-field patch the
// service layer consumes.
func (r UpdateTaskRequest) Patch() store.TaskPatch {
	var patch store.TaskPatch

	// Decoding into pointers keeps JSON null out of the patch: null leaves
	// the pointer nil while a well-typed value sets it.
	if len(r.Text) > 0 {
		var text *string
		if err := json.Unmarshal(r.Text, &text); err == nil {
			patch.Text = text
		}
	}
	if len(r.Completed) > 0 {
		var completed *bool
		if err := json.Unmarshal(r.Completed, &completed); err == nil {
			patch.Completed = completed
		}
	}

	return patch
}
