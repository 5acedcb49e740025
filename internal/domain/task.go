package domain

import (
	"errors"
	"time"
)

// Common validation errors returned before any store interaction.
var (
	// ErrMissingRequiredField is returned when a task is created without
	// a username, email, or text.
	ErrMissingRequiredField = errors.New("username, email and text are required")

	// ErrInvalidID is returned when a task id is not a positive integer.
	ErrInvalidID = errors.New("task id must be a positive integer")
)

// Task represents a single item on the task board.
// The ID is assigned by the store on creation and never changes afterwards.
type Task struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Completed bool      `json:"completed"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTask creates a new Task with the given owner and text.
// The id is left at zero for the store to assign.
// Returns an error if any required field is empty.
func NewTask(username, email, text string) (*Task, error) {
	task := &Task{
		Username:  username,
		Email:     email,
		Text:      text,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks that the task carries all fields required at creation.
func (t *Task) Validate() error {
	if t.Username == "" || t.Email == "" || t.Text == "" {
		return ErrMissingRequiredField
	}
	return nil
}
