// Package store defines the persistence boundary of the service.
// The core layers depend only on the interfaces and types here; the
// concrete implementation lives in internal/platform/postgres.
package store

import (
	"context"

	"github.com/taskwell/taskboard-api/internal/domain"
)

// DefaultPageSize is the fixed number of tasks returned per listing page.
const DefaultPageSize = 20

// ListQuery describes a listing request after normalization by the service
// layer. Page is 1-based. Sort and Order are requested values and may carry
// anything the client sent; implementations normalize unknown values to the
// username/ascending defaults rather than rejecting them.
type ListQuery struct {
	Page  int
	Sort  string
	Order string
}

// TaskPage is one page of tasks plus the metadata a client needs to page
// further.
type TaskPage struct {
	Tasks      []domain.Task `json:"tasks"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalCount int           `json:"total"`
	TotalPages int           `json:"total_pages"`
}

// TaskPatch is a partial update to a task. Only non-nil fields are applied;
// a patch with neither field set is a no-op write that still returns the
// stored task.
type TaskPatch struct {
	Text      *string
	Completed *bool
}

// IsEmpty reports whether the patch carries no fields to apply.
func (p TaskPatch) IsEmpty() bool {
	return p.Text == nil && p.Completed == nil
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Insert saves a new task and returns it with its store-assigned id.
	// The task must already satisfy domain validation.
	Insert(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// List returns one page of tasks ordered by the requested sort field
	// and direction, with creation order (id) as the stable tie-break.
	// Pages beyond the available data yield an empty task slice, not an error.
	List(ctx context.Context, q ListQuery) (*TaskPage, error)

	// Update applies the non-nil fields of patch to the task with the given
	// id and returns the resulting row. Returns ErrTaskNotFound if no task
	// has that id.
	Update(ctx context.Context, id int64, patch TaskPatch) (*domain.Task, error)
}
