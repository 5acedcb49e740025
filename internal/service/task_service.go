// Package service implements the task query and mutation semantics of the
// API, between the HTTP handlers and the persistence boundary.
package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/taskwell/taskboard-api/internal/domain"
	"github.com/taskwell/taskboard-api/internal/platform/logger"
	"github.com/taskwell/taskboard-api/internal/store"
)

// Listing defaults applied when the client omits a parameter.
const (
	DefaultSortField = "username"
	DefaultSortOrder = "asc"
)

// TaskService validates and normalizes task operations before delegating to
// the store. It holds no task state of its own.
type TaskService struct {
	taskStore store.TaskStore
}

// NewTaskService creates a TaskService backed by the given store.
func NewTaskService(taskStore store.TaskStore) *TaskService {
	return &TaskService{taskStore: taskStore}
}

// List returns one page of tasks. The raw query parameters are normalized
// here: any page value that does not parse as a positive integer coerces to
// 1, and missing sort/order fall back to username/ascending. Non-empty sort
// and order values are passed through as requested; the store is responsible
// for normalizing unrecognized ones.
func (s *TaskService) List(ctx context.Context, pageRaw, sortRaw, orderRaw string) (*store.TaskPage, error) {
	q := store.ListQuery{
		Page:  normalizePage(pageRaw),
		Sort:  sortRaw,
		Order: orderRaw,
	}
	if q.Sort == "" {
		q.Sort = DefaultSortField
	}
	if q.Order == "" {
		q.Order = DefaultSortOrder
	}

	page, err := s.taskStore.List(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list tasks",
			"error", err,
			"page", q.Page,
			"sort", q.Sort,
			"order", q.Order)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return page, nil
}

// Create validates the payload and inserts a new task. All three fields must
// be present and non-empty; otherwise domain.ErrMissingRequiredField is
// returned and the store is never touched.
func (s *TaskService) Create(ctx context.Context, username, email, text string) (*domain.Task, error) {
	task, err := domain.NewTask(username, email, text)
	if err != nil {
		return nil, err
	}

	created, err := s.taskStore.Insert(ctx, task)
	if err != nil {
		logger.FromContext(ctx).Error("failed to create task",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return created, nil
}

// Update applies a partial update to the task with the given id. Only fields
// present in the patch change; a patch with no fields is a no-op write that
// still round-trips through the store and returns the stored task. Returns
// domain.ErrInvalidID for non-positive ids without consulting the store, and
// store.ErrTaskNotFound when the id does not exist.
func (s *TaskService) Update(ctx context.Context, id int64, patch store.TaskPatch) (*domain.Task, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}

	updated, err := s.taskStore.Update(ctx, id, patch)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		logger.FromContext(ctx).Error("failed to update task",
			"error", err,
			"task_id", id)
		return nil, fmt.Errorf("failed to update task %d: %w", id, err)
	}

	return updated, nil
}

// normalizePage coerces the raw page parameter to a 1-based page number.
// Absent, non-numeric, zero, and negative values all become page 1.
func normalizePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
