package mocks

import (
	"context"

	"github.com/taskwell/taskboard-api/internal/domain"
	"github.com/taskwell/taskboard-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing. Each method records
// whether it was called and with what arguments, and returns either the
// configured function's result or the default fields.
type MockTaskStore struct {
	InsertFn func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	ListFn   func(ctx context.Context, q store.ListQuery) (*store.TaskPage, error)
	UpdateFn func(ctx context.Context, id int64, patch store.TaskPatch) (*domain.Task, error)

	InsertCalled bool
	ListCalled   bool
	UpdateCalled bool

	LastInserted *domain.Task
	LastQuery    store.ListQuery
	LastUpdateID int64
	LastPatch    store.TaskPatch

	Task *domain.Task
	Page *store.TaskPage
	Err  error
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// Insert implements the store.TaskStore interface.
func (m *MockTaskStore) Insert(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	m.InsertCalled = true
	m.LastInserted = task
	if m.InsertFn != nil {
		return m.InsertFn(ctx, task)
	}
	return m.Task, m.Err
}

// List implements the store.TaskStore interface.
func (m *MockTaskStore) List(ctx context.Context, q store.ListQuery) (*store.TaskPage, error) {
	m.ListCalled = true
	m.LastQuery = q
	if m.ListFn != nil {
		return m.ListFn(ctx, q)
	}
	return m.Page, m.Err
}

// Update implements the store.TaskStore interface.
func (m *MockTaskStore) Update(ctx context.Context, id int64, patch store.TaskPatch) (*domain.Task, error) {
	m.UpdateCalled = true
	m.LastUpdateID = id
	m.LastPatch = patch
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}
	return m.Task, m.Err
}
