package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwell/taskboard-api/internal/domain"
	"github.com/taskwell/taskboard-api/internal/mocks"
	"github.com/taskwell/taskboard-api/internal/service"
	"github.com/taskwell/taskboard-api/internal/store"
)

func TestTaskService_List_Normalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		pageRaw       string
		sortRaw       string
		orderRaw      string
		expectedQuery store.ListQuery
	}{
		{
			name:          "all absent",
			expectedQuery: store.ListQuery{Page: 1, Sort: "username", Order: "asc"},
		},
		{
			name:          "valid values pass through",
			pageRaw:       "3",
			sortRaw:       "created_at",
			orderRaw:      "desc",
			expectedQuery: store.ListQuery{Page: 3, Sort: "created_at", Order: "desc"},
		},
		{
			name:          "zero page coerces to 1",
			pageRaw:       "0",
			expectedQuery: store.ListQuery{Page: 1, Sort: "username", Order: "asc"},
		},
		{
			name:          "negative page coerces to 1",
			pageRaw:       "-5",
			expectedQuery: store.ListQuery{Page: 1, Sort: "username", Order: "asc"},
		},
		{
			name:          "non-numeric page coerces to 1",
			pageRaw:       "abc",
			expectedQuery: store.ListQuery{Page: 1, Sort: "username", Order: "asc"},
		},
		{
			name:          "unrecognized sort passes through for the store to normalize",
			sortRaw:       "priority",
			orderRaw:      "sideways",
			expectedQuery: store.ListQuery{Page: 1, Sort: "priority", Order: "sideways"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			taskStore := &mocks.MockTaskStore{
				Page: &store.TaskPage{Page: tt.expectedQuery.Page, PageSize: store.DefaultPageSize},
			}
			svc := service.NewTaskService(taskStore)

			_, err := svc.List(context.Background(), tt.pageRaw, tt.sortRaw, tt.orderRaw)
			require.NoError(t, err)
			assert.True(t, taskStore.ListCalled)
			assert.Equal(t, tt.expectedQuery, taskStore.LastQuery)
		})
	}
}

func TestTaskService_List_StoreFailure(t *testing.T) {
	t.Parallel()

	taskStore := &mocks.MockTaskStore{Err: errors.New("connection refused")}
	svc := service.NewTaskService(taskStore)

	page, err := svc.List(context.Background(), "1", "", "")
	assert.Nil(t, page)
	assert.Error(t, err)
}

func TestTaskService_Create(t *testing.T) {
	t.Parallel()

	t.Run("valid payload", func(t *testing.T) {
		t.Parallel()

		created := &domain.Task{ID: 7, Username: "alice", Email: "alice@example.com", Text: "ship it"}
		taskStore := &mocks.MockTaskStore{Task: created}
		svc := service.NewTaskService(taskStore)

		got, err := svc.Create(context.Background(), "alice", "alice@example.com", "ship it")
		require.NoError(t, err)
		assert.Equal(t, created, got)
		require.True(t, taskStore.InsertCalled)
		assert.Equal(t, "alice", taskStore.LastInserted.Username)
		assert.False(t, taskStore.LastInserted.Completed)
	})

	t.Run("missing field performs no store write", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			username string
			email    string
			text     string
		}{
			{name: "no username", username: "", email: "a@example.com", text: "x"},
			{name: "no email", username: "alice", email: "", text: "x"},
			{name: "no text", username: "alice", email: "a@example.com", text: ""},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				taskStore := &mocks.MockTaskStore{}
				svc := service.NewTaskService(taskStore)

				_, err := svc.Create(context.Background(), tt.username, tt.email, tt.text)
				assert.ErrorIs(t, err, domain.ErrMissingRequiredField)
				assert.False(t, taskStore.InsertCalled, "store must not be touched on validation failure")
			})
		}
	})
}

func TestTaskService_Update(t *testing.T) {
	t.Parallel()

	text := "revised"
	completed := true

	t.Run("patch passes through unchanged", func(t *testing.T) {
		t.Parallel()

		updated := &domain.Task{ID: 5, Username: "alice", Text: text, Completed: false}
		taskStore := &mocks.MockTaskStore{Task: updated}
		svc := service.NewTaskService(taskStore)

		got, err := svc.Update(context.Background(), 5, store.TaskPatch{Text: &text})
		require.NoError(t, err)
		assert.Equal(t, updated, got)
		require.True(t, taskStore.UpdateCalled)
		assert.Equal(t, int64(5), taskStore.LastUpdateID)
		require.NotNil(t, taskStore.LastPatch.Text)
		assert.Equal(t, text, *taskStore.LastPatch.Text)
		assert.Nil(t, taskStore.LastPatch.Completed)
	})

	t.Run("completed-only patch", func(t *testing.T) {
		t.Parallel()

		taskStore := &mocks.MockTaskStore{Task: &domain.Task{ID: 5, Completed: true}}
		svc := service.NewTaskService(taskStore)

		_, err := svc.Update(context.Background(), 5, store.TaskPatch{Completed: &completed})
		require.NoError(t, err)
		assert.Nil(t, taskStore.LastPatch.Text)
		require.NotNil(t, taskStore.LastPatch.Completed)
		assert.True(t, *taskStore.LastPatch.Completed)
	})

	t.Run("empty patch still delegates to the store", func(t *testing.T) {
		t.Parallel()

		unchanged := &domain.Task{ID: 5, Username: "alice", Text: "original"}
		taskStore := &mocks.MockTaskStore{Task: unchanged}
		svc := service.NewTaskService(taskStore)

		got, err := svc.Update(context.Background(), 5, store.TaskPatch{})
		require.NoError(t, err)
		assert.Equal(t, unchanged, got)
		assert.True(t, taskStore.UpdateCalled)
	})

	t.Run("non-positive id rejected before the store", func(t *testing.T) {
		t.Parallel()

		for _, id := range []int64{0, -1} {
			taskStore := &mocks.MockTaskStore{}
			svc := service.NewTaskService(taskStore)

			_, err := svc.Update(context.Background(), id, store.TaskPatch{Text: &text})
			assert.ErrorIs(t, err, domain.ErrInvalidID)
			assert.False(t, taskStore.UpdateCalled)
		}
	})

	t.Run("unknown id propagates not found", func(t *testing.T) {
		t.Parallel()

		taskStore := &mocks.MockTaskStore{Err: store.ErrTaskNotFound}
		svc := service.NewTaskService(taskStore)

		_, err := svc.Update(context.Background(), 99, store.TaskPatch{Text: &text})
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}
