package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/taskwell/taskboard-api/internal/store"
)

func TestSortColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		requested string
		expected  string
	}{
		{requested: "username", expected: "username"},
		{requested: "email", expected: "email"},
		{requested: "text", expected: "text"},
		{requested: "completed", expected: "completed"},
		{requested: "created_at", expected: "created_at"},
		{requested: "id", expected: "id"},
		{requested: "USERNAME", expected: "username"},
		// Anything outside the whitelist falls back to username; the raw
		// value never reaches the SQL string.
		{requested: "", expected: "username"},
		{requested: "priority", expected: "username"},
		{requested: "id; DROP TABLE tasks;--", expected: "username"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("requested="+tt.requested, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sortColumn(tt.requested))
		})
	}
}

func TestSortDirection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "DESC", sortDirection("desc"))
	assert.Equal(t, "DESC", sortDirection("DESC"))
	assert.Equal(t, "ASC", sortDirection("asc"))
	assert.Equal(t, "ASC", sortDirection(""))
	assert.Equal(t, "ASC", sortDirection("sideways"))
}

func TestBuildPatchSet(t *testing.T) {
	t.Parallel()

	text := "updated"
	completed := true

	t.Run("text only", func(t *testing.T) {
		t.Parallel()
		clauses, args := buildPatchSet(store.TaskPatch{Text: &text})
		assert.Equal(t, []string{"text = $1"}, clauses)
		assert.Equal(t, []interface{}{"updated"}, args)
	})

	t.Run("completed only", func(t *testing.T) {
		t.Parallel()
		clauses, args := buildPatchSet(store.TaskPatch{Completed: &completed})
		assert.Equal(t, []string{"completed = $1"}, clauses)
		assert.Equal(t, []interface{}{true}, args)
	})

	t.Run("both fields keep positional order", func(t *testing.T) {
		t.Parallel()
		clauses, args := buildPatchSet(store.TaskPatch{Text: &text, Completed: &completed})
		assert.Equal(t, []string{"text = $1", "completed = $2"}, clauses)
		assert.Equal(t, []interface{}{"updated", true}, args)
	})
}

func TestMapError(t *testing.T) {
	t.Parallel()

	t.Run("nil passes through", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, MapError(nil))
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, MapError(sql.ErrNoRows), store.ErrNotFound)
	})

	t.Run("unique violation maps to duplicate", func(t *testing.T) {
		t.Parallel()
		err := MapError(&pgconn.PgError{Code: uniqueViolationCode})
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("not null violation maps to invalid entity", func(t *testing.T) {
		t.Parallel()
		err := MapError(&pgconn.PgError{Code: notNullViolationCode, ColumnName: "text"})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("unknown errors pass through unchanged", func(t *testing.T) {
		t.Parallel()
		base := errors.New("something else")
		assert.Equal(t, base, MapError(base))
	})
}
