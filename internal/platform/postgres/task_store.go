// Package postgres implements the store interfaces against PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/taskwell/taskboard-api/internal/domain"
	"github.com/taskwell/taskboard-api/internal/platform/logger"
	"github.com/taskwell/taskboard-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface using a
// PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db *sql.DB
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection that should be
// initialized and managed by the caller.
func NewPostgresTaskStore(db *sql.DB) *PostgresTaskStore {
	return &PostgresTaskStore{db: db}
}

var _ store.TaskStore = (*PostgresTaskStore)(nil)

// sortColumns whitelists the task columns a client may sort by. Sort input
// reaches this layer unvalidated, so the requested field is only ever used
// as a lookup key, never interpolated into SQL.
var sortColumns = map[string]string{
	"id":         "id",
	"username":   "username",
	"email":      "email",
	"text":       "text",
	"completed":  "completed",
	"created_at": "created_at",
}

// sortColumn resolves a requested sort field to a real column, falling back
// to username for unrecognized values.
func sortColumn(requested string) string {
	if col, ok := sortColumns[strings.ToLower(requested)]; ok {
		return col
	}
	return "username"
}

// sortDirection resolves a requested sort order to ASC or DESC, falling back
// to ASC for unrecognized values.
func sortDirection(requested string) string {
	if strings.EqualFold(requested, "desc") {
		return "DESC"
	}
	return "ASC"
}

// Insert implements store.TaskStore.Insert.
func (s *PostgresTaskStore) Insert(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContext(ctx)

	query := `
		INSERT INTO tasks (username, email, text, completed, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, username, email, text, completed, created_at
	`

	var created domain.Task
	err := s.db.QueryRowContext(ctx, query,
		task.Username,
		task.Email,
		task.Text,
		task.Completed,
		task.CreatedAt,
	).Scan(
		&created.ID,
		&created.Username,
		&created.Email,
		&created.Text,
		&created.Completed,
		&created.CreatedAt,
	)
	if err != nil {
		log.Error("failed to insert task", "error", err, "username", task.Username)
		return nil, fmt.Errorf("failed to insert task: %w", MapError(err))
	}

	return &created, nil
}

// List implements store.TaskStore.List. Unrecognized sort fields and orders
// are normalized to the username/ascending defaults, and id is appended as a
// stable tie-break so equal keys keep creation order.
func (s *PostgresTaskStore) List(ctx context.Context, q store.ListQuery) (*store.TaskPage, error) {
	log := logger.FromContext(ctx)

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := store.DefaultPageSize
	offset := (page - 1) * pageSize

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&total); err != nil {
		log.Error("failed to count tasks", "error", err)
		return nil, fmt.Errorf("failed to count tasks: %w", MapError(err))
	}

	// Column and direction come from whitelists above, not from the request.
	query := fmt.Sprintf(`
		SELECT id, username, email, text, completed, created_at
		FROM tasks
		ORDER BY %s %s, id ASC
		LIMIT $1 OFFSET $2
	`, sortColumn(q.Sort), sortDirection(q.Order))

	rows, err := s.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		log.Error("failed to query tasks", "error", err, "page", page)
		return nil, fmt.Errorf("failed to query tasks: %w", MapError(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Warn("failed to close rows", "error", err)
		}
	}()

	tasks := make([]domain.Task, 0, pageSize)
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Username, &t.Email, &t.Text, &t.Completed, &t.CreatedAt); err != nil {
			log.Error("failed to scan task row", "error", err)
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate task rows: %w", err)
	}

	totalPages := (total + pageSize - 1) / pageSize

	return &store.TaskPage{
		Tasks:      tasks,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: totalPages,
	}, nil
}

// Update implements store.TaskStore.Update. Only non-nil patch fields are
// written; an empty patch reads the row back unchanged so the caller still
// gets the stored task.
func (s *PostgresTaskStore) Update(ctx context.Context, id int64, patch store.TaskPatch) (*domain.Task, error) {
	log := logger.FromContext(ctx)

	if patch.IsEmpty() {
		return s.getByID(ctx, id)
	}

	setClauses, args := buildPatchSet(patch)
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE tasks
		SET %s
		WHERE id = $%d
		RETURNING id, username, email, text, completed, created_at
	`, strings.Join(setClauses, ", "), len(args))

	var updated domain.Task
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&updated.ID,
		&updated.Username,
		&updated.Email,
		&updated.Text,
		&updated.Completed,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to update task", "error", err, "task_id", id)
		return nil, fmt.Errorf("failed to update task: %w", MapError(err))
	}

	return &updated, nil
}

// buildPatchSet assembles the SET clauses and positional arguments for the
// non-nil fields of a patch.
func buildPatchSet(patch store.TaskPatch) ([]string, []interface{}) {
	var clauses []string
	var args []interface{}

	if patch.Text != nil {
		args = append(args, *patch.Text)
		clauses = append(clauses, fmt.Sprintf("text = $%d", len(args)))
	}
	if patch.Completed != nil {
		args = append(args, *patch.Completed)
		clauses = append(clauses, fmt.Sprintf("completed = $%d", len(args)))
	}

	return clauses, args
}

// getByID reads a single task, mapping a missing row to ErrTaskNotFound.
func (s *PostgresTaskStore) getByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `
		SELECT id, username, email, text, completed, created_at
		FROM tasks
		WHERE id = $1
	`

	var t domain.Task
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID,
		&t.Username,
		&t.Email,
		&t.Text,
		&t.Completed,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", MapError(err))
	}

	return &t, nil
}
