package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/task-manager-api/internal/domain"
	"github.com/phrazzld/task-manager-api/internal/platform/logger"
	"github.com/phrazzld/task-manager-api/internal/redact"
	"github.com/phrazzld/task-manager-api/internal/store"
)

const taskColumns = "id, title, description, completed"

// TaskStore implements the store.TaskStore interface on top of database/sql.
// Queries are written with $n placeholders and rebound for the dialect.
type TaskStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

// NewTaskStore creates a TaskStore bound to db, which may be the pool, a
// request-scoped *sql.Conn or a transaction owned by the caller.
// If logger is nil, a default logger will be used.
func NewTaskStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *TaskStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		db:      db,
		dialect: dialect,
		logger:  logger.With(slog.String("component", "task_store")),
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, input domain.NewTask) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := input.Validate(); err != nil {
		log.Warn("task validation failed during create", slog.String("error", redact.Error(err)))
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := s.dialect.Rebind(`
		INSERT INTO tasks (title, description, completed)
		VALUES ($1, $2, $3)
		RETURNING ` + taskColumns)

	task, err := scanTask(s.db.QueryRowContext(ctx, query,
		input.Title,
		nullString(input.Description),
		input.Completed,
	))
	if err != nil {
		log.Error("failed to create task", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("task", "create", "failed to insert task", MapError(err))
	}

	log.Info("task created successfully", slog.Int64("task_id", task.ID))
	return task, nil
}

// List implements store.TaskStore.List
// Rows come back in id order, which callers must not rely on.
func (s *TaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY id`)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("task", "list", "failed to query tasks", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Error("failed to close rows", slog.String("error", redact.Error(cerr)))
		}
	}()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, store.NewStoreError("task", "list", "failed to scan task", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("task", "list", "failed to iterate tasks", MapError(err))
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving task by ID", slog.Int64("task_id", id))

	query := s.dialect.Rebind(`SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`)
	return s.queryOne(ctx, "get", id, query, id)
}

// Update implements store.TaskStore.Update
// Only the columns named by the patch appear in the SET clause, so omitted
// fields keep their stored values. An empty patch is a plain lookup.
func (s *TaskStore) Update(
	ctx context.Context,
	id int64,
	patch domain.TaskPatch,
) (*domain.Task, bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := patch.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", redact.Error(err)),
			slog.Int64("task_id", id))
		return nil, false, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	if patch.IsEmpty() {
		return s.GetByID(ctx, id)
	}

	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.ClearDescription {
		set("description", nil)
	} else if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Completed != nil {
		set("completed", *patch.Completed)
	}
	args = append(args, id)

	query := s.dialect.Rebind(fmt.Sprintf(
		`UPDATE tasks SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "),
		len(args),
		taskColumns,
	))

	task, found, err := s.queryOne(ctx, "update", id, query, args...)
	if found {
		log.Info("task updated successfully", slog.Int64("task_id", id))
	}
	return task, found, err
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, id int64) (*domain.Task, bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := s.dialect.Rebind(`DELETE FROM tasks WHERE id = $1 RETURNING ` + taskColumns)
	task, found, err := s.queryOne(ctx, "delete", id, query, id)
	if found {
		log.Info("task deleted successfully", slog.Int64("task_id", id))
	}
	return task, found, err
}

// queryOne runs a statement that yields at most one task row and converts
// sql.ErrNoRows into the absence result.
func (s *TaskStore) queryOne(
	ctx context.Context,
	operation string,
	id int64,
	query string,
	args ...any,
) (*domain.Task, bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := scanTask(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found",
				slog.String("operation", operation),
				slog.Int64("task_id", id))
			return nil, false, nil
		}

		log.Error("task query failed",
			slog.String("operation", operation),
			slog.String("error", redact.Error(err)),
			slog.Int64("task_id", id))
		return nil, false, store.NewStoreError("task", operation, "query failed", MapError(err))
	}

	return task, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task        domain.Task
		description sql.NullString
	)
	if err := row.Scan(&task.ID, &task.Title, &description, &task.Completed); err != nil {
		return nil, err
	}
	if description.Valid {
		task.Description = &description.String
	}
	return &task, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
