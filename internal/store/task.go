package store

import (
	"context"

	"github.com/phrazzld/task-manager-api/internal/domain"
)

// TaskStore defines the persistence primitives for tasks.
//
// Lookups by ID report absence through the boolean result: a missing row
// yields (nil, false, nil). A non-nil error always means a storage fault.
type TaskStore interface {
	// Create inserts a new task and returns the stored row with its assigned ID.
	Create(ctx context.Context, input domain.NewTask) (*domain.Task, error)

	// List returns every task. Callers must not depend on the ordering.
	List(ctx context.Context) ([]*domain.Task, error)

	// GetByID returns the task with the given ID.
	GetByID(ctx context.Context, id int64) (*domain.Task, bool, error)

	// Update applies the non-nil fields of patch and returns the updated row.
	Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, bool, error)

	// Delete removes the task and returns the row as it was before deletion.
	Delete(ctx context.Context, id int64) (*domain.Task, bool, error)
}
