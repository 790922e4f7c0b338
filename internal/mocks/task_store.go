package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/task-manager-api/internal/domain"
	"github.com/phrazzld/task-manager-api/internal/store"
)

// MockTaskStore is a mock of store.TaskStore for use with testify/mock.
type MockTaskStore struct {
	mock.Mock
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// Create is a mock implementation of store.TaskStore.Create
func (m *MockTaskStore) Create(ctx context.Context, input domain.NewTask) (*domain.Task, error) {
	args := m.Called(ctx, input)
	return taskArg(args, 0), args.Error(1)
}

// List is a mock implementation of store.TaskStore.List
func (m *MockTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	args := m.Called(ctx)
	if tasks, ok := args.Get(0).([]*domain.Task); ok {
		return tasks, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of store.TaskStore.GetByID
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, bool, error) {
	args := m.Called(ctx, id)
	return taskArg(args, 0), args.Bool(1), args.Error(2)
}

// Update is a mock implementation of store.TaskStore.Update
func (m *MockTaskStore) Update(
	ctx context.Context,
	id int64,
	patch domain.TaskPatch,
) (*domain.Task, bool, error) {
	args := m.Called(ctx, id, patch)
	return taskArg(args, 0), args.Bool(1), args.Error(2)
}

// Delete is a mock implementation of store.TaskStore.Delete
func (m *MockTaskStore) Delete(ctx context.Context, id int64) (*domain.Task, bool, error) {
	args := m.Called(ctx, id)
	return taskArg(args, 0), args.Bool(1), args.Error(2)
}

// Factory returns a store factory that ignores the handle and always yields m.
func (m *MockTaskStore) Factory() func(store.DBTX) store.TaskStore {
	return func(store.DBTX) store.TaskStore { return m }
}

func taskArg(args mock.Arguments, i int) *domain.Task {
	if task, ok := args.Get(i).(*domain.Task); ok {
		return task
	}
	return nil
}
