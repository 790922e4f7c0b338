package api

import (
	"encoding/json"

	"github.com/phrazzld/task-manager-api/internal/domain"
)

// CreateTaskRequest defines the payload for POST /tasks.
// Title must be present but may be empty.
type CreateTaskRequest struct {
	Title       *string `json:"title"       validate:"required"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// ToNewTask converts the request into store input. Completed defaults to false.
func (req CreateTaskRequest) ToNewTask() domain.NewTask {
	input := domain.NewTask{
		Description: req.Description,
	}
	if req.Title != nil {
		input.Title = *req.Title
	}
	if req.Completed != nil {
		input.Completed = *req.Completed
	}
	return input
}

// NullableString is a JSON string field that records whether the key was
// present at all, so an explicit null can be told apart from an omitted key.
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON is only called for keys present in the object, including
// those whose value is null.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// UpdateTaskRequest defines the payload for PUT /tasks/{id}.
// Absent fields are left unchanged. A null description clears it; a null
// title is rejected, and a null completed is treated as absent.
type UpdateTaskRequest struct {
	Title       NullableString `json:"title"`
	Description NullableString `json:"description"`
	Completed   *bool          `json:"completed"`
}

// Validate rejects a null title, which the stored task cannot hold.
func (req UpdateTaskRequest) Validate() error {
	if req.Title.Set && req.Title.Value == nil {
		return domain.NewValidationError("title", "must not be null", domain.ErrInvalidFormat)
	}
	return nil
}

// ToPatch converts the request into a partial update.
func (req UpdateTaskRequest) ToPatch() domain.TaskPatch {
	return domain.TaskPatch{
		Title:            req.Title.Value,
		Description:      req.Description.Value,
		ClearDescription: req.Description.Set && req.Description.Value == nil,
		Completed:        req.Completed,
	}
}

// TaskResponse is the wire representation of a task.
type TaskResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// MessageResponse carries a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
	}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	resp := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		resp = append(resp, taskToResponse(task))
	}
	return resp
}
