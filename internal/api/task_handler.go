package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/task-manager-api/internal/api/shared"
	"github.com/phrazzld/task-manager-api/internal/platform/logger"
	"github.com/phrazzld/task-manager-api/internal/redact"
	"github.com/phrazzld/task-manager-api/internal/store"
)

// TaskStoreFactory binds a TaskStore to a database handle.
type TaskStoreFactory func(db store.DBTX) store.TaskStore

// TaskHandler handles task-related HTTP requests. Each request uses a store
// bound to the connection that the scoped connection middleware placed in
// the request context.
type TaskHandler struct {
	stores TaskStoreFactory
	logger *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(stores TaskStoreFactory, logger *slog.Logger) *TaskHandler {
	if stores == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("task store factory cannot be nil for TaskHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		stores: stores,
		logger: logger.With(slog.String("component", "task_handler")),
	}
}

// storeFor returns the store bound to the request's connection, writing a
// 500 response when the route was mounted without a connection.
func (h *TaskHandler) storeFor(w http.ResponseWriter, r *http.Request) (store.TaskStore, bool) {
	db, ok := shared.DBFromContext(r.Context())
	if !ok {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Error("no database connection in request context")
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgDBUnavailable)
		return nil, false
	}
	return h.stores(db), true
}

// CreateTask handles POST /tasks requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, SanitizeDecodeError(err))
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity, SanitizeValidationError(err), err)
		return
	}

	tasks, ok := h.storeFor(w, r)
	if !ok {
		return
	}

	task, err := tasks.Create(r.Context(), req.ToNewTask())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	log.Debug("task created", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// ListTasks handles GET /tasks requests. An empty table yields [].
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, ok := h.storeFor(w, r)
	if !ok {
		return
	}

	all, err := tasks.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(all))
}

// GetTask handles GET /tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	tasks, ok := h.storeFor(w, r)
	if !ok {
		return
	}

	task, found, err := tasks.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get task")
		return
	}
	if !found {
		shared.RespondWithError(w, r, http.StatusNotFound, msgTaskNotFound)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask handles PUT /tasks/{id} requests.
// Only fields present in the body are changed.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid request format",
			slog.String("error", redact.Error(err)),
			slog.Int64("task_id", id))
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, SanitizeDecodeError(err))
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity, SanitizeValidationError(err), err)
		return
	}

	tasks, ok := h.storeFor(w, r)
	if !ok {
		return
	}

	task, found, err := tasks.Update(r.Context(), id, req.ToPatch())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task")
		return
	}
	if !found {
		shared.RespondWithError(w, r, http.StatusNotFound, msgTaskNotFound)
		return
	}

	log.Debug("task updated", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	tasks, ok := h.storeFor(w, r)
	if !ok {
		return
	}

	_, found, err := tasks.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}
	if !found {
		shared.RespondWithError(w, r, http.StatusNotFound, msgTaskNotFound)
		return
	}

	log.Debug("task deleted", slog.Int64("task_id", id))
	w.WriteHeader(http.StatusNoContent)
}
