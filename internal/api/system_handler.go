package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/task-manager-api/internal/api/shared"
	"github.com/phrazzld/task-manager-api/internal/platform/logger"
)

// RootMessage is returned by GET /.
const RootMessage = "Task Manager API is running"

// Pinger checks database reachability. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Root handles GET / requests.
func Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: RootMessage})
}

// NewHealthHandler returns a handler that reports OK when the database
// answers a ping, and 503 otherwise.
func NewHealthHandler(db Pinger, base *slog.Logger) http.HandlerFunc {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("pinger cannot be nil for health handler")
	}
	if base == nil {
		base = slog.Default()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, msgDBUnavailable, err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.FromContextOrDefault(r.Context(), base).
				Error("failed to write health check response", "error", err)
		}
	}
}
