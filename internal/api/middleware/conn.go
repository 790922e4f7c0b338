package middleware

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/phrazzld/task-manager-api/internal/api/shared"
	"github.com/phrazzld/task-manager-api/internal/platform/logger"
)

// ConnPool hands out dedicated connections. *sql.DB satisfies it.
type ConnPool interface {
	Conn(ctx context.Context) (*sql.Conn, error)
}

var _ ConnPool = (*sql.DB)(nil)

// NewScopedConnMiddleware binds one pooled connection to each request.
//
// The connection is stored in the request context (see shared.DBFromContext)
// and returned to the pool when the handler finishes, including when it
// panics. If no connection can be acquired the request is answered with 503
// and the handler never runs.
func NewScopedConnMiddleware(pool ConnPool, base *slog.Logger) func(http.Handler) http.Handler {
	if pool == nil {
		// ALLOW-PANIC: wiring a router without a pool is a programming error
		panic("connection pool cannot be nil")
	}
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContextOrDefault(r.Context(), base)

			conn, err := pool.Conn(r.Context())
			if err != nil {
				shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable,
					"Database unavailable", err)
				return
			}
			defer func() {
				if cerr := conn.Close(); cerr != nil {
					log.Warn("failed to release database connection", "error", cerr)
				}
			}()

			next.ServeHTTP(w, r.WithContext(shared.WithDB(r.Context(), conn)))
		})
	}
}
