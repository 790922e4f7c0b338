package shared

import (
	"context"

	"github.com/google/uuid"

	"github.com/phrazzld/task-manager-api/internal/store"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// DBKey is the key for the request-scoped database handle
	DBKey ContextKey = "db"
)

// SetTraceID adds a freshly generated trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, uuid.NewString())
}

// WithTraceID adds the given trace ID to the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WithDB stores the database handle that handlers must use for this request.
func WithDB(ctx context.Context, db store.DBTX) context.Context {
	return context.WithValue(ctx, DBKey, db)
}

// DBFromContext returns the request-scoped database handle, if any.
func DBFromContext(ctx context.Context) (store.DBTX, bool) {
	db, ok := ctx.Value(DBKey).(store.DBTX)
	return db, ok && db != nil
}
