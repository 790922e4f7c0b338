package shared

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))

	ctx = SetTraceID(ctx)
	traceID := GetTraceID(ctx)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err, "generated trace IDs should be UUIDs")

	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other)

	assert.Equal(t, "fixed", GetTraceID(WithTraceID(context.Background(), "fixed")))
}

func TestDBContext(t *testing.T) {
	_, ok := DBFromContext(context.Background())
	assert.False(t, ok)

	var nilDB *sql.DB
	_, ok = DBFromContext(WithDB(context.Background(), nilDB))
	assert.True(t, ok, "a typed nil is still a stored handle")

	db := &sql.DB{}
	got, ok := DBFromContext(WithDB(context.Background(), db))
	assert.True(t, ok)
	assert.Same(t, db, got)
}
