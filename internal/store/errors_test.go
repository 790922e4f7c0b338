package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassifiers(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantDuplicate bool
		wantInvalid   bool
	}{
		{name: "nil error"},
		{name: "generic error", err: errors.New("some error")},
		{name: "ErrDuplicate", err: ErrDuplicate, wantDuplicate: true},
		{name: "wrapped ErrDuplicate", err: fmt.Errorf("insert: %w", ErrDuplicate), wantDuplicate: true},
		{name: "ErrInvalidEntity", err: ErrInvalidEntity, wantInvalid: true},
		{
			name:        "StoreError wrapping ErrInvalidEntity",
			err:         NewStoreError("task", "create", "rejected", ErrInvalidEntity),
			wantInvalid: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantDuplicate, IsDuplicateError(tc.err))
			assert.Equal(t, tc.wantInvalid, IsInvalidEntityError(tc.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewStoreError("task", "list", "query failed", cause)

		assert.Equal(t, "list operation on task failed: query failed: connection refused", err.Error())
		assert.ErrorIs(t, err, cause)

		var storeErr *StoreError
		assert.True(t, errors.As(fmt.Errorf("outer: %w", err), &storeErr))
		assert.Equal(t, "task", storeErr.Entity)
		assert.Equal(t, "list", storeErr.Operation)
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := NewStoreError("task", "delete", "no result", nil)

		assert.Equal(t, "delete operation on task failed: no result", err.Error())
		assert.Nil(t, err.Unwrap())
	})
}
