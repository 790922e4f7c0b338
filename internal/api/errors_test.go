package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/task-manager-api/internal/api/shared"
	"github.com/phrazzld/task-manager-api/internal/domain"
	"github.com/phrazzld/task-manager-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "nil error",
			err:            nil,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "domain validation error",
			err:            domain.NewValidationError("id", "must be an integer", domain.ErrInvalidID),
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid entity from store",
			err:            store.NewStoreError("task", "create", "rejected", store.ErrInvalidEntity),
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "duplicate",
			err:            fmt.Errorf("insert: %w", store.ErrDuplicate),
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "unknown error",
			err:            errors.New("connection reset"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "An unexpected error occurred",
		},
		{
			name:     "validation error names the field",
			err:      domain.NewValidationError("title", "must not contain NUL characters", domain.ErrInvalidFormat),
			expected: "Invalid title: must not contain NUL characters",
		},
		{
			name: "validation error wrapped by the store",
			err: store.NewStoreError("task", "create", "invalid task",
				fmt.Errorf("%w: %w", store.ErrInvalidEntity,
					domain.NewValidationError("description", "must be valid UTF-8", domain.ErrInvalidFormat))),
			expected: "Invalid description: must be valid UTF-8",
		},
		{
			name:     "constraint violation",
			err:      store.NewStoreError("task", "update", "rejected", store.ErrInvalidEntity),
			expected: "Invalid task data",
		},
		{
			name:     "duplicate",
			err:      store.ErrDuplicate,
			expected: "Task already exists",
		},
		{
			name:     "internal details are hidden",
			err:      errors.New(`pq: relation "tasks" does not exist`),
			expected: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	err := shared.ValidateRequest(CreateTaskRequest{})
	assert.Equal(t, "Invalid title: required field", SanitizeValidationError(err))

	assert.Equal(t, "Invalid id: must be an integer",
		SanitizeValidationError(domain.NewValidationError("id", "must be an integer", domain.ErrInvalidID)))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("something else")))
}

func TestSanitizeDecodeError(t *testing.T) {
	decode := func(body string) error {
		var req CreateTaskRequest
		return json.NewDecoder(strings.NewReader(body)).Decode(&req)
	}

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "empty body", err: decode(""), expected: "Request body is required"},
		{name: "truncated", err: decode(`{"title":`), expected: "Invalid JSON"},
		{name: "syntax", err: decode(`{title}`), expected: "Invalid JSON"},
		{name: "wrong type", err: decode(`{"title":42}`), expected: "Invalid title: expected string"},
		{name: "wrong bool type", err: decode(`{"title":"a","completed":"yes"}`), expected: "Invalid completed: expected bool"},
		{name: "missing body", err: shared.ErrMissingBody, expected: "Request body is required"},
		{name: "trailing data", err: shared.ErrTrailingData, expected: "Invalid JSON"},
		{name: "other", err: io.ErrClosedPipe, expected: "Invalid request format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeDecodeError(tt.err))
		})
	}
}
