package domain

import (
	"strings"
	"unicode/utf8"
)

// Task is a to-do item. ID is assigned by the store on creation and never changes.
type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// NewTask holds the fields supplied when a task is first created.
type NewTask struct {
	Title       string
	Description *string
	Completed   bool
}

// Validate checks that the text fields can be stored as-is.
func (n NewTask) Validate() error {
	if err := validateText("title", n.Title); err != nil {
		return err
	}
	if n.Description != nil {
		return validateText("description", *n.Description)
	}
	return nil
}

// TaskPatch describes a partial update. Nil fields are left unchanged.
// ClearDescription sets the description back to null and cannot be
// combined with a new Description.
type TaskPatch struct {
	Title            *string
	Description      *string
	ClearDescription bool
	Completed        *bool
}

// IsEmpty reports whether the patch would change nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && !p.ClearDescription && p.Completed == nil
}

// Validate checks the fields present in the patch.
func (p TaskPatch) Validate() error {
	if p.ClearDescription && p.Description != nil {
		return NewValidationError("description", "cannot be both set and cleared", ErrInvalidFormat)
	}
	if p.Title != nil {
		if err := validateText("title", *p.Title); err != nil {
			return err
		}
	}
	if p.Description != nil {
		if err := validateText("description", *p.Description); err != nil {
			return err
		}
	}
	return nil
}

// validateText rejects strings that PostgreSQL TEXT columns cannot hold.
func validateText(field, value string) error {
	if !utf8.ValidString(value) {
		return NewValidationError(field, "must be valid UTF-8", ErrInvalidFormat)
	}
	if strings.ContainsRune(value, 0) {
		return NewValidationError(field, "must not contain NUL characters", ErrInvalidFormat)
	}
	return nil
}
