package domain

import (
	"errors"
)

// Common validation errors for Task
var (
	ErrInvalidTaskID        = errors.New("task ID must be positive")
	ErrEmptyTaskDescription = errors.New("task description cannot be empty")
	ErrShortTaskDescription = errors.New("task description must be at least 3 characters")
)

// MinDescriptionLength is the minimum number of characters a task
// description must have at creation time. Enforced at the HTTP layer;
// the store trusts its caller.
const MinDescriptionLength = 3

// Task represents a single to-do item held by the in-memory store.
// IDs are assigned by the store, monotonically increasing from 1,
// and are never reused after deletion (until an explicit reset).
type Task struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID <= 0 {
		return ErrInvalidTaskID
	}

	if t.Description == "" {
		return ErrEmptyTaskDescription
	}

	if len(t.Description) < MinDescriptionLength {
		return ErrShortTaskDescription
	}

	return nil
}
