// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of specific storage technologies or persistence details.
package store

import (
	"context"

	"github.com/mfarrell/taskapi/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// GetAll returns a snapshot of all tasks in insertion order.
	// The returned slice is a copy; mutating it does not affect the store.
	// Returns an empty slice when the store holds no tasks.
	GetAll(ctx context.Context) ([]domain.Task, error)

	// Create appends a new task with the next available ID and returns it.
	// The description is assumed to be validated by the caller; the store
	// does not re-check it.
	Create(ctx context.Context, description string) (domain.Task, error)

	// Delete removes the task with the given ID.
	// Returns ErrTaskNotFound if no task with that ID exists; the store
	// is left unchanged in that case.
	Delete(ctx context.Context, id int64) error
}
