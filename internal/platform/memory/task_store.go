// Package memory provides an in-memory implementation of the store
// interfaces. State lives only for the lifetime of the process; there
// is no persistence of any kind.
package memory

import (
	"context"
	"sync"

	"github.com/mfarrell/taskapi/internal/domain"
	"github.com/mfarrell/taskapi/internal/store"
)

// TaskStore is an in-memory store.TaskStore backed by a slice.
//
// IDs are assigned from a counter that starts at 1 and only moves
// forward; deleting a task never frees its ID for reuse. The mutex is
// required because net/http serves each request on its own goroutine.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  []domain.Task
	nextID int64
}

// Ensure TaskStore implements the store interface
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty in-memory task store with the ID
// counter starting at 1.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks:  make([]domain.Task, 0),
		nextID: 1,
	}
}

// GetAll returns a defensive copy of all tasks in insertion order.
func (s *TaskStore) GetAll(ctx context.Context) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]domain.Task, len(s.tasks))
	copy(snapshot, s.tasks)
	return snapshot, nil
}

// Create appends a new task with the next ID and returns it.
func (s *TaskStore) Create(ctx context.Context, description string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := domain.Task{
		ID:          s.nextID,
		Description: description,
	}
	s.nextID++
	s.tasks = append(s.tasks, task)
	return task, nil
}

// Delete removes the task with the given ID.
// Returns store.ErrTaskNotFound if no such task exists.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, task := range s.tasks {
		if task.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return store.ErrTaskNotFound
}

// Reset clears all tasks and restarts the ID counter at 1. It exists
// for test isolation between independent runs in the same process and
// is deliberately not part of store.TaskStore, so callers holding the
// interface cannot reach it.
func (s *TaskStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = s.tasks[:0]
	s.nextID = 1
}

// Len reports the number of stored tasks. Test helper.
func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.tasks)
}
