package api

import (
	"github.com/mfarrell/taskapi/internal/domain"
)

// Common request/response structures

// TaskPayload is the task object nested inside a create request.
type TaskPayload struct {
	Description string `json:"description" validate:"required,min=3"`
}

// CreateTaskRequest defines the payload for the task creation endpoint.
// The task object itself is required; a body of {"task": null} fails
// validation before the store is touched.
type CreateTaskRequest struct {
	Task *TaskPayload `json:"task" validate:"required"`
}

// TaskResponse represents the response data for a single task.
type TaskResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Description: task.Description,
	}
}

// tasksToResponse converts a slice of domain tasks, keeping order.
// Always returns a non-nil slice so an empty store serializes as [].
func tasksToResponse(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
