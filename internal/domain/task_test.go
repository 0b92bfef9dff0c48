package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		task        Task
		expectedErr error
	}{
		{
			name:        "valid task",
			task:        Task{ID: 1, Description: "Buy groceries"},
			expectedErr: nil,
		},
		{
			name:        "minimum length description",
			task:        Task{ID: 42, Description: "abc"},
			expectedErr: nil,
		},
		{
			name:        "zero ID",
			task:        Task{ID: 0, Description: "Buy groceries"},
			expectedErr: ErrInvalidTaskID,
		},
		{
			name:        "negative ID",
			task:        Task{ID: -1, Description: "Buy groceries"},
			expectedErr: ErrInvalidTaskID,
		},
		{
			name:        "empty description",
			task:        Task{ID: 1, Description: ""},
			expectedErr: ErrEmptyTaskDescription,
		},
		{
			name:        "short description",
			task:        Task{ID: 1, Description: "ab"},
			expectedErr: ErrShortTaskDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}
}
