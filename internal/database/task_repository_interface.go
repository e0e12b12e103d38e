package database

import (
	"context"

	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/types"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetTask(ctx context.Context, id types.TaskID) (*models.Task, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error)
	CountTasks(ctx context.Context, filter models.TaskFilter) (int, error)
}

// TaskWriter defines write operations for tasks. Mutations return the number
// of affected rows so callers can tell an update from a no-op.
type TaskWriter interface {
	CreateTask(ctx context.Context, description string) (*models.Task, error)
	UpdateTaskDescription(ctx context.Context, id types.TaskID, description string) (int64, error)
	UpdateTaskStatus(ctx context.Context, id types.TaskID, status models.Status) (int64, error)
	DeleteTask(ctx context.Context, id types.TaskID) (int64, error)
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}
