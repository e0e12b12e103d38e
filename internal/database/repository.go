package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/types"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*TaskRepo
}

var _ DataStore = (*Repository)(nil)

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		TaskRepo: &TaskRepo{db: db},
	}
}

// Wrapper methods for TaskRepo
func (r *Repository) CreateTask(ctx context.Context, description string) (*models.Task, error) {
	return r.TaskRepo.Create(ctx, description)
}

func (r *Repository) GetTask(ctx context.Context, id types.TaskID) (*models.Task, error) {
	return r.TaskRepo.Get(ctx, id)
}

func (r *Repository) ListTasks(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error) {
	return r.TaskRepo.List(ctx, filter)
}

func (r *Repository) CountTasks(ctx context.Context, filter models.TaskFilter) (int, error) {
	return r.TaskRepo.Count(ctx, filter)
}

func (r *Repository) UpdateTaskDescription(ctx context.Context, id types.TaskID, description string) (int64, error) {
	return r.TaskRepo.UpdateDescription(ctx, id, description)
}

func (r *Repository) UpdateTaskStatus(ctx context.Context, id types.TaskID, status models.Status) (int64, error) {
	return r.TaskRepo.UpdateStatus(ctx, id, status)
}

func (r *Repository) DeleteTask(ctx context.Context, id types.TaskID) (int64, error) {
	return r.TaskRepo.Delete(ctx, id)
}
