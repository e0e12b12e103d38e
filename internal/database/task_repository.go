package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/types"
)

// ErrTaskNotFound is returned by lookups for an id that has no row
var ErrTaskNotFound = errors.New("task not found")

var taskColumns = []string{"id", "task", "status"}

// TaskRepo handles all task-related database operations
type TaskRepo struct {
	db *sql.DB
}

// Create inserts a new pending task and returns it with its assigned id
func (r *TaskRepo) Create(ctx context.Context, description string) (*models.Task, error) {
	query, args, err := sq.Insert("tasks").
		Columns("task", "status").
		Values(description, string(models.StatusPending)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	var task *models.Task
	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}

		id, err := result.LastInsertId()
		if err != nil {
			return err
		}

		task, err = getTask(ctx, tx, types.TaskIDFromInt64(id))
		return err
	})
	if err != nil {
		return nil, storageError("create task", err)
	}

	return task, nil
}

// Get retrieves a single task by id
func (r *TaskRepo) Get(ctx context.Context, id types.TaskID) (*models.Task, error) {
	task, err := getTask(ctx, r.db, id)
	if errors.Is(err, ErrTaskNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, storageError("get task", err)
	}
	return task, nil
}

// List retrieves every task matching filter in id order. An empty table
// yields an empty, non-nil slice.
func (r *TaskRepo) List(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error) {
	b := sq.Select(taskColumns...).From("tasks").OrderBy("id")
	b = applyTaskFilter(b, filter)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError("list tasks", err)
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, storageError("list tasks", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("list tasks", err)
	}

	return tasks, nil
}

// Count returns the number of tasks matching filter
func (r *TaskRepo) Count(ctx context.Context, filter models.TaskFilter) (int, error) {
	b := applyTaskFilter(sq.Select("COUNT(*)").From("tasks"), filter)

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("building query: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, storageError("count tasks", err)
	}
	return count, nil
}

// UpdateStatus sets the status of a task. It returns the number of rows
// changed; an id with no row is not an error.
func (r *TaskRepo) UpdateStatus(ctx context.Context, id types.TaskID, status models.Status) (int64, error) {
	if !status.Valid() {
		return 0, fmt.Errorf("cannot store status %q", status)
	}

	n, err := execAffected(ctx, r.db, sq.Update("tasks").
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id.ToInt64()}))
	if err != nil {
		return 0, storageError("update task status", err)
	}
	return n, nil
}

// UpdateDescription replaces the description of a task. It returns the
// number of rows changed; an id with no row is not an error.
func (r *TaskRepo) UpdateDescription(ctx context.Context, id types.TaskID, description string) (int64, error) {
	n, err := execAffected(ctx, r.db, sq.Update("tasks").
		Set("task", description).
		Where(squirrel.Eq{"id": id.ToInt64()}))
	if err != nil {
		return 0, storageError("update task", err)
	}
	return n, nil
}

// Delete removes a task permanently. It returns the number of rows removed;
// an id with no row is not an error.
func (r *TaskRepo) Delete(ctx context.Context, id types.TaskID) (int64, error) {
	n, err := execAffected(ctx, r.db, sq.Delete("tasks").
		Where(squirrel.Eq{"id": id.ToInt64()}))
	if err != nil {
		return 0, storageError("delete task", err)
	}
	return n, nil
}

// queryRower is satisfied by both *sql.DB and *sql.Tx
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getTask(ctx context.Context, q queryRower, id types.TaskID) (*models.Task, error) {
	query, args, err := sq.Select(taskColumns...).
		From("tasks").
		Where(squirrel.Eq{"id": id.ToInt64()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	task, err := scanTask(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}
	return task, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (*models.Task, error) {
	var (
		id          int64
		description string
		rawStatus   string
	)
	if err := s.Scan(&id, &description, &rawStatus); err != nil {
		return nil, err
	}

	status, err := models.ParseStatus(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("task %d: %w", id, err)
	}

	return &models.Task{
		ID:          types.TaskIDFromInt64(id),
		Description: description,
		Status:      status,
	}, nil
}

func applyTaskFilter(b squirrel.SelectBuilder, filter models.TaskFilter) squirrel.SelectBuilder {
	if filter.Status != nil {
		b = b.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	return b
}
