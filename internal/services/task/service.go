package task

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/types"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error)
	GetTask(ctx context.Context, taskID types.TaskID) (*models.Task, error)
	Summarize(ctx context.Context) (Summary, error)

	// Write operations
	AddTask(ctx context.Context, description string) (*models.Task, error)
	UpdateDescription(ctx context.Context, taskID types.TaskID, description string) (Result, error)
	MarkCompleted(ctx context.Context, taskID types.TaskID) (Result, error)
	DeleteTask(ctx context.Context, taskID types.TaskID) (Result, error)
}

// Result describes the outcome of a mutation addressed by id. A mutation of
// an id with no row succeeds with Matched false; it is not an error.
type Result struct {
	TaskID  types.TaskID `json:"task_id"`
	Matched bool         `json:"matched"`
}

// GetID returns the addressed task id for quiet output
func (r Result) GetID() int64 {
	return r.TaskID.ToInt64()
}

// Err converts an unmatched result into ErrTaskNotFound for callers that
// want to treat a no-op as a failure. It returns nil when a row matched.
func (r Result) Err() error {
	if r.Matched {
		return nil
	}
	return fmt.Errorf("%w: %d", ErrTaskNotFound, r.TaskID)
}

// Summary counts tasks by status
type Summary struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	logger *slog.Logger
}

// NewService creates a new task service. A nil logger falls back to slog.Default.
func NewService(repo database.DataStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// AddTask creates a pending task after validating its description
func (s *service) AddTask(ctx context.Context, description string) (*models.Task, error) {
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	task, err := s.repo.CreateTask(ctx, description)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logTaskEvent("task added", task.ID, true)
	return task, nil
}

// ListTasks returns every task matching filter, oldest first
func (s *service) ListTasks(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *filter.Status)
	}

	tasks, err := s.repo.ListTasks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *service) GetTask(ctx context.Context, taskID types.TaskID) (*models.Task, error) {
	if !taskID.Valid() {
		return nil, ErrInvalidTaskID
	}
	return s.repo.GetTask(ctx, taskID)
}

// Summarize counts tasks in each status
func (s *service) Summarize(ctx context.Context) (Summary, error) {
	var sum Summary
	counts := map[models.Status]*int{
		models.StatusPending:   &sum.Pending,
		models.StatusCompleted: &sum.Completed,
	}

	for _, status := range models.Statuses {
		n, err := s.repo.CountTasks(ctx, models.TaskFilter{Status: &status})
		if err != nil {
			return Summary{}, fmt.Errorf("failed to count %s tasks: %w", status, err)
		}
		*counts[status] = n
		sum.Total += n
	}

	return sum, nil
}

// UpdateDescription replaces the description of a task
func (s *service) UpdateDescription(ctx context.Context, taskID types.TaskID, description string) (Result, error) {
	if !taskID.Valid() {
		return Result{}, ErrInvalidTaskID
	}
	if err := validateDescription(description); err != nil {
		return Result{}, err
	}

	n, err := s.repo.UpdateTaskDescription(ctx, taskID, description)
	if err != nil {
		return Result{}, fmt.Errorf("failed to update task: %w", err)
	}

	res := Result{TaskID: taskID, Matched: n > 0}
	s.logTaskEvent("task updated", taskID, res.Matched)
	return res, nil
}

// MarkCompleted moves a task to completed. Marking an already completed
// task again is a successful no-op.
func (s *service) MarkCompleted(ctx context.Context, taskID types.TaskID) (Result, error) {
	if !taskID.Valid() {
		return Result{}, ErrInvalidTaskID
	}

	n, err := s.repo.UpdateTaskStatus(ctx, taskID, models.StatusCompleted)
	if err != nil {
		return Result{}, fmt.Errorf("failed to complete task: %w", err)
	}

	res := Result{TaskID: taskID, Matched: n > 0}
	s.logTaskEvent("task completed", taskID, res.Matched)
	return res, nil
}

// DeleteTask removes a task permanently
func (s *service) DeleteTask(ctx context.Context, taskID types.TaskID) (Result, error) {
	if !taskID.Valid() {
		return Result{}, ErrInvalidTaskID
	}

	n, err := s.repo.DeleteTask(ctx, taskID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to delete task: %w", err)
	}

	res := Result{TaskID: taskID, Matched: n > 0}
	s.logTaskEvent("task deleted", taskID, res.Matched)
	return res, nil
}

// ParseTaskID converts user input into a TaskID
func ParseTaskID(raw string) (types.TaskID, error) {
	raw = strings.TrimSpace(raw)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidTaskID, raw)
	}
	return types.TaskIDFromInt64(id), nil
}

// ParseStatus converts user input into a Status
func ParseStatus(raw string) (models.Status, error) {
	status, err := models.ParseStatus(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return status, nil
}

// validateDescription rejects the empty description. Any other text,
// including whitespace, is stored exactly as given.
func validateDescription(description string) error {
	if description == "" {
		return ErrEmptyDescription
	}
	return nil
}

// logTaskEvent records a mutation. Unmatched ids are logged at debug level
// since they are not failures.
func (s *service) logTaskEvent(msg string, taskID types.TaskID, matched bool) {
	if !matched {
		s.logger.Debug(msg+": no matching task", "task_id", taskID.ToInt64())
		return
	}
	s.logger.Info(msg, "task_id", taskID.ToInt64())
}
