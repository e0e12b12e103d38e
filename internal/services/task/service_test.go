package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/testutil"
	"github.com/thenoetrevino/todo/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// setupService creates a service over a fresh in-memory store
func setupService(t *testing.T) Service {
	t.Helper()
	return NewService(testutil.SetupTestRepo(t), nil)
}

func listAll(t *testing.T, svc Service) []*models.Task {
	t.Helper()
	tasks, err := svc.ListTasks(context.Background(), models.TaskFilter{})
	require.NoError(t, err)
	return tasks
}

// failingStore is a DataStore whose every call is scripted by the test
type failingStore struct {
	mock.Mock
}

func (f *failingStore) GetTask(ctx context.Context, id types.TaskID) (*models.Task, error) {
	args := f.Called(ctx, id)
	task, _ := args.Get(0).(*models.Task)
	return task, args.Error(1)
}

func (f *failingStore) ListTasks(ctx context.Context, filter models.TaskFilter) ([]*models.Task, error) {
	args := f.Called(ctx, filter)
	tasks, _ := args.Get(0).([]*models.Task)
	return tasks, args.Error(1)
}

func (f *failingStore) CountTasks(ctx context.Context, filter models.TaskFilter) (int, error) {
	args := f.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (f *failingStore) CreateTask(ctx context.Context, description string) (*models.Task, error) {
	args := f.Called(ctx, description)
	task, _ := args.Get(0).(*models.Task)
	return task, args.Error(1)
}

func (f *failingStore) UpdateTaskDescription(ctx context.Context, id types.TaskID, description string) (int64, error) {
	args := f.Called(ctx, id, description)
	return args.Get(0).(int64), args.Error(1)
}

func (f *failingStore) UpdateTaskStatus(ctx context.Context, id types.TaskID, status models.Status) (int64, error) {
	args := f.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (f *failingStore) DeleteTask(ctx context.Context, id types.TaskID) (int64, error) {
	args := f.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// ============================================================================
// ADD / LIST
// ============================================================================

func TestAddTask(t *testing.T) {
	t.Parallel()

	descriptions := []string{
		"Buy milk",
		"  padded  ",
		"   ",
		" \t\n",
		"ünïcödé ✓",
		strings.Repeat("long description ", 4096),
	}
	for i, d := range descriptions {
		t.Run(fmt.Sprintf("description-%d", i), func(t *testing.T) {
			t.Parallel()
			svc := setupService(t)

			task, err := svc.AddTask(context.Background(), d)
			require.NoError(t, err)
			assert.Equal(t, models.StatusPending, task.Status)

			tasks := listAll(t, svc)
			require.Len(t, tasks, 1)
			assert.Equal(t, task.ID, tasks[0].ID)
			assert.Equal(t, d, tasks[0].Description)
			assert.Equal(t, models.StatusPending, tasks[0].Status)
		})
	}
}

func TestAddTaskValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		description string
		wantErr     error
	}{
		{"empty", "", ErrEmptyDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := setupService(t)

			_, err := svc.AddTask(context.Background(), tt.description)
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, listAll(t, svc))
		})
	}
}

func TestListTasksEmpty(t *testing.T) {
	t.Parallel()
	svc := setupService(t)

	tasks, err := svc.ListTasks(context.Background(), models.TaskFilter{})
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestListTasksRejectsUnknownStatus(t *testing.T) {
	t.Parallel()
	svc := setupService(t)

	bogus := models.Status("archived")
	_, err := svc.ListTasks(context.Background(), models.TaskFilter{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddNTasks(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 5, 25} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			t.Parallel()
			svc := setupService(t)
			for i := range n {
				_, err := svc.AddTask(context.Background(), fmt.Sprintf("task %d", i))
				require.NoError(t, err)
			}
			assert.Len(t, listAll(t, svc), n)
		})
	}
}

// ============================================================================
// MUTATIONS
// ============================================================================

func TestMarkCompleted(t *testing.T) {
	t.Parallel()
	svc := setupService(t)
	ctx := context.Background()

	a, err := svc.AddTask(ctx, "a")
	require.NoError(t, err)
	b, err := svc.AddTask(ctx, "b")
	require.NoError(t, err)

	res, err := svc.MarkCompleted(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, res.Matched)
	assert.NoError(t, res.Err())

	// Second call is a no-op, not an error
	res, err = svc.MarkCompleted(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, res.Matched)

	tasks := listAll(t, svc)
	require.Len(t, tasks, 2)
	assert.Equal(t, models.Task{ID: a.ID, Description: "a", Status: models.StatusCompleted}, *tasks[0])
	assert.Equal(t, models.Task{ID: b.ID, Description: "b", Status: models.StatusPending}, *tasks[1])
}

func TestUpdateDescription(t *testing.T) {
	t.Parallel()
	svc := setupService(t)
	ctx := context.Background()

	task, err := svc.AddTask(ctx, "Test Task 1")
	require.NoError(t, err)

	res, err := svc.UpdateDescription(ctx, task.ID, "Updated Task 1")
	require.NoError(t, err)
	assert.True(t, res.Matched)

	got, err := svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated Task 1", got.Description)
	assert.Equal(t, models.StatusPending, got.Status)

	_, err = svc.UpdateDescription(ctx, task.ID, "")
	assert.ErrorIs(t, err, ErrEmptyDescription)

	got, err = svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated Task 1", got.Description)

	long := strings.Repeat("0123456789", 1000)
	res, err = svc.UpdateDescription(ctx, task.ID, long)
	require.NoError(t, err)
	assert.True(t, res.Matched)

	got, err = svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, long, got.Description)
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()
	svc := setupService(t)
	ctx := context.Background()

	var ids []types.TaskID
	for _, d := range []string{"a", "b", "c"} {
		task, err := svc.AddTask(ctx, d)
		require.NoError(t, err)
		ids = append(ids, task.ID)
	}

	res, err := svc.DeleteTask(ctx, ids[1])
	require.NoError(t, err)
	assert.True(t, res.Matched)

	tasks := listAll(t, svc)
	require.Len(t, tasks, 2)
	assert.Equal(t, ids[0], tasks[0].ID)
	assert.Equal(t, "a", tasks[0].Description)
	assert.Equal(t, ids[2], tasks[1].ID)
	assert.Equal(t, "c", tasks[1].Description)

	_, err = svc.GetTask(ctx, ids[1])
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestMutationsOnMissingID(t *testing.T) {
	t.Parallel()
	svc := setupService(t)
	ctx := context.Background()
	missing := types.TaskID(404)

	results := map[string]func() (Result, error){
		"complete": func() (Result, error) { return svc.MarkCompleted(ctx, missing) },
		"update":   func() (Result, error) { return svc.UpdateDescription(ctx, missing, "x") },
		"delete":   func() (Result, error) { return svc.DeleteTask(ctx, missing) },
	}

	for name, call := range results {
		res, err := call()
		require.NoError(t, err, name)
		assert.False(t, res.Matched, name)
		assert.ErrorIs(t, res.Err(), ErrTaskNotFound, name)
	}
}

func TestInvalidTaskID(t *testing.T) {
	t.Parallel()
	svc := setupService(t)
	ctx := context.Background()

	for _, id := range []types.TaskID{0, -1} {
		_, err := svc.MarkCompleted(ctx, id)
		assert.ErrorIs(t, err, ErrInvalidTaskID)
		_, err = svc.UpdateDescription(ctx, id, "x")
		assert.ErrorIs(t, err, ErrInvalidTaskID)
		_, err = svc.DeleteTask(ctx, id)
		assert.ErrorIs(t, err, ErrInvalidTaskID)
		_, err = svc.GetTask(ctx, id)
		assert.ErrorIs(t, err, ErrInvalidTaskID)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	svc := setupService(t)
	ctx := context.Background()

	sum, err := svc.Summarize(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)

	first, err := svc.AddTask(ctx, "first")
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, "second")
	require.NoError(t, err)
	_, err = svc.MarkCompleted(ctx, first.ID)
	require.NoError(t, err)

	sum, err = svc.Summarize(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Total: 2, Pending: 1, Completed: 1}, sum)
}

// ============================================================================
// ERROR PROPAGATION
// ============================================================================

func TestStorageErrorsPropagate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	diskFull := fmt.Errorf("failed to create task: %w: %w", ErrStorageUnavailable, errors.New("disk full"))

	store := &failingStore{}
	store.On("CreateTask", ctx, "a").Return(nil, diskFull)
	store.On("UpdateTaskStatus", ctx, types.TaskID(1), models.StatusCompleted).Return(int64(0), diskFull)
	store.On("ListTasks", ctx, models.TaskFilter{}).Return(nil, diskFull)

	svc := NewService(store, nil)

	_, err := svc.AddTask(ctx, "a")
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidInput)

	_, err = svc.MarkCompleted(ctx, 1)
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = svc.ListTasks(ctx, models.TaskFilter{})
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	store.AssertExpectations(t)
}

func TestValidationSkipsStore(t *testing.T) {
	t.Parallel()
	store := &failingStore{}
	svc := NewService(store, nil)

	_, err := svc.AddTask(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyDescription)

	store.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}

// ============================================================================
// PARSING
// ============================================================================

func TestParseTaskID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    types.TaskID
		wantErr bool
	}{
		{"1", 1, false},
		{" 42 \n", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"1.5", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTaskID(tt.raw)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidTaskID, "raw %q", tt.raw)
			continue
		}
		require.NoError(t, err, "raw %q", tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	got, err := ParseStatus(" Completed ")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got)

	_, err = ParseStatus("done")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestMarkCompletedOnSeededRows(t *testing.T) {
	db := testutil.SetupTestDB(t)
	done := testutil.CreateTestTask(t, db, "already done", models.StatusCompleted)
	open := testutil.CreateTestTask(t, db, "still open", models.StatusPending)
	svc := NewService(database.NewRepository(db.DB), nil)
	ctx := context.Background()

	res, err := svc.MarkCompleted(ctx, done)
	require.NoError(t, err)
	assert.True(t, res.Matched)

	sum, err := svc.Summarize(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Total: 2, Pending: 1, Completed: 1}, sum)

	task, err := svc.GetTask(ctx, open)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, task.Status)
}
