package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/types"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB opens a fresh in-memory store. Each call gets its own empty
// database, so tests never see each other's rows.
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := InitDB(context.Background(), MemoryLocation)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*DB, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tasks.db")

	db, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	return db, dbPath
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *DB, dbPath string) *DB {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	newDB, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}

	return newDB
}

// createRepo creates a Repository instance from an open store
func createRepo(db *DB) *Repository {
	return NewRepository(db.DB)
}

// mustCreateTask adds a task or fails the test
func mustCreateTask(t *testing.T, repo *Repository, description string) *models.Task {
	t.Helper()
	task, err := repo.CreateTask(context.Background(), description)
	if err != nil {
		t.Fatalf("Failed to create task %q: %v", description, err)
	}
	return task
}

// mustListTasks lists every task or fails the test
func mustListTasks(t *testing.T, repo *Repository) []*models.Task {
	t.Helper()
	tasks, err := repo.ListTasks(context.Background(), models.TaskFilter{})
	if err != nil {
		t.Fatalf("Failed to list tasks: %v", err)
	}
	return tasks
}

// assertTask checks a single listed row
func assertTask(t *testing.T, got *models.Task, id types.TaskID, description string, status models.Status) {
	t.Helper()
	if got.ID != id {
		t.Errorf("Expected id %d, got %d", id, got.ID)
	}
	if got.Description != description {
		t.Errorf("Expected description %q, got %q", description, got.Description)
	}
	if got.Status != status {
		t.Errorf("Expected status %q, got %q", status, got.Status)
	}
}
