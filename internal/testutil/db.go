// Package testutil holds task store fixtures shared by package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/types"
)

// SetupTestDB opens an in-memory task store with the full schema. The store
// is closed when the test finishes.
func SetupTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryLocation)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// SetupTestRepo returns a repository over a fresh in-memory store
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	return database.NewRepository(SetupTestDB(t).DB)
}

// CreateTestTask inserts a task row directly, skipping service validation,
// and returns its id
func CreateTestTask(t *testing.T, db *database.DB, description string, status models.Status) types.TaskID {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO tasks (task, status) VALUES (?, ?)", description, string(status))
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test task id: %v", err)
	}
	return types.TaskIDFromInt64(id)
}
