// Package models holds the domain types shared by the store, the service
// layer and the interactive surfaces.
package models

import (
	"fmt"

	"github.com/thenoetrevino/todo/internal/types"
)

// Status is the lifecycle state of a task. Only the two literals below are
// ever written to the status column.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Statuses lists every valid status in lifecycle order
var Statuses = []Status{StatusPending, StatusCompleted}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus converts stored or user supplied text into a Status
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown task status %q", raw)
	}
	return s, nil
}

// Task is a unit of work with a description and a completion status
type Task struct {
	ID          types.TaskID `json:"id"`
	Description string       `json:"description"`
	Status      Status       `json:"status"`
}

// GetID returns the task id as a plain integer for quiet output
func (t *Task) GetID() int64 {
	return t.ID.ToInt64()
}

// IsCompleted reports whether the task has reached its final status
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// TaskFilter narrows a task listing. A nil Status lists every task.
type TaskFilter struct {
	Status *Status
}
