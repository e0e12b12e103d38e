package task

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/todo/internal/database"
)

// Task-related errors
var (
	// ErrInvalidInput is the root of every validation error. Callers can
	// match it with errors.Is to tell bad input from a storage failure.
	ErrInvalidInput = errors.New("invalid input")

	// Validation errors
	ErrEmptyDescription = fmt.Errorf("%w: task description cannot be empty", ErrInvalidInput)
	ErrInvalidTaskID    = fmt.Errorf("%w: task ID must be a positive integer", ErrInvalidInput)
	ErrInvalidStatus    = fmt.Errorf("%w: unknown task status", ErrInvalidInput)

	// Business logic errors
	ErrTaskNotFound = database.ErrTaskNotFound

	// ErrStorageUnavailable is re-exported so callers of the service do not
	// need to import the database package to classify failures
	ErrStorageUnavailable = database.ErrStorageUnavailable
)
