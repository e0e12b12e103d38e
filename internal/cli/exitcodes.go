package cli

import (
	"errors"

	"github.com/thenoetrevino/todo/internal/database"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// Exit codes for the one-shot subcommands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error: bad usage, an unexpected failure,
	// or anything that doesn't fit the categories below.
	ExitError = 1

	// ExitNotFound indicates no task has the requested id.
	ExitNotFound = 3

	// ExitStorage indicates the task store could not be opened or used.
	ExitStorage = 4

	// ExitValidation indicates rejected input: an empty description,
	// a non-numeric id, or an unknown status.
	ExitValidation = 5
)

// ExitCode maps an error returned by a command to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, taskservice.ErrTaskNotFound):
		return ExitNotFound
	case errors.Is(err, taskservice.ErrInvalidInput):
		return ExitValidation
	case errors.Is(err, database.ErrStorageUnavailable):
		return ExitStorage
	default:
		return ExitError
	}
}

// ErrorCode is the machine-readable code reported in JSON error output
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitNotFound:
		return "TASK_NOT_FOUND"
	case ExitValidation:
		return "INVALID_INPUT"
	case ExitStorage:
		return "STORAGE_UNAVAILABLE"
	default:
		return "ERROR"
	}
}
