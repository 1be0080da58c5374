// Package exitcode maps command outcomes onto process exit codes.
package exitcode

import (
	"errors"

	"tableflip.dev/todo/pkg/interpreter"
)

const (
	// Success is also used after printing help.
	Success = 0

	// UserError is a recoverable command error: bad arguments, unknown verb,
	// invalid list name.
	UserError = 1

	// StorageError is a fatal I/O failure or corrupt persisted data.
	StorageError = 2
)

// For returns the exit code for err.
func For(err error) int {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, interpreter.ErrUsage):
		return UserError
	default:
		return StorageError
	}
}
