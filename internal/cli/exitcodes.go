package cli

import (
	"errors"

	"github.com/thenoetrevino/tally/internal/scoreboard"
	sessionservice "github.com/thenoetrevino/tally/internal/services/session"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: No session selected, wrong number of arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Session not found, row not found, column not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: A stored session that no longer forms a valid board.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Removing the first row, bad session names, unparsable arguments.
	ExitValidation = 5
)

// CodedError carries the exit code a failed command should terminate with
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string { return e.Err.Error() }

func (e *CodedError) Unwrap() error { return e.Err }

// ExitCode returns the process exit code for an error returned by a command
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ExitError
}

// ClassifyError maps an error to the code reported in output and its exit code
func ClassifyError(err error) (string, int) {
	switch {
	case errors.Is(err, ErrNoSession):
		return "NO_SESSION", ExitUsage
	case errors.Is(err, sessionservice.ErrSessionNotFound):
		return "SESSION_NOT_FOUND", ExitNotFound
	case errors.Is(err, scoreboard.ErrRowNotFound):
		return "ROW_NOT_FOUND", ExitNotFound
	case errors.Is(err, scoreboard.ErrColumnNotFound):
		return "COLUMN_NOT_FOUND", ExitNotFound
	case errors.Is(err, scoreboard.ErrCannotRemoveFirst):
		return "CANNOT_REMOVE_FIRST", ExitValidation
	case errors.Is(err, sessionservice.ErrEmptyName),
		errors.Is(err, sessionservice.ErrNameTooLong),
		errors.Is(err, scoreboard.ErrInvalidColumnCount),
		errors.Is(err, ErrInvalidArgument),
		errors.Is(err, ErrSessionExists):
		return "VALIDATION_ERROR", ExitValidation
	case errors.Is(err, scoreboard.ErrInvalidSnapshot):
		return "INVALID_SESSION", ExitDataErr
	default:
		return "ERROR", ExitError
	}
}
