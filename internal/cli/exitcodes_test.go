package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tally/internal/scoreboard"
	sessionservice "github.com/thenoetrevino/tally/internal/services/session"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantExit int
	}{
		{"no session", ErrNoSession, "NO_SESSION", ExitUsage},
		{"session", fmt.Errorf("%w: cup", sessionservice.ErrSessionNotFound), "SESSION_NOT_FOUND", ExitNotFound},
		{"row", fmt.Errorf("load: %w", scoreboard.ErrRowNotFound), "ROW_NOT_FOUND", ExitNotFound},
		{"column", scoreboard.ErrColumnNotFound, "COLUMN_NOT_FOUND", ExitNotFound},
		{"first row", scoreboard.ErrCannotRemoveFirst, "CANNOT_REMOVE_FIRST", ExitValidation},
		{"empty name", sessionservice.ErrEmptyName, "VALIDATION_ERROR", ExitValidation},
		{"columns", scoreboard.ErrInvalidColumnCount, "VALIDATION_ERROR", ExitValidation},
		{"argument", ErrInvalidArgument, "VALIDATION_ERROR", ExitValidation},
		{"exists", ErrSessionExists, "VALIDATION_ERROR", ExitValidation},
		{"snapshot", scoreboard.ErrInvalidSnapshot, "INVALID_SESSION", ExitDataErr},
		{"other", errors.New("disk on fire"), "ERROR", ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, exit := ClassifyError(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantExit, exit)
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("plain")))

	wrapped := fmt.Errorf("command: %w", &CodedError{Code: ExitNotFound, Err: scoreboard.ErrRowNotFound})
	assert.Equal(t, ExitNotFound, ExitCode(wrapped))
	assert.ErrorIs(t, wrapped, scoreboard.ErrRowNotFound)
}
