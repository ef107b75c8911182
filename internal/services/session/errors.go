package session

import "errors"

// Domain errors for session service
var (
	// Validation errors
	ErrEmptyName   = errors.New("session name cannot be empty")
	ErrNameTooLong = errors.New("session name cannot exceed 64 characters")
	ErrNilBoard    = errors.New("board cannot be nil")

	// Lookup errors
	ErrSessionNotFound = errors.New("session not found")
)
