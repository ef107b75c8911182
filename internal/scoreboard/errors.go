package scoreboard

import (
	"errors"
	"fmt"
)

// Board errors. ErrRowNotFound and ErrColumnNotFound both match ErrNotFound with errors.Is.
var (
	ErrNotFound       = errors.New("not found")
	ErrRowNotFound    = fmt.Errorf("row %w", ErrNotFound)
	ErrColumnNotFound = fmt.Errorf("column %w", ErrNotFound)

	ErrCannotRemoveFirst = errors.New("cannot remove the first row")

	// Construction errors
	ErrInvalidColumnCount = errors.New("columns per row must be positive")
	ErrInvalidSnapshot    = errors.New("invalid snapshot")
)
