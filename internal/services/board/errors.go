package board

import "errors"

// Board service errors. Model errors (not found, cannot remove first row) are
// returned unchanged from the scoreboard package.
var (
	// ErrCopyFailed means the row was formatted but no clipboard mechanism accepted it
	ErrCopyFailed = errors.New("failed to copy row to clipboard")
	ErrNilBoard   = errors.New("board cannot be nil")
)
