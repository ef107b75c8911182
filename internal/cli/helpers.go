package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/tally/internal/types"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrSessionExists   = errors.New("session already exists")
)

// ParseRowID accepts a full row id ("row-3") or its bare sequence number ("3")
func ParseRowID(s string) (types.RowID, error) {
	s = strings.TrimSpace(s)
	id := types.RowID(s)
	if n, err := strconv.Atoi(s); err == nil {
		id = types.RowIDFromSeq(n)
	}
	if _, err := id.Seq(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return id, nil
}

// ParseColumn parses a zero-based column index. Range checks are left to the board.
func ParseColumn(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: column must be a non-negative integer, got %q", ErrInvalidArgument, s)
	}
	return n, nil
}

// ParseDelta parses a signed score adjustment such as "4", "+2" or "-1"
func ParseDelta(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: delta must be an integer, got %q", ErrInvalidArgument, s)
	}
	return n, nil
}

// ParseNameOverrides parses "column=name" pairs into a name override map
func ParseNameOverrides(pairs []string) (map[int]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[int]string, len(pairs))
	for _, p := range pairs {
		rawCol, name, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("%w: name override %q must look like column=name", ErrInvalidArgument, p)
		}
		col, err := ParseColumn(rawCol)
		if err != nil {
			return nil, err
		}
		out[col] = name
	}
	return out, nil
}
