package types

import (
	"fmt"
	"strconv"
	"strings"
)

// ID types give the board's identifiers semantic meaning across layers.

// RowID identifies a row on a board. Row ids are never reused within a board's lifetime.
type RowID string

// SessionID identifies a persisted board session
type SessionID string

const rowIDPrefix = "row-"

// RowIDFromSeq builds the row id for the given sequence number ("row-<n>")
func RowIDFromSeq(seq int) RowID {
	return RowID(rowIDPrefix + strconv.Itoa(seq))
}

// Seq returns the sequence number encoded in a row id
func (id RowID) Seq() (int, error) {
	raw, ok := strings.CutPrefix(string(id), rowIDPrefix)
	if !ok {
		return 0, fmt.Errorf("row id %q: missing %q prefix", id, rowIDPrefix)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("row id %q: invalid sequence", id)
	}
	return n, nil
}

func (id RowID) String() string {
	return string(id)
}

func (id SessionID) String() string {
	return string(id)
}
