package events

import "errors"

// ErrClosed is returned when sending on a closed publisher
var ErrClosed = errors.New("event publisher closed")
