package state

import "errors"

// ErrNoResult is returned when no lift computation has succeeded yet.
var ErrNoResult = errors.New("state: no lift result recorded")
