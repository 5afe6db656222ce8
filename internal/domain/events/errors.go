package events

import "errors"

// ErrNotFound indicates no event row matches the given identifier.
var ErrNotFound = errors.New("event not found")
