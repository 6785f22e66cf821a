package dispatch

import "errors"

// ErrDuplicateCollection is returned when two resources register the same
// collection identifier.
var ErrDuplicateCollection = errors.New("duplicate collection")

// ErrUnknownCollection is returned by URL for collections with no
// registered resource.
var ErrUnknownCollection = errors.New("unknown collection")
