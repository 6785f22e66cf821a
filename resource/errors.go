package resource

import "errors"

// ErrNoHandler is returned by Match when no handler is registered under
// the composed method name.
var ErrNoHandler = errors.New("no handler registered")

// ErrMethodNotAllowed is returned by Match when the HTTP method has no
// base name in the verb table for the addressed scope.
var ErrMethodNotAllowed = errors.New("method not allowed")
