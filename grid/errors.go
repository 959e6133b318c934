package grid

import "errors"

// ErrNotFound is returned by At for a position with no entry, whether the
// owning chunk is missing or just the local slot. It is the only error
// this package produces.
var ErrNotFound = errors.New("grid: position not found")
