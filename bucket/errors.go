package bucket

import "errors"

// ErrNotFound is returned by At for a key with no assigned value. It is
// the only error this package produces; every mutating operation is total.
var ErrNotFound = errors.New("bucket: key not found")
