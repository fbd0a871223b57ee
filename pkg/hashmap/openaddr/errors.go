package openaddr

import "errors"

// ErrKeyNotFound is returned by the indexed-read accessors (At) when the
// requested key has no entry in the table. Every other read path (Get,
// Lookup) signals absence by a boolean instead of an error.
var ErrKeyNotFound = errors.New("openaddr: key not found")
