package dump

import "errors"

// ErrDumpIO wraps any filesystem error encountered while writing an output
// artifact.
var ErrDumpIO = errors.New("dump: I/O error")
