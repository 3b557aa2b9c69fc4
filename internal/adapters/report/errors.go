package report

import "errors"

// ErrWrite reports an output file that could not be written.
var ErrWrite = errors.New("report write failed")
