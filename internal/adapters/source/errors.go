package source

import (
	"errors"
)

// ErrMissingInput reports an extract or lookup file that cannot be read.
var ErrMissingInput = errors.New("missing input")
