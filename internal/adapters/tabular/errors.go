package tabular

import (
	"errors"
)

// Sentinel error kinds for this package.
var (
	ErrMissingColumn = errors.New("missing column")
	ErrMalformedRow  = errors.New("malformed row")
)
