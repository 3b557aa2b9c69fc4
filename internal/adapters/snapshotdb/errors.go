package snapshotdb

import "errors"

var (
	// ErrOpen reports a database that could not be opened or migrated.
	ErrOpen = errors.New("snapshot db open failed")
	// ErrRunNotFound is returned when no snapshot is stored under a run id.
	ErrRunNotFound = errors.New("snapshot run not found")
)
