package mapconfig

import "errors"

var (
	// ErrInvalidK is returned when a loaded file sets k < 1.
	ErrInvalidK = errors.New("mapconfig: k must be >= 1")
	// ErrNoSuchFile is returned when Load or Watch cannot read the config
	// file at the given path (missing, unreadable or unparsable).
	ErrNoSuchFile = errors.New("mapconfig: config file not found")
)
