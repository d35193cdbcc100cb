package topology

import "errors"

var (
	// ErrInvalidHost is returned for host strings that do not parse as "name:port".
	ErrInvalidHost = errors.New("topology: invalid host")

	// ErrInvalidTopology is returned for descriptors that are incomplete for their mode.
	ErrInvalidTopology = errors.New("topology: invalid topology")
)
