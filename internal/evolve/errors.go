package evolve

import "errors"

var (
	// ErrNonPositiveTime rejects a trajectory request with a non-positive
	// horizon.
	ErrNonPositiveTime = errors.New("evolve: total time must be positive")

	// ErrNonPositiveStep rejects a trajectory request with a non-positive
	// sampling interval.
	ErrNonPositiveStep = errors.New("evolve: sampling interval must be positive")
)
