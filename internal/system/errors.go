package system

import "errors"

var (
	// ErrDimensionMismatch indicates a state vector whose length differs
	// from the container's fixed dimension.
	ErrDimensionMismatch = errors.New("system: state dimension mismatch")

	// ErrNoJacobian indicates an operation requiring the Jacobian
	// capability on a container without one.
	ErrNoJacobian = errors.New("system: no Jacobian attached")
)
