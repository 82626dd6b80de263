package ode

import "errors"

var (
	// ErrNilFunc indicates a problem without a right-hand side.
	ErrNilFunc = errors.New("ode: problem has no right-hand side")

	// ErrEmptyState indicates a problem with a zero-length initial state.
	ErrEmptyState = errors.New("ode: empty initial state")

	// ErrBackwardInterval indicates T1 < T0.
	ErrBackwardInterval = errors.New("ode: time interval runs backward")

	// ErrUnknownAlgorithm indicates an algorithm this library does not implement.
	ErrUnknownAlgorithm = errors.New("ode: unknown algorithm")

	// ErrStepUnderflow indicates the adaptive step size fell below MinStep
	// without meeting the error tolerance.
	ErrStepUnderflow = errors.New("ode: step size underflow")

	// ErrMaxSteps indicates the step budget was exhausted before T1.
	ErrMaxSteps = errors.New("ode: maximum step count exceeded")

	// ErrUnstable indicates the state became NaN or Inf during integration.
	ErrUnstable = errors.New("ode: solution diverged (NaN or Inf)")
)
