package ode

// Func is the right-hand side of an ODE system. It writes the derivative
// of y at time t into dy; dy has the same length as y and is owned by the
// caller for the duration of the call.
type Func func(t float64, y, dy []float64)

// Problem is an immutable initial value problem description. Y0 is owned
// by the problem; callers snapshot their state before building one.
type Problem struct {
	F      Func
	Y0     []float64
	T0, T1 float64
}

func (p Problem) validate() error {
	if p.F == nil {
		return ErrNilFunc
	}
	if len(p.Y0) == 0 {
		return ErrEmptyState
	}
	if p.T1 < p.T0 {
		return ErrBackwardInterval
	}
	return nil
}
