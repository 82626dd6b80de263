package ode

import "fmt"

// Algorithm identifies a solver method. Use one of the concrete types
// below, or [Alg] to name an algorithm whose existence is only checked
// when the solve runs.
type Algorithm interface {
	Name() string
	Order() int
}

// DP5 is the Dormand-Prince 5(4) explicit adaptive pair.
type DP5 struct{}

func (DP5) Name() string { return "dp5" }
func (DP5) Order() int   { return 5 }

// RK4 is the classic fixed-step fourth-order Runge-Kutta method.
type RK4 struct{}

func (RK4) Name() string { return "rk4" }
func (RK4) Order() int   { return 4 }

// Euler is the fixed-step forward Euler method.
type Euler struct{}

func (Euler) Name() string { return "euler" }
func (Euler) Order() int   { return 1 }

// Alg names an algorithm by string. Resolution is deferred to the solve
// call, which fails with [ErrUnknownAlgorithm] for names not implemented
// here.
type Alg string

func (a Alg) Name() string { return string(a) }
func (Alg) Order() int     { return 0 }

// stepper advances a single trial step. Adaptive steppers fill errEst
// with the per-component local error estimate; fixed steppers leave it
// untouched and report adaptive()==false.
type stepper interface {
	step(f Func, t float64, y []float64, h float64, yNew, errEst []float64)
	adaptive() bool
	evals() int
}

func stepperFor(alg Algorithm, n int) (stepper, error) {
	switch alg.(type) {
	case DP5:
		return newDP5Stepper(n), nil
	case RK4:
		return newRK4Stepper(n), nil
	case Euler:
		return &eulerStepper{k: make([]float64, n)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg.Name())
	}
}
