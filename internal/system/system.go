// Package system defines the state container for continuous dynamical
// systems: a mutable state vector paired with the vector field governing
// its evolution and, optionally, the field's Jacobian.
package system

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// State is a phase-space point.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// VectorField computes du/dt for the current state u, writing the result
// in place into du. Both slices have the system dimension.
type VectorField func(du, u []float64)

// Jacobian writes the matrix of partial derivatives of the vector field
// at u into dst, which is pre-sized to dimension x dimension.
type Jacobian func(dst *mat.Dense, u []float64)

// System couples a state vector with its vector field. The state is owned
// exclusively by the container; its length is fixed at construction and
// defines the system dimension. Name is a display label with no semantic
// effect.
//
// A System is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access.
type System struct {
	name  string
	state State
	field VectorField
	jac   Jacobian
}

// Option configures optional capabilities of a System.
type Option func(*System)

// WithJacobian attaches an analytic Jacobian.
func WithJacobian(j Jacobian) Option {
	return func(s *System) { s.jac = j }
}

// New builds a container with a snapshot copy of initial.
func New(name string, initial []float64, field VectorField, opts ...Option) *System {
	s := &System{
		name:  name,
		state: State(initial).Clone(),
		field: field,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *System) Name() string   { return s.name }
func (s *System) Dimension() int { return len(s.state) }

// State returns a copy of the current state.
func (s *System) State() State { return s.state.Clone() }

// SetState overwrites the current state. The dimension is fixed for the
// lifetime of the container.
func (s *System) SetState(x []float64) error {
	if len(x) != len(s.state) {
		return fmt.Errorf("%w: have %d, want %d", ErrDimensionMismatch, len(x), len(s.state))
	}
	copy(s.state, x)
	return nil
}

// Eval writes the vector field at u into du.
func (s *System) Eval(du, u []float64) { s.field(du, u) }

// Field returns the underlying vector field.
func (s *System) Field() VectorField { return s.field }

// Jacobian returns the attached Jacobian, if any.
func (s *System) Jacobian() (Jacobian, bool) { return s.jac, s.jac != nil }

func (s *System) String() string {
	return fmt.Sprintf("%d-dimensional system %q", len(s.state), s.name)
}
