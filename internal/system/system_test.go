package system

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestState_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		valid bool
	}{
		{"empty", State{}, true},
		{"normal", State{1.0, 2.0, 3.0}, true},
		{"zeros", State{0.0, 0.0}, true},
		{"with NaN", State{1.0, math.NaN()}, false},
		{"with +Inf", State{1.0, math.Inf(1)}, false},
		{"with -Inf", State{1.0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestState_Norm(t *testing.T) {
	tests := []struct {
		state    State
		expected float64
	}{
		{State{3, 4}, 5.0},
		{State{1, 0}, 1.0},
		{State{0, 0}, 0.0},
		{State{1, 1, 1, 1}, 2.0},
	}

	for _, tt := range tests {
		if got := tt.state.Norm(); math.Abs(got-tt.expected) > 1e-10 {
			t.Errorf("Norm(%v) = %v, want %v", tt.state, got, tt.expected)
		}
	}
}

func TestState_Clone(t *testing.T) {
	s := State{1, 2, 3}
	c := s.Clone()
	c[0] = 99
	if s[0] == 99 {
		t.Error("Clone did not create independent copy")
	}
}

func decayField(du, u []float64) {
	du[0] = -u[0]
}

func TestNewCopiesInitialState(t *testing.T) {
	initial := []float64{1.0}
	sys := New("decay", initial, decayField)

	initial[0] = 42
	if sys.State()[0] == 42 {
		t.Error("container shares the caller's initial slice")
	}
}

func TestStateReturnsCopy(t *testing.T) {
	sys := New("decay", []float64{1.0}, decayField)

	s := sys.State()
	s[0] = 42
	if sys.State()[0] == 42 {
		t.Error("State exposes the container's internal slice")
	}
}

func TestSetStateDimensionCheck(t *testing.T) {
	sys := New("decay", []float64{1.0}, decayField)

	if err := sys.SetState([]float64{1, 2}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
	if err := sys.SetState([]float64{0.5}); err != nil {
		t.Errorf("valid SetState failed: %v", err)
	}
	if sys.State()[0] != 0.5 {
		t.Errorf("state = %v after SetState", sys.State())
	}
	if sys.Dimension() != 1 {
		t.Errorf("dimension changed to %d", sys.Dimension())
	}
}

func TestEval(t *testing.T) {
	sys := New("decay", []float64{2.0}, decayField)

	du := make([]float64, 1)
	sys.Eval(du, []float64{3.0})
	if du[0] != -3.0 {
		t.Errorf("Eval wrote %v, want -3", du[0])
	}
}

func TestJacobianCapability(t *testing.T) {
	plain := New("decay", []float64{1.0}, decayField)
	if _, ok := plain.Jacobian(); ok {
		t.Error("container without Jacobian reports one")
	}

	jac := func(dst *mat.Dense, _ []float64) { dst.Set(0, 0, -1) }
	withJac := New("decay", []float64{1.0}, decayField, WithJacobian(jac))
	j, ok := withJac.Jacobian()
	if !ok {
		t.Fatal("attached Jacobian not reported")
	}
	dst := mat.NewDense(1, 1, nil)
	j(dst, []float64{0})
	if dst.At(0, 0) != -1 {
		t.Errorf("Jacobian wrote %v, want -1", dst.At(0, 0))
	}
}
