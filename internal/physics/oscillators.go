package physics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/dynsys/internal/system"
)

// NewVanDerPol builds the Van der Pol oscillator with nonlinearity mu.
// State: [x, y] with y = dx/dt.
func NewVanDerPol(mu float64, initial []float64) *system.System {
	if initial == nil {
		initial = []float64{2.0, 0.0}
	}
	field := func(du, u []float64) {
		x, y := u[0], u[1]
		du[0] = y
		du[1] = mu*(1-x*x)*y - x
	}
	jac := func(dst *mat.Dense, u []float64) {
		x, y := u[0], u[1]
		dst.Set(0, 0, 0)
		dst.Set(0, 1, 1)
		dst.Set(1, 0, -2*mu*x*y-1)
		dst.Set(1, 1, mu*(1-x*x))
	}
	return system.New("Van der Pol", initial, field, system.WithJacobian(jac))
}

// DuffingParams holds the forced Duffing oscillator parameters. The
// forcing phase is carried as a third state component so the field stays
// autonomous.
type DuffingParams struct {
	Alpha, Beta, Delta, Gamma, Omega float64
}

func DefaultDuffingParams() DuffingParams {
	return DuffingParams{Alpha: -1.0, Beta: 1.0, Delta: 0.3, Gamma: 0.5, Omega: 1.2}
}

// NewDuffing builds the Duffing oscillator. State: [x, v, phi].
func NewDuffing(p DuffingParams, initial []float64) *system.System {
	if initial == nil {
		initial = []float64{1.0, 0.0, 0.0}
	}
	field := func(du, u []float64) {
		x, v, phi := u[0], u[1], u[2]
		du[0] = v
		du[1] = -p.Delta*v - p.Alpha*x - p.Beta*x*x*x + p.Gamma*math.Cos(phi)
		du[2] = p.Omega
	}
	jac := func(dst *mat.Dense, u []float64) {
		x, phi := u[0], u[2]
		dst.Set(0, 0, 0)
		dst.Set(0, 1, 1)
		dst.Set(0, 2, 0)
		dst.Set(1, 0, -p.Alpha-3*p.Beta*x*x)
		dst.Set(1, 1, -p.Delta)
		dst.Set(1, 2, -p.Gamma*math.Sin(phi))
		dst.Set(2, 0, 0)
		dst.Set(2, 1, 0)
		dst.Set(2, 2, 0)
	}
	return system.New("Duffing", initial, field, system.WithJacobian(jac))
}

// NewHarmonicOscillator builds the linear oscillator with angular
// frequency omega. State: [x, v].
func NewHarmonicOscillator(omega float64, initial []float64) *system.System {
	if initial == nil {
		initial = []float64{1.0, 0.0}
	}
	w2 := omega * omega
	field := func(du, u []float64) {
		du[0] = u[1]
		du[1] = -w2 * u[0]
	}
	jac := func(dst *mat.Dense, u []float64) {
		dst.Set(0, 0, 0)
		dst.Set(0, 1, 1)
		dst.Set(1, 0, -w2)
		dst.Set(1, 1, 0)
	}
	return system.New("harmonic oscillator", initial, field, system.WithJacobian(jac))
}

// NewLinearDecay builds du/dt = -rate*u in one dimension.
func NewLinearDecay(rate float64, initial []float64) *system.System {
	if initial == nil {
		initial = []float64{1.0}
	}
	field := func(du, u []float64) {
		du[0] = -rate * u[0]
	}
	jac := func(dst *mat.Dense, _ []float64) {
		dst.Set(0, 0, -rate)
	}
	return system.New("linear decay", initial, field, system.WithJacobian(jac))
}
