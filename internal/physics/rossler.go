package physics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/dynsys/internal/system"
)

type RosslerParams struct {
	A, B, C float64
}

func DefaultRosslerParams() RosslerParams {
	return RosslerParams{A: 0.2, B: 0.2, C: 5.7}
}

// NewRossler builds the Rössler system at the given initial state, or
// {1, 1, 1} when initial is nil.
func NewRossler(p RosslerParams, initial []float64) *system.System {
	if initial == nil {
		initial = []float64{1.0, 1.0, 1.0}
	}
	field := func(du, u []float64) {
		x, y, z := u[0], u[1], u[2]
		du[0] = -y - z
		du[1] = x + p.A*y
		du[2] = p.B + z*(x-p.C)
	}
	jac := func(dst *mat.Dense, u []float64) {
		x, z := u[0], u[2]
		dst.Set(0, 0, 0)
		dst.Set(0, 1, -1)
		dst.Set(0, 2, -1)
		dst.Set(1, 0, 1)
		dst.Set(1, 1, p.A)
		dst.Set(1, 2, 0)
		dst.Set(2, 0, z)
		dst.Set(2, 1, 0)
		dst.Set(2, 2, x-p.C)
	}
	return system.New("Rossler", initial, field, system.WithJacobian(jac))
}
