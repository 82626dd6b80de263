package physics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/dynsys/internal/system"
)

// LorenzParams holds the classic chaotic parameter set by default.
type LorenzParams struct {
	Sigma, Rho, Beta float64
}

func DefaultLorenzParams() LorenzParams {
	return LorenzParams{Sigma: 10.0, Rho: 28.0, Beta: 8.0 / 3.0}
}

// NewLorenz builds the Lorenz system at the given initial state, or
// {1, 1, 1} when initial is nil.
func NewLorenz(p LorenzParams, initial []float64) *system.System {
	if initial == nil {
		initial = []float64{1.0, 1.0, 1.0}
	}
	field := func(du, u []float64) {
		x, y, z := u[0], u[1], u[2]
		du[0] = p.Sigma * (y - x)
		du[1] = x*(p.Rho-z) - y
		du[2] = x*y - p.Beta*z
	}
	jac := func(dst *mat.Dense, u []float64) {
		x, y, z := u[0], u[1], u[2]
		dst.Set(0, 0, -p.Sigma)
		dst.Set(0, 1, p.Sigma)
		dst.Set(0, 2, 0)
		dst.Set(1, 0, p.Rho-z)
		dst.Set(1, 1, -1)
		dst.Set(1, 2, -x)
		dst.Set(2, 0, y)
		dst.Set(2, 1, x)
		dst.Set(2, 2, -p.Beta)
	}
	return system.New("Lorenz", initial, field, system.WithJacobian(jac))
}
