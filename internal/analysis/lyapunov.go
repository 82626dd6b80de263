// Package analysis computes qualitative properties of dynamical systems
// from evolution runs and Jacobians.
package analysis

import (
	"math"

	"github.com/san-kum/dynsys/internal/evolve"
	"github.com/san-kum/dynsys/internal/system"
)

// LyapunovExponent estimates the largest Lyapunov exponent by the
// trajectory separation method: evolve a reference and a perturbed copy
// in parallel over renormalization windows of length dt, accumulating the
// log of their divergence. A positive value indicates chaos.
//
// The containers passed in are never touched; both trajectories run on
// private copies.
func LyapunovExponent(sys *system.System, total, dt, perturbation float64, cfg evolve.Config) (float64, error) {
	if total <= 0 {
		return 0, evolve.ErrNonPositiveTime
	}
	if dt <= 0 {
		return 0, evolve.ErrNonPositiveStep
	}

	x0 := sys.State()
	x0p := x0.Clone()
	x0p[0] += perturbation

	ref := system.New(sys.Name(), x0, sys.Field())
	pert := system.New(sys.Name(), x0p, sys.Field())

	d0 := perturbation
	sumLog := 0.0
	count := 0

	for t := 0.0; t < total; t += dt {
		x, err := evolve.EvolveInPlace(ref, dt, cfg)
		if err != nil {
			return 0, err
		}
		xp, err := evolve.EvolveInPlace(pert, dt, cfg)
		if err != nil {
			return 0, err
		}

		sep := 0.0
		for i := range x {
			diff := xp[i] - x[i]
			sep += diff * diff
		}
		sep = math.Sqrt(sep)

		if sep > 0 && d0 > 0 {
			sumLog += math.Log(sep / d0)
			count++

			// Rescale the perturbed copy back to distance d0 so the
			// separation stays in the linear regime.
			scale := d0 / sep
			for i := range xp {
				xp[i] = x[i] + (xp[i]-x[i])*scale
			}
			if err := pert.SetState(xp); err != nil {
				return 0, err
			}
		}
	}

	if count == 0 {
		return 0, nil
	}
	return sumLog / (float64(count) * dt), nil
}
