// Package evolve advances the state of a continuous dynamical system by
// delegating to the ode solver library.
//
// The package is a thin adapter: [BuildProblem] snapshots a container into
// an immutable initial value problem, [ResolveSolver] picks the algorithm
// (defaulting to [DefaultAlgorithm]), and the evolution operations reshape
// the solver output into either a new state vector ([Evolve],
// [EvolveInPlace]) or a fixed-grid [trajectory.Trajectory] ([Trajectory]).
// No numerical method lives here.
//
// Solver failures are passed through unchanged; the only errors raised
// locally are argument validation sentinels.
package evolve

import (
	"math"

	"github.com/san-kum/dynsys/internal/ode"
	"github.com/san-kum/dynsys/internal/system"
	"github.com/san-kum/dynsys/internal/trajectory"
)

// DefaultAlgorithm is the solver used when a Config does not choose one:
// the explicit fifth-order adaptive Dormand-Prince pair.
var DefaultAlgorithm ode.Algorithm = ode.DP5{}

// DefaultDt is the trajectory sampling interval used by callers that have
// no opinion.
const DefaultDt = 0.05

// Config selects a solver algorithm and carries the options forwarded to
// it. The zero value means: default algorithm, default options.
type Config struct {
	// Solver names the algorithm. Nil selects DefaultAlgorithm. The value
	// is never forwarded inside Options; algorithm choice and option set
	// stay separate.
	Solver ode.Algorithm

	// Options passes through to the solve call unvalidated.
	Options ode.Options
}

// ResolveSolver splits cfg into the algorithm to use and the options to
// forward. It never mutates cfg or anything the caller owns.
func ResolveSolver(cfg Config) (ode.Algorithm, ode.Options) {
	alg := cfg.Solver
	if alg == nil {
		alg = DefaultAlgorithm
	}
	return alg, cfg.Options
}

// BuildProblem packages sys into an immutable problem over [0, total].
// The initial state is a snapshot copy; the container is not mutated, and
// total is not validated here.
func BuildProblem(sys *system.System, total float64) ode.Problem {
	field := sys.Field()
	return ode.Problem{
		F: func(_ float64, y, dy []float64) {
			field(dy, y)
		},
		Y0: sys.State(),
		T0: 0,
		T1: total,
	}
}

// Integrate solves prob with the given algorithm and options, storing no
// intermediate steps, and returns the final state.
func Integrate(prob ode.Problem, alg ode.Algorithm, opts ode.Options) (system.State, error) {
	opts.SaveEverystep = false
	sol, err := ode.Solve(prob, alg, opts)
	if err != nil {
		return nil, err
	}
	return system.State(sol.Last()), nil
}

// Solutions solves prob under cfg and returns every saved state in solver
// order: the states at Options.SaveAt when set, otherwise the final state
// only.
func Solutions(prob ode.Problem, cfg Config) ([]system.State, error) {
	alg, opts := ResolveSolver(cfg)
	if len(opts.SaveAt) == 0 {
		opts.SaveEverystep = false
	}
	sol, err := ode.Solve(prob, alg, opts)
	if err != nil {
		return nil, err
	}
	states := make([]system.State, len(sol.Y))
	for i, y := range sol.Y {
		states[i] = system.State(y)
	}
	return states, nil
}

// NewIntegrator initializes a live stepping handle over [0, total] for
// callers driving the solve themselves. Nothing is saved, not even the
// first point.
func NewIntegrator(sys *system.System, total float64, cfg Config) (*ode.Integrator, error) {
	alg, opts := ResolveSolver(cfg)
	opts.SaveStart = false
	opts.SaveEverystep = false
	return ode.Init(BuildProblem(sys, total), alg, opts)
}

// Evolve integrates sys forward by total time units and returns the final
// state. The container is left untouched. A zero total returns the
// current state.
func Evolve(sys *system.System, total float64, cfg Config) (system.State, error) {
	alg, opts := ResolveSolver(cfg)
	return Integrate(BuildProblem(sys, total), alg, opts)
}

// EvolveInPlace is Evolve followed by overwriting the container's state
// with the result. It is the only operation here that mutates sys.
func EvolveInPlace(sys *system.System, total float64, cfg Config) (system.State, error) {
	final, err := Evolve(sys, total, cfg)
	if err != nil {
		return nil, err
	}
	if err := sys.SetState(final); err != nil {
		return nil, err
	}
	return final, nil
}

// Trajectory samples sys on the uniform grid 0, dt, 2dt, ... up to and
// including the largest multiple of dt not above total. It fails with
// ErrNonPositiveTime before any solver work when total <= 0. The grid
// overrides any SaveAt the caller put in cfg.
func Trajectory(sys *system.System, total, dt float64, cfg Config) (*trajectory.Trajectory, error) {
	if total <= 0 {
		return nil, ErrNonPositiveTime
	}
	if dt <= 0 {
		return nil, ErrNonPositiveStep
	}

	grid := timeGrid(total, dt)

	alg, opts := ResolveSolver(cfg)
	opts.SaveAt = grid
	opts.SaveStart = false

	sol, err := ode.Solve(BuildProblem(sys, total), alg, opts)
	if err != nil {
		return nil, err
	}

	states := make([]system.State, len(sol.Y))
	for i, y := range sol.Y {
		states[i] = system.State(y)
	}
	return trajectory.New(sol.T, states), nil
}

// timeGrid builds 0, dt, ..., n*dt with n = floor(total/dt). The epsilon
// absorbs binary rounding in quotients like 1.0/0.05.
func timeGrid(total, dt float64) []float64 {
	n := int(math.Floor(total/dt + 1e-9))
	grid := make([]float64, n+1)
	for i := 1; i <= n; i++ {
		grid[i] = float64(i) * dt
	}
	if n > 0 && grid[n] > total {
		grid[n] = total
	}
	return grid
}
