package ode

// Options configures a solve or an integrator. The zero value is usable;
// unset numeric fields fall back to the defaults below.
type Options struct {
	// AbsTol and RelTol control the local error test for adaptive
	// algorithms. Fixed-step algorithms ignore them.
	AbsTol float64
	RelTol float64

	// InitialStep seeds the step size. For fixed-step algorithms this is
	// the step size throughout.
	InitialStep float64

	// MinStep aborts the solve when adaptive refinement would go below it.
	MinStep float64

	// MaxStep caps the step size. Zero means no cap beyond the interval.
	MaxStep float64

	// MaxSteps bounds the number of accepted steps.
	MaxSteps int

	// SaveAt lists explicit times to record. When non-empty it determines
	// the solution contents exactly; the solver steps precisely onto each
	// entry rather than interpolating.
	SaveAt []float64

	// TStops lists times the solver must step onto without necessarily
	// recording them.
	TStops []float64

	// SaveStart records the state at T0.
	SaveStart bool

	// SaveEverystep records every accepted step (including T0). Ignored
	// when SaveAt is set.
	SaveEverystep bool
}

const (
	defaultAbsTol    = 1e-6
	defaultRelTol    = 1e-3
	defaultMinStep   = 1e-12
	defaultMaxSteps  = 10_000_000
	defaultFixedStep = 0.01
)

func (o Options) withDefaults() Options {
	if o.AbsTol <= 0 {
		o.AbsTol = defaultAbsTol
	}
	if o.RelTol <= 0 {
		o.RelTol = defaultRelTol
	}
	if o.MinStep <= 0 {
		o.MinStep = defaultMinStep
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = defaultMaxSteps
	}
	return o
}
