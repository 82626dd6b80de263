package ode

import "sort"

// Integrator is a live stepping handle over a problem. It records no
// history; callers observe state between steps via T and Y.
type Integrator struct {
	d     *driver
	stops []float64
	next  int
}

// Init prepares an integrator for prob without taking a step and without
// saving any point.
func Init(prob Problem, alg Algorithm, opts Options) (*Integrator, error) {
	o := opts.withDefaults()
	d, err := newDriver(prob, alg, o)
	if err != nil {
		return nil, err
	}

	stops := make([]float64, 0, len(o.TStops)+1)
	for _, s := range o.TStops {
		if s > prob.T0 && s < prob.T1 {
			stops = append(stops, s)
		}
	}
	stops = append(stops, prob.T1)
	sort.Float64s(stops)

	return &Integrator{d: d, stops: stops}, nil
}

// Step advances one accepted step, stopping exactly on forced stop times
// and on T1. Calling Step after Done is a no-op.
func (it *Integrator) Step() error {
	if it.Done() {
		return nil
	}
	for it.next < len(it.stops) && it.stops[it.next] <= it.d.t {
		it.next++
	}
	if it.next >= len(it.stops) {
		return nil
	}
	return it.d.stepOnce(it.stops[it.next])
}

// T returns the current time.
func (it *Integrator) T() float64 { return it.d.t }

// Y returns a copy of the current state.
func (it *Integrator) Y() []float64 {
	return append([]float64(nil), it.d.y...)
}

// Done reports whether the integrator has reached T1.
func (it *Integrator) Done() bool { return it.d.t >= it.d.t1 }

// Stats returns the work counters so far.
func (it *Integrator) Stats() Statistics { return it.d.stats }
