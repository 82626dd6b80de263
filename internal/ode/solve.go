package ode

import (
	"math"
	"sort"
)

const (
	stepSafety   = 0.9
	minStepScale = 0.2
	maxStepScale = 10.0
)

type driver struct {
	f    Func
	st   stepper
	opts Options

	t, t1  float64
	y      []float64
	yNew   []float64
	errEst []float64
	h      float64

	// onStep, when set, observes every accepted step.
	onStep func(t float64, y []float64)

	stats Statistics
}

func newDriver(prob Problem, alg Algorithm, opts Options) (*driver, error) {
	if err := prob.validate(); err != nil {
		return nil, err
	}
	n := len(prob.Y0)
	st, err := stepperFor(alg, n)
	if err != nil {
		return nil, err
	}

	d := &driver{
		f:      prob.F,
		st:     st,
		opts:   opts,
		t:      prob.T0,
		t1:     prob.T1,
		y:      append([]float64(nil), prob.Y0...),
		yNew:   make([]float64, n),
		errEst: make([]float64, n),
	}

	d.h = opts.InitialStep
	if d.h <= 0 {
		if st.adaptive() {
			d.h = (prob.T1 - prob.T0) / 100.0
			if d.h <= 0 {
				d.h = defaultFixedStep
			}
		} else {
			d.h = defaultFixedStep
		}
	}
	if opts.MaxStep > 0 && d.h > opts.MaxStep {
		d.h = opts.MaxStep
	}
	return d, nil
}

// stepOnce advances by one accepted step, never overshooting target.
func (d *driver) stepOnce(target float64) error {
	for {
		if d.stats.Steps >= d.opts.MaxSteps {
			return ErrMaxSteps
		}

		hTry := d.h
		if d.opts.MaxStep > 0 && hTry > d.opts.MaxStep {
			hTry = d.opts.MaxStep
		}
		clamped := false
		if d.t+hTry >= target {
			hTry = target - d.t
			clamped = true
		}

		d.st.step(d.f, d.t, d.y, hTry, d.yNew, d.errEst)
		d.stats.Evals += d.st.evals()

		if d.st.adaptive() {
			ratio := d.errRatio()
			if ratio > 1 {
				d.stats.Rejected++
				scale := math.Max(minStepScale, stepSafety*math.Pow(ratio, -0.25))
				d.h = hTry * scale
				if d.h < d.opts.MinStep {
					return ErrStepUnderflow
				}
				continue
			}
			if ratio > 0 {
				d.h = hTry * math.Min(maxStepScale, stepSafety*math.Pow(ratio, -0.2))
			} else {
				d.h = hTry * maxStepScale
			}
		}

		copy(d.y, d.yNew)
		if clamped {
			d.t = target
		} else {
			d.t += hTry
		}
		d.stats.Steps++
		d.stats.LastStep = hTry

		if !finite(d.y) {
			return ErrUnstable
		}
		if d.onStep != nil {
			d.onStep(d.t, d.y)
		}
		return nil
	}
}

func (d *driver) advanceTo(target float64) error {
	for d.t < target {
		if err := d.stepOnce(target); err != nil {
			return err
		}
	}
	return nil
}

func (d *driver) errRatio() float64 {
	ratio := 0.0
	for i := range d.y {
		scale := d.opts.AbsTol + d.opts.RelTol*math.Max(math.Abs(d.y[i]), math.Abs(d.yNew[i]))
		ratio = math.Max(ratio, math.Abs(d.errEst[i])/scale)
	}
	return ratio
}

func finite(y []float64) bool {
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// checkpoints merges SaveAt, TStops and T1 into a sorted, deduplicated
// list of times in (t0, t1] the solver must land on exactly.
func checkpoints(prob Problem, opts Options) []float64 {
	pts := make([]float64, 0, len(opts.SaveAt)+len(opts.TStops)+1)
	for _, s := range opts.SaveAt {
		if s > prob.T0 && s <= prob.T1 {
			pts = append(pts, s)
		}
	}
	for _, s := range opts.TStops {
		if s > prob.T0 && s < prob.T1 {
			pts = append(pts, s)
		}
	}
	pts = append(pts, prob.T1)
	sort.Float64s(pts)
	out := pts[:1]
	for _, p := range pts[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// Solve integrates prob from T0 to T1 with the given algorithm and returns
// the recorded solution. Errors from the error-control machinery propagate
// unchanged; there is no recovery.
func Solve(prob Problem, alg Algorithm, opts Options) (*Solution, error) {
	o := opts.withDefaults()
	d, err := newDriver(prob, alg, o)
	if err != nil {
		return nil, err
	}

	sol := &Solution{}
	record := func(t float64, y []float64) {
		sol.T = append(sol.T, t)
		sol.Y = append(sol.Y, append([]float64(nil), y...))
	}

	explicit := len(o.SaveAt) > 0
	everystep := o.SaveEverystep && !explicit

	saveSet := make(map[float64]bool, len(o.SaveAt))
	startSaved := false
	if explicit {
		for _, s := range o.SaveAt {
			if s <= prob.T0 {
				if !startSaved {
					record(prob.T0, d.y)
					startSaved = true
				}
				continue
			}
			if s <= prob.T1 {
				saveSet[s] = true
			}
		}
	}
	if (o.SaveStart || everystep) && !startSaved {
		record(prob.T0, d.y)
	}

	if everystep {
		d.onStep = record
	}

	for _, stop := range checkpoints(prob, o) {
		if err := d.advanceTo(stop); err != nil {
			return nil, err
		}
		if saveSet[stop] {
			record(stop, d.y)
		}
	}

	if !explicit && !everystep {
		record(d.t, d.y)
	}

	sol.Stats = d.stats
	return sol, nil
}
