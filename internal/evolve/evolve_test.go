package evolve_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dynsys/internal/evolve"
	"github.com/san-kum/dynsys/internal/ode"
	"github.com/san-kum/dynsys/internal/system"
)

// newDecay builds du/dt = -u and reports field evaluations through calls.
func newDecay(initial float64, calls *int) *system.System {
	return system.New("decay", []float64{initial}, func(du, u []float64) {
		if calls != nil {
			*calls++
		}
		du[0] = -u[0]
	})
}

func tightCfg() evolve.Config {
	return evolve.Config{Options: ode.Options{AbsTol: 1e-10, RelTol: 1e-10}}
}

var _ = Describe("BuildProblem", func() {
	It("snapshots the state instead of sharing it", func() {
		sys := newDecay(1.0, nil)
		prob := evolve.BuildProblem(sys, 2.0)

		Expect(sys.SetState([]float64{42})).To(Succeed())
		Expect(prob.Y0[0]).To(Equal(1.0))
	})

	It("builds the interval [0, T]", func() {
		prob := evolve.BuildProblem(newDecay(1.0, nil), 3.5)
		Expect(prob.T0).To(Equal(0.0))
		Expect(prob.T1).To(Equal(3.5))
	})

	It("wraps the in-place vector field", func() {
		prob := evolve.BuildProblem(newDecay(1.0, nil), 1.0)
		dy := make([]float64, 1)
		prob.F(0.7, []float64{3.0}, dy)
		Expect(dy[0]).To(Equal(-3.0))
	})

	It("does not mutate the container", func() {
		sys := newDecay(1.0, nil)
		evolve.BuildProblem(sys, 1.0)
		Expect(sys.State()).To(Equal(system.State{1.0}))
	})
})

var _ = Describe("ResolveSolver", func() {
	It("defaults to the fifth-order adaptive algorithm", func() {
		alg, _ := evolve.ResolveSolver(evolve.Config{})
		Expect(alg).To(Equal(evolve.DefaultAlgorithm))
		Expect(alg.Order()).To(Equal(5))
	})

	It("returns the chosen algorithm when set", func() {
		alg, _ := evolve.ResolveSolver(evolve.Config{Solver: ode.RK4{}})
		Expect(alg).To(Equal(ode.Algorithm(ode.RK4{})))
	})

	It("forwards the remaining options untouched", func() {
		cfg := evolve.Config{
			Solver:  ode.Euler{},
			Options: ode.Options{AbsTol: 1e-9, RelTol: 1e-7, TStops: []float64{0.5}},
		}
		_, opts := evolve.ResolveSolver(cfg)
		Expect(opts.AbsTol).To(Equal(1e-9))
		Expect(opts.RelTol).To(Equal(1e-7))
		Expect(opts.TStops).To(Equal([]float64{0.5}))
	})

	It("leaves the caller's config intact", func() {
		cfg := evolve.Config{Options: ode.Options{AbsTol: 1e-9}}
		evolve.ResolveSolver(cfg)
		Expect(cfg.Solver).To(BeNil())
		Expect(cfg.Options.AbsTol).To(Equal(1e-9))
	})
})

var _ = Describe("Evolve", func() {
	It("returns the initial state for a zero time span", func() {
		sys := newDecay(1.0, nil)
		final, err := evolve.Evolve(sys, 0, evolve.Config{})
		Expect(err).ToNot(HaveOccurred())
		Expect(final).To(Equal(system.State{1.0}))
	})

	It("matches exp(-1) for linear decay over one time unit", func() {
		sys := newDecay(1.0, nil)
		final, err := evolve.Evolve(sys, 1.0, tightCfg())
		Expect(err).ToNot(HaveOccurred())
		Expect(final[0]).To(BeNumerically("~", math.Exp(-1), 1e-6))
	})

	It("stays within default solver tolerance with the zero-value config", func() {
		sys := newDecay(1.0, nil)
		final, err := evolve.Evolve(sys, 1.0, evolve.Config{})
		Expect(err).ToNot(HaveOccurred())
		Expect(final[0]).To(BeNumerically("~", math.Exp(-1), 5e-3))
	})

	It("does not mutate the container", func() {
		sys := newDecay(1.0, nil)
		_, err := evolve.Evolve(sys, 1.0, evolve.Config{})
		Expect(err).ToNot(HaveOccurred())
		Expect(sys.State()).To(Equal(system.State{1.0}))
	})

	It("propagates solver failures unchanged", func() {
		sys := newDecay(1.0, nil)
		_, err := evolve.Evolve(sys, 1.0, evolve.Config{Solver: ode.Alg("tsit5")})
		Expect(err).To(MatchError(ode.ErrUnknownAlgorithm))
	})
})

var _ = Describe("EvolveInPlace", func() {
	It("overwrites the container state with the result", func() {
		sys := newDecay(1.0, nil)
		final, err := evolve.EvolveInPlace(sys, 1.0, tightCfg())
		Expect(err).ToNot(HaveOccurred())
		Expect(sys.State()).To(Equal(final))
	})

	It("composes additively for autonomous fields", func() {
		sys := newDecay(1.0, nil)
		_, err := evolve.EvolveInPlace(sys, 0.4, tightCfg())
		Expect(err).ToNot(HaveOccurred())
		stepwise, err := evolve.EvolveInPlace(sys, 0.6, tightCfg())
		Expect(err).ToNot(HaveOccurred())

		oneShot, err := evolve.Evolve(newDecay(1.0, nil), 1.0, tightCfg())
		Expect(err).ToNot(HaveOccurred())

		Expect(stepwise[0]).To(BeNumerically("~", oneShot[0], 1e-6))
	})
})

var _ = Describe("Trajectory", func() {
	It("samples floor(T/dt)+1 rows starting at the initial state", func() {
		sys := newDecay(1.0, nil)
		tr, err := evolve.Trajectory(sys, 1.0, 0.05, tightCfg())
		Expect(err).ToNot(HaveOccurred())

		Expect(tr.Len()).To(Equal(21))
		Expect(tr.Times[0]).To(Equal(0.0))
		Expect(tr.States[0]).To(Equal(system.State{1.0}))
	})

	It("matches the decay curve at t=0, 0.5, 1.0", func() {
		sys := newDecay(1.0, nil)
		tr, err := evolve.Trajectory(sys, 1.0, 0.5, tightCfg())
		Expect(err).ToNot(HaveOccurred())

		Expect(tr.Len()).To(Equal(3))
		Expect(tr.States[0][0]).To(BeNumerically("~", 1.0, 1e-6))
		Expect(tr.States[1][0]).To(BeNumerically("~", math.Exp(-0.5), 1e-6))
		Expect(tr.States[2][0]).To(BeNumerically("~", math.Exp(-1.0), 1e-6))
	})

	It("excludes an endpoint that is not a grid multiple", func() {
		sys := newDecay(1.0, nil)
		tr, err := evolve.Trajectory(sys, 1.0, 0.3, tightCfg())
		Expect(err).ToNot(HaveOccurred())

		Expect(tr.Len()).To(Equal(4))
		_, last := tr.Last()
		lastT, _ := tr.At(tr.Len() - 1)
		Expect(lastT).To(BeNumerically("~", 0.9, 1e-12))
		Expect(last[0]).To(BeNumerically("~", math.Exp(-lastT), 1e-6))
	})

	It("rejects a non-positive horizon before touching the solver", func() {
		for _, total := range []float64{0, -1} {
			calls := 0
			sys := newDecay(1.0, &calls)
			_, err := evolve.Trajectory(sys, total, 0.05, evolve.Config{})
			Expect(err).To(MatchError(evolve.ErrNonPositiveTime))
			Expect(calls).To(BeZero())
		}
	})

	It("rejects a non-positive sampling interval", func() {
		sys := newDecay(1.0, nil)
		_, err := evolve.Trajectory(sys, 1.0, 0, evolve.Config{})
		Expect(err).To(MatchError(evolve.ErrNonPositiveStep))
	})

	It("overrides a caller-supplied SaveAt with the grid", func() {
		sys := newDecay(1.0, nil)
		cfg := tightCfg()
		cfg.Options.SaveAt = []float64{0.123}
		tr, err := evolve.Trajectory(sys, 1.0, 0.5, cfg)
		Expect(err).ToNot(HaveOccurred())
		Expect(tr.Times).To(Equal([]float64{0, 0.5, 1.0}))
	})

	It("does not mutate the container", func() {
		sys := newDecay(1.0, nil)
		_, err := evolve.Trajectory(sys, 1.0, 0.5, evolve.Config{})
		Expect(err).ToNot(HaveOccurred())
		Expect(sys.State()).To(Equal(system.State{1.0}))
	})
})

var _ = Describe("Solutions", func() {
	It("returns only the final state without an explicit grid", func() {
		prob := evolve.BuildProblem(newDecay(1.0, nil), 1.0)
		states, err := evolve.Solutions(prob, tightCfg())
		Expect(err).ToNot(HaveOccurred())
		Expect(states).To(HaveLen(1))
		Expect(states[0][0]).To(BeNumerically("~", math.Exp(-1), 1e-6))
	})

	It("returns one state per explicit sample time", func() {
		prob := evolve.BuildProblem(newDecay(1.0, nil), 1.0)
		cfg := tightCfg()
		cfg.Options.SaveAt = []float64{0.25, 0.5, 0.75}
		states, err := evolve.Solutions(prob, cfg)
		Expect(err).ToNot(HaveOccurred())
		Expect(states).To(HaveLen(3))
		Expect(states[1][0]).To(BeNumerically("~", math.Exp(-0.5), 1e-6))
	})
})

var _ = Describe("NewIntegrator", func() {
	It("steps to the horizon and agrees with Evolve", func() {
		sys := newDecay(1.0, nil)
		it, err := evolve.NewIntegrator(sys, 1.0, tightCfg())
		Expect(err).ToNot(HaveOccurred())

		for !it.Done() {
			Expect(it.Step()).To(Succeed())
		}

		oneShot, err := evolve.Evolve(newDecay(1.0, nil), 1.0, tightCfg())
		Expect(err).ToNot(HaveOccurred())
		Expect(it.Y()[0]).To(BeNumerically("~", oneShot[0], 1e-9))
	})
})
