package ode

type rk4Stepper struct {
	k1, k2, k3, k4 []float64
	yTmp           []float64
}

func newRK4Stepper(n int) *rk4Stepper {
	return &rk4Stepper{
		k1: make([]float64, n),
		k2: make([]float64, n),
		k3: make([]float64, n),
		k4: make([]float64, n),

		yTmp: make([]float64, n),
	}
}

func (s *rk4Stepper) adaptive() bool { return false }
func (s *rk4Stepper) evals() int     { return 4 }

func (s *rk4Stepper) step(f Func, t float64, y []float64, h float64, yNew, _ []float64) {
	n := len(y)

	f(t, y, s.k1)

	for i := 0; i < n; i++ {
		s.yTmp[i] = y[i] + h*0.5*s.k1[i]
	}
	f(t+h*0.5, s.yTmp, s.k2)

	for i := 0; i < n; i++ {
		s.yTmp[i] = y[i] + h*0.5*s.k2[i]
	}
	f(t+h*0.5, s.yTmp, s.k3)

	for i := 0; i < n; i++ {
		s.yTmp[i] = y[i] + h*s.k3[i]
	}
	f(t+h, s.yTmp, s.k4)

	h6 := h / 6.0
	for i := 0; i < n; i++ {
		yNew[i] = y[i] + h6*(s.k1[i]+2*s.k2[i]+2*s.k3[i]+s.k4[i])
	}
}

type eulerStepper struct {
	k []float64
}

func (s *eulerStepper) adaptive() bool { return false }
func (s *eulerStepper) evals() int     { return 1 }

func (s *eulerStepper) step(f Func, t float64, y []float64, h float64, yNew, _ []float64) {
	f(t, y, s.k)
	for i := range y {
		yNew[i] = y[i] + h*s.k[i]
	}
}
