package ode

// Dormand-Prince 5(4) coefficients.
var (
	dpA2 = 1.0 / 5.0
	dpA3 = 3.0 / 10.0
	dpA4 = 4.0 / 5.0
	dpA5 = 8.0 / 9.0

	dpB21 = 1.0 / 5.0
	dpB31 = 3.0 / 40.0
	dpB32 = 9.0 / 40.0
	dpB41 = 44.0 / 45.0
	dpB42 = -56.0 / 15.0
	dpB43 = 32.0 / 9.0
	dpB51 = 19372.0 / 6561.0
	dpB52 = -25360.0 / 2187.0
	dpB53 = 64448.0 / 6561.0
	dpB54 = -212.0 / 729.0
	dpB61 = 9017.0 / 3168.0
	dpB62 = -355.0 / 33.0
	dpB63 = 46732.0 / 5247.0
	dpB64 = 49.0 / 176.0
	dpB65 = -5103.0 / 18656.0

	dpC1 = 35.0 / 384.0
	dpC3 = 500.0 / 1113.0
	dpC4 = 125.0 / 192.0
	dpC5 = -2187.0 / 6784.0
	dpC6 = 11.0 / 84.0

	dpE1 = dpC1 - 5179.0/57600.0
	dpE3 = dpC3 - 7571.0/16695.0
	dpE4 = dpC4 - 393.0/640.0
	dpE5 = dpC5 - -92097.0/339200.0
	dpE6 = dpC6 - 187.0/2100.0
	dpE7 = -1.0 / 40.0
)

type dp5Stepper struct {
	k1, k2, k3, k4, k5, k6, k7 []float64
	yTmp                       []float64
}

func newDP5Stepper(n int) *dp5Stepper {
	return &dp5Stepper{
		k1: make([]float64, n),
		k2: make([]float64, n),
		k3: make([]float64, n),
		k4: make([]float64, n),
		k5: make([]float64, n),
		k6: make([]float64, n),
		k7: make([]float64, n),

		yTmp: make([]float64, n),
	}
}

func (s *dp5Stepper) adaptive() bool { return true }
func (s *dp5Stepper) evals() int     { return 7 }

func (s *dp5Stepper) step(f Func, t float64, y []float64, h float64, yNew, errEst []float64) {
	n := len(y)

	f(t, y, s.k1)

	for i := 0; i < n; i++ {
		s.yTmp[i] = y[i] + h*dpB21*s.k1[i]
	}
	f(t+dpA2*h, s.yTmp, s.k2)

	for i := 0; i < n; i++ {
		s.yTmp[i] = y[i] + h*(dpB31*s.k1[i]+dpB32*s.k2[i])
	}
	f(t+dpA3*h, s.yTmp, s.k3)

	for i := 0; i < n; i++ {
		s.yTmp[i] = y[i] + h*(dpB41*s.k1[i]+dpB42*s.k2[i]+dpB43*s.k3[i])
	}
	f(t+dpA4*h, s.yTmp, s.k4)

	for i := 0; i < n; i++ {
		s.yTmp[i] = y[i] + h*(dpB51*s.k1[i]+dpB52*s.k2[i]+dpB53*s.k3[i]+dpB54*s.k4[i])
	}
	f(t+dpA5*h, s.yTmp, s.k5)

	for i := 0; i < n; i++ {
		s.yTmp[i] = y[i] + h*(dpB61*s.k1[i]+dpB62*s.k2[i]+dpB63*s.k3[i]+dpB64*s.k4[i]+dpB65*s.k5[i])
	}
	f(t+h, s.yTmp, s.k6)

	for i := 0; i < n; i++ {
		yNew[i] = y[i] + h*(dpC1*s.k1[i]+dpC3*s.k3[i]+dpC4*s.k4[i]+dpC5*s.k5[i]+dpC6*s.k6[i])
	}

	f(t+h, yNew, s.k7)

	for i := 0; i < n; i++ {
		errEst[i] = h * (dpE1*s.k1[i] + dpE3*s.k3[i] + dpE4*s.k4[i] + dpE5*s.k5[i] + dpE6*s.k6[i] + dpE7*s.k7[i])
	}
}
