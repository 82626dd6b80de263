package ode

// Solution holds the recorded time points of a completed solve and the
// state at each, in solver order.
type Solution struct {
	T     []float64
	Y     [][]float64
	Stats Statistics
}

// Last returns the final recorded state.
func (s *Solution) Last() []float64 {
	if len(s.Y) == 0 {
		return nil
	}
	return s.Y[len(s.Y)-1]
}

// Statistics counts the work performed by a solve or integrator.
type Statistics struct {
	// Steps is the number of accepted steps.
	Steps int
	// Rejected is the number of trial steps discarded by the error test.
	Rejected int
	// Evals is the number of right-hand side evaluations.
	Evals int
	// LastStep is the size of the most recent accepted step.
	LastStep float64
}
