// Package ode solves initial value problems for ordinary differential
// equations.
//
// A problem couples an in-place right-hand side with an initial state and
// a time interval:
//
//	f := func(t float64, y, dy []float64) { dy[0] = -y[0] }
//	prob := ode.Problem{F: f, Y0: []float64{1}, T0: 0, T1: 1}
//	sol, err := ode.Solve(prob, ode.DP5{}, ode.Options{})
//
// [Solve] runs the problem to completion; [Init] returns a live
// [Integrator] for caller-driven stepwise advancement. Which time points a
// solution records is controlled by [Options]: an explicit SaveAt grid,
// every accepted step, or the final state only.
//
// Algorithms are value types ([DP5], [RK4], [Euler]). DP5 is the
// Dormand-Prince 5(4) adaptive pair; RK4 and Euler take fixed steps.
package ode
