// Package physics provides ready-made dynamical system containers.
//
// Each constructor returns a [system.System] with a default initial state,
// the vector field of the model, and an analytic Jacobian:
//
//   - [NewLorenz]: butterfly attractor
//   - [NewRossler]: Rössler attractor
//   - [NewVanDerPol]: relaxation oscillator
//   - [NewDuffing]: unforced double-well oscillator
//   - [NewHarmonicOscillator]: linear oscillator
//   - [NewLinearDecay]: one-dimensional exponential decay
//
// [Lookup] resolves a system by name for CLI use.
package physics
