// Package oscillator models a damped harmonic oscillator with the
// closed-form underdamped solution.
//
// The package defines the value types and pure functions of the model:
//
//   - [Parameters]: validated physical inputs (m, k, x0, b, tmax)
//   - [Descriptor]: derived frequencies from [Classify]
//   - [Sample]: instantaneous kinematics and energies from [At]
//
// Governing equation: m*x'' + b*x' + k*x = 0. Only the underdamped
// regime (gamma < omega0) is representable; [Classify] rejects the rest
// with [ErrOverdamped].
//
// # Example
//
//	p, _ := oscillator.New(1, 10, 1, 0.1, 10)
//	d, _ := oscillator.Classify(p)
//	s := oscillator.At(p, d, 0.5)
package oscillator
