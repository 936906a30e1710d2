package oscillator

import (
	"fmt"
	"math"
)

// Descriptor holds the derived frequencies for an underdamped run.
// Computed once per run, immutable.
type Descriptor struct {
	Omega0 float64 `json:"omega0"`  // natural frequency, sqrt(k/m)
	Gamma  float64 `json:"gamma"`   // damping factor, b/(2m)
	OmegaD float64 `json:"omega_d"` // damped angular frequency
	Period float64 `json:"period"`  // damped period, 2*pi/omega_d
}

// Classify derives the damping regime from a parameter set. It returns
// ErrOverdamped when gamma >= omega0; the descriptor is only defined in
// the underdamped regime.
func Classify(p Parameters) (Descriptor, error) {
	omega0 := math.Sqrt(p.Stiffness / p.Mass)
	gamma := p.Damping / (2 * p.Mass)

	if gamma >= omega0 {
		return Descriptor{}, ErrOverdamped
	}

	omegaD := math.Sqrt(omega0*omega0 - gamma*gamma)
	return Descriptor{
		Omega0: omega0,
		Gamma:  gamma,
		OmegaD: omegaD,
		Period: 2 * math.Pi / omegaD,
	}, nil
}

// Summary formats the descriptor fields with two decimals, matching the
// result readout convention.
func (d Descriptor) Summary() string {
	return fmt.Sprintf("ω₀=%.2f | γ=%.2f | ωd=%.2f | T=%.2f",
		d.Omega0, d.Gamma, d.OmegaD, d.Period)
}
