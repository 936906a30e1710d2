package oscillator

import "math"

// Sample is the instantaneous state of the oscillator at one instant.
type Sample struct {
	T  float64 `json:"t"`  // s
	X  float64 `json:"x"`  // m
	V  float64 `json:"v"`  // m/s
	A  float64 `json:"a"`  // m/s²
	KE float64 `json:"ke"` // J
	PE float64 `json:"pe"` // J
	TE float64 `json:"te"` // J
}

// At evaluates the closed-form underdamped solution at time t:
//
//	x(t) = x0 * exp(-γt) * cos(ωd t)
//	v(t) = -x0 * exp(-γt) * (γ cos(ωd t) + ωd sin(ωd t))
//	a(t) = -2γ v - ω0² x
//
// Pure and stateless: identical inputs yield bit-identical samples.
// Note v(0) = -x0*γ, not zero, unless γ = 0.
func At(p Parameters, d Descriptor, t float64) Sample {
	envelope := math.Exp(-d.Gamma * t)
	cos := math.Cos(d.OmegaD * t)
	sin := math.Sin(d.OmegaD * t)

	x := p.Displacement * envelope * cos
	v := -p.Displacement * envelope * (d.Gamma*cos + d.OmegaD*sin)
	a := -2*d.Gamma*v - d.Omega0*d.Omega0*x

	ke := 0.5 * p.Mass * v * v
	pe := 0.5 * p.Stiffness * x * x

	return Sample{T: t, X: x, V: v, A: a, KE: ke, PE: pe, TE: ke + pe}
}
