package oscillator

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Parameters holds the validated physical inputs for one run.
// Immutable once constructed.
type Parameters struct {
	Mass         float64 `json:"mass"`         // kg, > 0
	Stiffness    float64 `json:"stiffness"`    // N/m, > 0
	Displacement float64 `json:"displacement"` // m, initial
	Damping      float64 `json:"damping"`      // kg/s, >= 0
	Duration     float64 `json:"duration"`     // s, > 0
}

// RawParameters carries the unparsed textual inputs from the UI layer.
type RawParameters struct {
	Mass         string
	Stiffness    string
	Displacement string
	Damping      string
	Duration     string
}

// New validates numeric inputs and returns an immutable parameter set.
func New(mass, stiffness, displacement, damping, duration float64) (Parameters, error) {
	p := Parameters{
		Mass:         mass,
		Stiffness:    stiffness,
		Displacement: displacement,
		Damping:      damping,
		Duration:     duration,
	}
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

// Parse converts raw textual inputs into Parameters. Any field that is
// absent or not a real number yields an error wrapping ErrInvalidParameter.
func Parse(raw RawParameters) (Parameters, error) {
	var p Parameters
	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"mass", raw.Mass, &p.Mass},
		{"stiffness", raw.Stiffness, &p.Stiffness},
		{"displacement", raw.Displacement, &p.Displacement},
		{"damping", raw.Damping, &p.Damping},
		{"duration", raw.Duration, &p.Duration},
	}

	for _, f := range fields {
		s := strings.TrimSpace(f.raw)
		if s == "" {
			return Parameters{}, &ParameterError{Field: f.name, Cause: errors.New("missing value")}
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Parameters{}, &ParameterError{Field: f.name, Raw: f.raw, Cause: err}
		}
		*f.dst = v
	}

	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

// Validate checks finiteness and sign constraints on all fields.
func (p Parameters) Validate() error {
	checks := []struct {
		name string
		val  float64
	}{
		{"mass", p.Mass},
		{"stiffness", p.Stiffness},
		{"displacement", p.Displacement},
		{"damping", p.Damping},
		{"duration", p.Duration},
	}
	for _, c := range checks {
		if math.IsNaN(c.val) || math.IsInf(c.val, 0) {
			return &ParameterError{Field: c.name, Cause: errors.New("not finite")}
		}
	}
	if p.Mass <= 0 {
		return &ParameterError{Field: "mass", Cause: errors.New("must be positive")}
	}
	if p.Stiffness <= 0 {
		return &ParameterError{Field: "stiffness", Cause: errors.New("must be positive")}
	}
	if p.Damping < 0 {
		return &ParameterError{Field: "damping", Cause: errors.New("must be non-negative")}
	}
	if p.Duration <= 0 {
		return &ParameterError{Field: "duration", Cause: errors.New("must be positive")}
	}
	return nil
}
