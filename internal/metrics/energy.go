package metrics

import (
	"math"

	"github.com/san-kum/oscillab/internal/oscillator"
)

// AvgEnergy accumulates the arithmetic mean of total energy over a run.
// This is the run summary statistic.
type AvgEnergy struct {
	sum     float64
	samples int
}

func NewAvgEnergy() *AvgEnergy { return &AvgEnergy{} }

func (a *AvgEnergy) Name() string { return "avg_total_energy" }

func (a *AvgEnergy) Observe(s oscillator.Sample) {
	a.sum += s.TE
	a.samples++
}

func (a *AvgEnergy) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return a.sum / float64(a.samples)
}

func (a *AvgEnergy) Reset() {
	a.sum = 0
	a.samples = 0
}

// PeakDisplacement tracks the largest |x| seen during a run.
type PeakDisplacement struct {
	peak float64
}

func NewPeakDisplacement() *PeakDisplacement { return &PeakDisplacement{} }

func (p *PeakDisplacement) Name() string { return "peak_displacement" }

func (p *PeakDisplacement) Observe(s oscillator.Sample) {
	if abs := math.Abs(s.X); abs > p.peak {
		p.peak = abs
	}
}

func (p *PeakDisplacement) Value() float64 { return p.peak }
func (p *PeakDisplacement) Reset()         { p.peak = 0 }

// DecayRatio reports final/initial total energy, a proxy for how much
// the damping envelope has eaten over the run. Stays 1.0 for undamped
// runs.
type DecayRatio struct {
	first   float64
	last    float64
	samples int
}

func NewDecayRatio() *DecayRatio { return &DecayRatio{} }

func (d *DecayRatio) Name() string { return "decay_ratio" }

func (d *DecayRatio) Observe(s oscillator.Sample) {
	if d.samples == 0 {
		d.first = s.TE
	}
	d.last = s.TE
	d.samples++
}

func (d *DecayRatio) Value() float64 {
	if d.samples == 0 || d.first == 0 {
		return 0
	}
	return d.last / d.first
}

func (d *DecayRatio) Reset() {
	d.first = 0
	d.last = 0
	d.samples = 0
}
