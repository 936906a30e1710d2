package sim

import "github.com/san-kum/oscillab/internal/oscillator"

// TimeSeries is the ordered columnar record of one run. Index i
// corresponds to t = i*dt. It has a single writer (the active run) and
// becomes read-only once the run loop ends.
type TimeSeries struct {
	Times         []float64 `json:"times"`
	Positions     []float64 `json:"positions"`
	Velocities    []float64 `json:"velocities"`
	Accelerations []float64 `json:"accelerations"`
	Kinetic       []float64 `json:"kinetic"`
	Potential     []float64 `json:"potential"`
	Total         []float64 `json:"total"`
}

func NewTimeSeries(capacity int) *TimeSeries {
	if capacity < 0 {
		capacity = 0
	}
	return &TimeSeries{
		Times:         make([]float64, 0, capacity),
		Positions:     make([]float64, 0, capacity),
		Velocities:    make([]float64, 0, capacity),
		Accelerations: make([]float64, 0, capacity),
		Kinetic:       make([]float64, 0, capacity),
		Potential:     make([]float64, 0, capacity),
		Total:         make([]float64, 0, capacity),
	}
}

func (ts *TimeSeries) Append(s oscillator.Sample) {
	ts.Times = append(ts.Times, s.T)
	ts.Positions = append(ts.Positions, s.X)
	ts.Velocities = append(ts.Velocities, s.V)
	ts.Accelerations = append(ts.Accelerations, s.A)
	ts.Kinetic = append(ts.Kinetic, s.KE)
	ts.Potential = append(ts.Potential, s.PE)
	ts.Total = append(ts.Total, s.TE)
}

func (ts *TimeSeries) Len() int { return len(ts.Times) }

// At reassembles the sample at index i. Panics on out-of-range access,
// like slice indexing.
func (ts *TimeSeries) At(i int) oscillator.Sample {
	return oscillator.Sample{
		T:  ts.Times[i],
		X:  ts.Positions[i],
		V:  ts.Velocities[i],
		A:  ts.Accelerations[i],
		KE: ts.Kinetic[i],
		PE: ts.Potential[i],
		TE: ts.Total[i],
	}
}

// MeanTotalEnergy is the run summary statistic. ok is false for an
// empty series: the mean is undefined, not zero.
func (ts *TimeSeries) MeanTotalEnergy() (mean float64, ok bool) {
	if len(ts.Total) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, te := range ts.Total {
		sum += te
	}
	return sum / float64(len(ts.Total)), true
}
