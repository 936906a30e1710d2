package sim

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/san-kum/oscillab/internal/oscillator"
)

// ErrRunActive indicates a run request while another run is in flight.
// Only one run may be active per Runner.
var ErrRunActive = errors.New("sim: run already active")

// Phase is the runner lifecycle state.
type Phase int32

const (
	Idle Phase = iota
	Validating
	Classifying
	Running
	Completed
	Stopped
	Rejected
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Classifying:
		return "classifying"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Stopped:
		return "stopped"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Options configures the run loop.
type Options struct {
	FPS int // tick rate; dt = 1/FPS
}

func DefaultOptions() Options { return Options{FPS: 60} }

// Observer receives each sample as it is produced. OnTick is the
// suspension point of the loop: it runs synchronously between ticks, so
// a renderer sees samples strictly in time order.
type Observer interface {
	OnTick(s oscillator.Sample)
}

// Metric accumulates a scalar over the samples of one run.
type Metric interface {
	Name() string
	Observe(s oscillator.Sample)
	Value() float64
	Reset()
}

// Result is the published outcome of a run. Series is read-only after
// publication.
type Result struct {
	Series     *TimeSeries
	Descriptor oscillator.Descriptor
	Phase      Phase
	Frames     int // planned ticks; Series.Len() <= Frames
	Metrics    map[string]float64
	Elapsed    time.Duration
}

// AvgTotalEnergy returns the summary statistic; ok is false when the
// series is empty.
func (r *Result) AvgTotalEnergy() (float64, bool) {
	if r.Series == nil {
		return 0, false
	}
	return r.Series.MeanTotalEnergy()
}

// Runner drives a single run at a time through the lifecycle
// Idle -> Validating -> Classifying -> Running -> {Completed, Stopped,
// Rejected}. Stop is cooperative and observed at tick granularity: the
// in-flight tick completes and its sample is kept.
type Runner struct {
	phase     atomic.Int32
	stop      atomic.Bool
	active    atomic.Bool
	observers []Observer
	metrics   []Metric
}

func NewRunner() *Runner { return &Runner{} }

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }
func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }

func (r *Runner) Phase() Phase { return Phase(r.phase.Load()) }

// Stop requests a cooperative stop. Idempotent; has no effect unless a
// run is in the Running phase.
func (r *Runner) Stop() {
	if r.Phase() == Running {
		r.stop.Store(true)
	}
}

// RunRaw parses textual inputs and runs. Parse failures reject the run
// before any sample is produced.
func (r *Runner) RunRaw(ctx context.Context, raw oscillator.RawParameters, opts Options) (*Result, error) {
	if !r.active.CompareAndSwap(false, true) {
		return nil, ErrRunActive
	}
	defer r.active.Store(false)

	r.setPhase(Validating)
	p, err := oscillator.Parse(raw)
	if err != nil {
		r.setPhase(Rejected)
		return nil, err
	}
	return r.run(ctx, p, opts)
}

// Run executes a run from already-numeric parameters. The parameters
// are still validated; a rejected set produces no series.
func (r *Runner) Run(ctx context.Context, p oscillator.Parameters, opts Options) (*Result, error) {
	if !r.active.CompareAndSwap(false, true) {
		return nil, ErrRunActive
	}
	defer r.active.Store(false)

	r.setPhase(Validating)
	if err := p.Validate(); err != nil {
		r.setPhase(Rejected)
		return nil, err
	}
	return r.run(ctx, p, opts)
}

func (r *Runner) run(ctx context.Context, p oscillator.Parameters, opts Options) (*Result, error) {
	if opts.FPS <= 0 {
		opts = DefaultOptions()
	}

	r.setPhase(Classifying)
	desc, err := oscillator.Classify(p)
	if err != nil {
		r.setPhase(Rejected)
		return nil, err
	}

	dt := 1.0 / float64(opts.FPS)
	frames := int(p.Duration * float64(opts.FPS))

	result := &Result{
		Series:     NewTimeSeries(frames),
		Descriptor: desc,
		Frames:     frames,
		Metrics:    make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}
	r.stop.Store(false)
	r.setPhase(Running)

	start := time.Now()
	var runErr error

loop:
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			r.setPhase(Stopped)
			runErr = ctx.Err()
			break loop
		default:
		}
		if r.stop.Load() {
			r.setPhase(Stopped)
			break loop
		}

		s := oscillator.At(p, desc, float64(i)*dt)
		result.Series.Append(s)

		for _, m := range r.metrics {
			m.Observe(s)
		}
		// Suspension point: hand each sample to the observers before
		// the next tick. Stop requests issued here take effect on the
		// following iteration.
		for _, o := range r.observers {
			o.OnTick(s)
		}
	}

	if r.Phase() == Running {
		r.setPhase(Completed)
	}
	result.Phase = r.Phase()
	result.Elapsed = time.Since(start)

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, runErr
}

func (r *Runner) setPhase(p Phase) { r.phase.Store(int32(p)) }
