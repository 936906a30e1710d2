package viz

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/oscillab/internal/oscillator"
	"github.com/san-kum/oscillab/internal/sim"
)

func newLiveModel(t *testing.T, duration float64, fps int) Model {
	t.Helper()
	p, err := oscillator.New(1.0, 10.0, 1.0, 0.1, duration)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	d, err := oscillator.Classify(p)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	return NewModel(p, d, fps)
}

// pump feeds TickMsg updates until the run publishes a result or the
// step budget runs out.
func pump(t *testing.T, m Model, maxSteps int) Model {
	t.Helper()
	for i := 0; i < maxSteps; i++ {
		if m.done() {
			return m
		}
		next, _ := m.Update(TickMsg(time.Now()))
		m = next.(Model)
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("run did not finish within %d steps", maxSteps)
	return m
}

func TestModel_RunnerDrivesLiveView(t *testing.T) {
	m := newLiveModel(t, 0.5, 60)
	if m.frames != 30 {
		t.Fatalf("frames = %d, want 30", m.frames)
	}
	m.Init()

	m = pump(t, m, 1000)

	result := m.Result()
	if result == nil {
		t.Fatal("no result published")
	}
	if result.Phase != sim.Completed {
		t.Errorf("phase = %v, want %v", result.Phase, sim.Completed)
	}
	if result.Series.Len() != 30 {
		t.Errorf("published series length = %d, want 30", result.Series.Len())
	}
	if m.Series() != result.Series {
		t.Error("Series() should expose the published series after the run ends")
	}
	if got := m.series.Len(); got != 30 {
		t.Errorf("render buffer consumed %d samples, want 30", got)
	}
	if m.series.Times[0] != 0 {
		t.Errorf("first consumed sample at t=%v, want 0", m.series.Times[0])
	}
}

func TestModel_StopKeyHaltsEngine(t *testing.T) {
	m := newLiveModel(t, 10.0, 60)
	m.Init()

	// Consume a handful of samples, then request a stop.
	for m.series.Len() < 5 {
		next, _ := m.Update(TickMsg(time.Now()))
		m = next.(Model)
		time.Sleep(time.Millisecond)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = next.(Model)

	m = pump(t, m, 1000)

	result := m.Result()
	if result == nil {
		t.Fatal("no result published")
	}
	if result.Phase != sim.Stopped {
		t.Errorf("phase = %v, want %v", result.Phase, sim.Stopped)
	}
	if n := result.Series.Len(); n == 0 || n >= m.frames {
		t.Errorf("stopped series length = %d, want partial run of %d frames", n, m.frames)
	}
}

func TestModel_PauseSuspendsConsumption(t *testing.T) {
	m := newLiveModel(t, 10.0, 60)
	m.Init()

	for m.series.Len() < 3 {
		next, _ := m.Update(TickMsg(time.Now()))
		m = next.(Model)
		time.Sleep(time.Millisecond)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	before := m.series.Len()

	for i := 0; i < 20; i++ {
		next, _ := m.Update(TickMsg(time.Now()))
		m = next.(Model)
	}
	if m.series.Len() != before {
		t.Errorf("consumed %d samples while paused, want %d", m.series.Len(), before)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = next.(Model)
	m = pump(t, m, 1000)
	if m.Result().Phase != sim.Stopped {
		t.Errorf("phase = %v, want %v", m.Result().Phase, sim.Stopped)
	}
}
