package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/oscillab/internal/oscillator"
)

func TestAvgEnergy(t *testing.T) {
	m := NewAvgEnergy()

	m.Observe(oscillator.Sample{TE: 2.0})
	m.Observe(oscillator.Sample{TE: 4.0})

	if got := m.Value(); math.Abs(got-3.0) > 1e-12 {
		t.Errorf("expected mean 3.0, got %f", got)
	}
}

func TestAvgEnergy_Empty(t *testing.T) {
	m := NewAvgEnergy()
	if m.Value() != 0 {
		t.Error("expected zero value before any observation")
	}
}

func TestAvgEnergy_Reset(t *testing.T) {
	m := NewAvgEnergy()

	m.Observe(oscillator.Sample{TE: 5.0})
	if m.Value() == 0 {
		t.Error("expected non-zero value")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero value after reset")
	}
}

func TestPeakDisplacement(t *testing.T) {
	m := NewPeakDisplacement()

	m.Observe(oscillator.Sample{X: 0.5})
	m.Observe(oscillator.Sample{X: -1.2})
	m.Observe(oscillator.Sample{X: 0.9})

	if got := m.Value(); math.Abs(got-1.2) > 1e-12 {
		t.Errorf("expected peak 1.2, got %f", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero peak after reset")
	}
}

func TestDecayRatio(t *testing.T) {
	m := NewDecayRatio()

	m.Observe(oscillator.Sample{TE: 4.0})
	m.Observe(oscillator.Sample{TE: 2.0})
	m.Observe(oscillator.Sample{TE: 1.0})

	if got := m.Value(); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("expected ratio 0.25, got %f", got)
	}
}

func TestDecayRatio_Empty(t *testing.T) {
	m := NewDecayRatio()
	if m.Value() != 0 {
		t.Error("expected zero ratio before any observation")
	}
}
