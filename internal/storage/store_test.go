package storage

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/oscillab/internal/oscillator"
	"github.com/san-kum/oscillab/internal/sim"
)

func runFixture(t *testing.T) (oscillator.Parameters, *sim.Result) {
	t.Helper()
	p, err := oscillator.New(1, 10, 1, 0.1, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result, err := sim.NewRunner().Run(context.Background(), p, sim.Options{FPS: 60})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return p, result
}

func TestStore_SaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	p, result := runFixture(t)

	runID, err := st.Save(p, 60, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.ID != runID {
		t.Errorf("expected id %s, got %s", runID, meta.ID)
	}
	if meta.Parameters != p {
		t.Errorf("parameters mismatch: %+v vs %+v", meta.Parameters, p)
	}
	if meta.Phase != "completed" {
		t.Errorf("expected phase completed, got %s", meta.Phase)
	}
	if meta.Samples != result.Series.Len() {
		t.Errorf("expected %d samples, got %d", result.Series.Len(), meta.Samples)
	}
	if meta.AvgEnergy == nil {
		t.Fatal("expected avg energy in metadata")
	}
	want, _ := result.AvgTotalEnergy()
	if math.Abs(*meta.AvgEnergy-want) > 1e-12 {
		t.Errorf("avg energy %f, want %f", *meta.AvgEnergy, want)
	}
}

func TestStore_LoadSeries(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	p, result := runFixture(t)
	runID, err := st.Save(p, 60, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}

	if series.Len() != result.Series.Len() {
		t.Fatalf("expected %d samples, got %d", result.Series.Len(), series.Len())
	}

	// Stored with 6 decimal places; compare at that precision.
	for i := 0; i < series.Len(); i++ {
		got, want := series.At(i), result.Series.At(i)
		if math.Abs(got.X-want.X) > 1e-6 || math.Abs(got.TE-want.TE) > 1e-6 {
			t.Fatalf("sample %d mismatch: %+v vs %+v", i, got, want)
		}
	}
}

func TestStore_EmptySeries(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	p, err := oscillator.New(1, 10, 1, 0.1, 0.001)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result, err := sim.NewRunner().Run(context.Background(), p, sim.Options{FPS: 60})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	runID, err := st.Save(p, 60, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.AvgEnergy != nil {
		t.Error("avg energy must be absent for an empty run")
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}
	if series.Len() != 0 {
		t.Errorf("expected empty series, got %d samples", series.Len())
	}
}

func TestStore_List(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	p, result := runFixture(t)
	if _, err := st.Save(p, 60, result); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStore_ListMissingDir(t *testing.T) {
	st := New("/nonexistent/oscillab-test")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("expected no error for missing dir, got %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
