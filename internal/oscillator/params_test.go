package oscillator

import (
	"errors"
	"math"
	"testing"
)

func validRaw() RawParameters {
	return RawParameters{
		Mass:         "1",
		Stiffness:    "10",
		Displacement: "1",
		Damping:      "0.1",
		Duration:     "10",
	}
}

func TestParse_Valid(t *testing.T) {
	p, err := Parse(validRaw())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Mass != 1 || p.Stiffness != 10 || p.Displacement != 1 || p.Damping != 0.1 || p.Duration != 10 {
		t.Errorf("unexpected parameters: %+v", p)
	}
}

func TestParse_NonNumeric(t *testing.T) {
	raw := validRaw()
	raw.Mass = "abc"

	_, err := Parse(raw)
	if err == nil {
		t.Fatal("expected error for non-numeric mass")
	}
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}

	var perr *ParameterError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParameterError, got %T", err)
	}
	if perr.Field != "mass" {
		t.Errorf("expected field mass, got %s", perr.Field)
	}
}

func TestParse_MissingField(t *testing.T) {
	raw := validRaw()
	raw.Duration = ""

	_, err := Parse(raw)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for missing field, got %v", err)
	}
}

func TestParse_Whitespace(t *testing.T) {
	raw := validRaw()
	raw.Stiffness = "  10  "

	p, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Stiffness != 10 {
		t.Errorf("expected stiffness 10, got %f", p.Stiffness)
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name          string
		m, k, x0, b   float64
		tmax          float64
		wantErr       bool
		expectedField string
	}{
		{"valid", 1, 10, 1, 0.1, 10, false, ""},
		{"zero damping ok", 1, 10, 1, 0, 10, false, ""},
		{"negative displacement ok", 1, 10, -1, 0.1, 10, false, ""},
		{"zero mass", 0, 10, 1, 0.1, 10, true, "mass"},
		{"negative mass", -1, 10, 1, 0.1, 10, true, "mass"},
		{"zero stiffness", 1, 0, 1, 0.1, 10, true, "stiffness"},
		{"negative damping", 1, 10, 1, -0.1, 10, true, "damping"},
		{"zero duration", 1, 10, 1, 0.1, 0, true, "duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.m, tt.k, tt.x0, tt.b, tt.tmax)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				var perr *ParameterError
				if !errors.As(err, &perr) {
					t.Fatalf("expected *ParameterError, got %T", err)
				}
				if perr.Field != tt.expectedField {
					t.Errorf("expected field %s, got %s", tt.expectedField, perr.Field)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestNew_NonFinite(t *testing.T) {
	_, err := New(math.NaN(), 10, 1, 0.1, 10)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for NaN mass, got %v", err)
	}
}
