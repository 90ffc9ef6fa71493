package calc

import (
	"math"
	"testing"
)

func TestDiv_NearZeroDenominators(t *testing.T) {
	denominators := []float64{0, 1e-13, -1e-13, 5e-14, -9.99e-13, Epsilon / 2}

	for _, d := range denominators {
		q, ok := Div(42.0, d)
		if ok {
			t.Errorf("Div(42, %g) ok, want not-ok", d)
		}
		if q != 0 {
			t.Errorf("Div(42, %g) = %g, want default 0", d, q)
		}
	}
}

func TestDiv_ValidDenominators(t *testing.T) {
	tests := []struct {
		num, den, want float64
	}{
		{10, 2, 5},
		{1, 1e-12, 1e12}, // exactly at the threshold is allowed
		{-6, 3, -2},
		{0, 7, 0},
		{1, -4, -0.25},
	}

	for _, tt := range tests {
		got, ok := Div(tt.num, tt.den)
		if !ok {
			t.Errorf("Div(%g, %g) not ok", tt.num, tt.den)
			continue
		}
		if got != tt.want {
			t.Errorf("Div(%g, %g) = %g, want %g", tt.num, tt.den, got, tt.want)
		}
	}
}

func TestDiv_NeverNonFinite(t *testing.T) {
	// Large numerators over small-but-allowed denominators stay finite.
	q, ok := Div(1e300, 1e-12)
	if !ok {
		t.Fatal("Div(1e300, 1e-12) not ok")
	}
	if math.IsInf(q, 0) || math.IsNaN(q) {
		t.Errorf("Div produced non-finite %g", q)
	}
}
