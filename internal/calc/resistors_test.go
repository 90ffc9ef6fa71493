package calc

import (
	"math"
	"testing"

	"github.com/hpungsan/ohm/internal/errors"
)

func TestSeriesTotal(t *testing.T) {
	tests := []struct {
		rs   []float64
		want float64
	}{
		{[]float64{100, 200, 300}, 600},
		{[]float64{4.7}, 4.7},
		{nil, 0},
	}

	for _, tt := range tests {
		if got := SeriesTotal(tt.rs); got != tt.want {
			t.Errorf("SeriesTotal(%v) = %v, want %v", tt.rs, got, tt.want)
		}
	}
}

func TestSeriesMissing(t *testing.T) {
	got := SeriesMissing(1000, []float64{220, 330})
	if got != 450 {
		t.Errorf("SeriesMissing = %v, want 450", got)
	}

	// A target below the known sum yields a negative value; the formula
	// itself does not judge physical plausibility.
	got = SeriesMissing(100, []float64{220})
	if got != -120 {
		t.Errorf("SeriesMissing = %v, want -120", got)
	}
}

func TestGuardSeriesCount(t *testing.T) {
	if err := GuardSeriesCount(1); err != nil {
		t.Errorf("GuardSeriesCount(1) = %v, want nil", err)
	}
	for _, n := range []int64{0, -3} {
		if err := GuardSeriesCount(n); !errors.Is(err, errors.ErrDomainViolation) {
			t.Errorf("GuardSeriesCount(%d) = %v, want DOMAIN_VIOLATION", n, err)
		}
	}

	if err := GuardSeriesMissingCount(2); err != nil {
		t.Errorf("GuardSeriesMissingCount(2) = %v, want nil", err)
	}
	if err := GuardSeriesMissingCount(1); !errors.Is(err, errors.ErrDomainViolation) {
		t.Errorf("GuardSeriesMissingCount(1) = %v, want DOMAIN_VIOLATION", err)
	}
}

func TestParallelReq(t *testing.T) {
	res, err := ParallelReq(100, 100)
	if err != nil {
		t.Fatalf("ParallelReq() error = %v", err)
	}
	if res.Short {
		t.Error("Short = true for nonzero branches")
	}
	if math.Abs(res.Req-50) > 1e-9 {
		t.Errorf("Req = %v, want 50", res.Req)
	}
}

func TestParallelReq_ShortCircuitBranch(t *testing.T) {
	// An exactly-zero branch is a short: Req = 0 without touching the
	// general formula.
	for _, pair := range [][2]float64{{100, 0}, {0, 100}, {0, 0}} {
		res, err := ParallelReq(pair[0], pair[1])
		if err != nil {
			t.Fatalf("ParallelReq(%v, %v) error = %v", pair[0], pair[1], err)
		}
		if !res.Short {
			t.Errorf("ParallelReq(%v, %v).Short = false, want true", pair[0], pair[1])
		}
		if res.Req != 0 {
			t.Errorf("ParallelReq(%v, %v).Req = %v, want 0", pair[0], pair[1], res.Req)
		}
	}
}

func TestParallelReq_TinyNonzeroFallsThrough(t *testing.T) {
	// Tiny nonzero branches are NOT the short-circuit case; they use the
	// general formula and its epsilon test.
	res, err := ParallelReq(1e-13, 1e-13)
	if err != nil {
		t.Fatalf("ParallelReq() error = %v", err)
	}
	if res.Short {
		t.Error("Short = true for tiny nonzero branches, want general-formula path")
	}

	// Equal and opposite branches make the sum near zero: safe division
	// refuses.
	if _, err := ParallelReq(100, -100); !errors.Is(err, errors.ErrDivideByZero) {
		t.Errorf("error = %v, want DIVIDE_BY_ZERO", err)
	}
}

func TestParallelR1(t *testing.T) {
	r1, err := ParallelR1(50, 100)
	if err != nil {
		t.Fatalf("ParallelR1() error = %v", err)
	}
	if math.Abs(r1-100) > 1e-9 {
		t.Errorf("R1 = %v, want 100", r1)
	}

	if _, err := ParallelR1(100, 100); !errors.Is(err, errors.ErrDivideByZero) {
		t.Errorf("Req=R2: error = %v, want DIVIDE_BY_ZERO", err)
	}
}

func TestParallelR2(t *testing.T) {
	r2, err := ParallelR2(50, 100)
	if err != nil {
		t.Fatalf("ParallelR2() error = %v", err)
	}
	if math.Abs(r2-100) > 1e-9 {
		t.Errorf("R2 = %v, want 100", r2)
	}

	if _, err := ParallelR2(100, 100); !errors.Is(err, errors.ErrDivideByZero) {
		t.Errorf("Req=R1: error = %v, want DIVIDE_BY_ZERO", err)
	}
}
