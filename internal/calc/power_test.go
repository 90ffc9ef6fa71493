package calc

import (
	"testing"

	"github.com/hpungsan/ohm/internal/errors"
)

func TestPowerP(t *testing.T) {
	if got := PowerP(12, 0.5); got != 6 {
		t.Errorf("PowerP(12, 0.5) = %v, want 6", got)
	}
	// Zero and negative values are fine for the forward direction.
	if got := PowerP(0, 3); got != 0 {
		t.Errorf("PowerP(0, 3) = %v, want 0", got)
	}
	if got := PowerP(-12, 2); got != -24 {
		t.Errorf("PowerP(-12, 2) = %v, want -24", got)
	}
}

func TestPowerV(t *testing.T) {
	v, err := PowerV(6, 0.5)
	if err != nil {
		t.Fatalf("PowerV() error = %v", err)
	}
	if v != 12 {
		t.Errorf("V = %v, want 12", v)
	}
}

func TestPowerV_ZeroCurrent(t *testing.T) {
	_, err := PowerV(6, 0)
	if !errors.Is(err, errors.ErrDivideByZero) {
		t.Fatalf("error = %v, want DIVIDE_BY_ZERO", err)
	}
	if err.Error() != "DIVIDE_BY_ZERO: Error: I cannot be zero (or near zero)." {
		t.Errorf("message = %q", err.Error())
	}

	// Near-zero current fails the same way.
	if _, err := PowerV(6, 1e-13); !errors.Is(err, errors.ErrDivideByZero) {
		t.Errorf("near-zero I: error = %v, want DIVIDE_BY_ZERO", err)
	}
}

func TestPowerI(t *testing.T) {
	i, err := PowerI(6, 12)
	if err != nil {
		t.Fatalf("PowerI() error = %v", err)
	}
	if i != 0.5 {
		t.Errorf("I = %v, want 0.5", i)
	}

	if _, err := PowerI(6, 0); !errors.Is(err, errors.ErrDivideByZero) {
		t.Errorf("V=0: error = %v, want DIVIDE_BY_ZERO", err)
	}
}
