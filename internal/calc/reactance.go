package calc

import (
	"math"

	"github.com/hpungsan/ohm/internal/errors"
)

// AC reactance and series LC resonance.
//
// X_L = 2πfL, X_C = 1/(2πfC), f0 = 1/(2π√(LC)), each solved for every
// quantity. Frequencies, capacitances, and inductances that appear in a
// denominator or under the square root must be strictly positive.

// InductiveXL computes X_L = 2πfL.
func InductiveXL(f, l float64) (float64, error) {
	if f <= 0 {
		return 0, errors.NewDomainViolation("f", "Error: f>0, L>=0.")
	}
	if l < 0 {
		return 0, errors.NewDomainViolation("L", "Error: f>0, L>=0.")
	}
	return 2.0 * math.Pi * f * l, nil
}

// InductiveL computes L = X_L / (2πf).
func InductiveL(xl, f float64) (float64, error) {
	if f <= 0 {
		return 0, errors.NewDomainViolation("f", "Error: f>0.")
	}

	l, ok := Div(xl, 2.0*math.Pi*f)
	if !ok {
		return 0, errors.NewDivideByZero("Error: invalid denominator.")
	}
	return l, nil
}

// InductiveF computes f = X_L / (2πL).
func InductiveF(xl, l float64) (float64, error) {
	if l <= 0 {
		return 0, errors.NewDomainViolation("L", "Error: L>0.")
	}

	f, ok := Div(xl, 2.0*math.Pi*l)
	if !ok {
		return 0, errors.NewDivideByZero("Error: invalid denominator.")
	}
	return f, nil
}

// CapacitiveXC computes X_C = 1 / (2πfC).
func CapacitiveXC(f, c float64) (float64, error) {
	if f <= 0 {
		return 0, errors.NewDomainViolation("f", "Error: f>0, C>0.")
	}
	if c <= 0 {
		return 0, errors.NewDomainViolation("C", "Error: f>0, C>0.")
	}

	xc, ok := Div(1.0, 2.0*math.Pi*f*c)
	if !ok {
		return 0, errors.NewDivideByZero("Error: invalid denominator.")
	}
	return xc, nil
}

// CapacitiveC computes C = 1 / (2πfX_C).
func CapacitiveC(xc, f float64) (float64, error) {
	if f <= 0 {
		return 0, errors.NewDomainViolation("f", "Error: f>0, X_C>0.")
	}
	if xc <= 0 {
		return 0, errors.NewDomainViolation("X_C", "Error: f>0, X_C>0.")
	}

	c, ok := Div(1.0, 2.0*math.Pi*f*xc)
	if !ok {
		return 0, errors.NewDivideByZero("Error: invalid denominator.")
	}
	return c, nil
}

// CapacitiveF computes f = 1 / (2πCX_C).
func CapacitiveF(xc, c float64) (float64, error) {
	if c <= 0 {
		return 0, errors.NewDomainViolation("C", "Error: C>0, X_C>0.")
	}
	if xc <= 0 {
		return 0, errors.NewDomainViolation("X_C", "Error: C>0, X_C>0.")
	}

	f, ok := Div(1.0, 2.0*math.Pi*c*xc)
	if !ok {
		return 0, errors.NewDivideByZero("Error: invalid denominator.")
	}
	return f, nil
}

// ResonantF0 computes f0 = 1 / (2π√(LC)).
func ResonantF0(l, c float64) (float64, error) {
	if l <= 0 {
		return 0, errors.NewDomainViolation("L", "Error: L>0, C>0.")
	}
	if c <= 0 {
		return 0, errors.NewDomainViolation("C", "Error: L>0, C>0.")
	}

	f0, ok := Div(1.0, 2.0*math.Pi*math.Sqrt(l*c))
	if !ok {
		return 0, errors.NewDivideByZero("Error: invalid denominator.")
	}
	return f0, nil
}

// ResonantL computes L = 1 / ((2πf0)² C).
func ResonantL(f0, c float64) (float64, error) {
	if f0 <= 0 {
		return 0, errors.NewDomainViolation("f0", "Error: f0>0, C>0.")
	}
	if c <= 0 {
		return 0, errors.NewDomainViolation("C", "Error: f0>0, C>0.")
	}

	denom := (2.0 * math.Pi * f0) * (2.0 * math.Pi * f0) * c
	l, ok := Div(1.0, denom)
	if !ok {
		return 0, errors.NewDivideByZero("Error: invalid denominator.")
	}
	return l, nil
}

// ResonantC computes C = 1 / ((2πf0)² L).
func ResonantC(f0, l float64) (float64, error) {
	if f0 <= 0 {
		return 0, errors.NewDomainViolation("f0", "Error: f0>0, L>0.")
	}
	if l <= 0 {
		return 0, errors.NewDomainViolation("L", "Error: f0>0, L>0.")
	}

	denom := (2.0 * math.Pi * f0) * (2.0 * math.Pi * f0) * l
	c, ok := Div(1.0, denom)
	if !ok {
		return 0, errors.NewDivideByZero("Error: invalid denominator.")
	}
	return c, nil
}
