package calc

import "github.com/hpungsan/ohm/internal/errors"

// Voltage divider: Vout = Vin * R2 / (R1 + R2), solved for each quantity.

// DividerVout computes Vout given Vin, R1, R2.
func DividerVout(vin, r1, r2 float64) (float64, error) {
	ratio, ok := Div(r2, r1+r2)
	if !ok {
		return 0, errors.NewDivideByZero("Error: R1 + R2 cannot be zero (or near zero).")
	}
	return vin * ratio, nil
}

// DividerVin computes Vin given Vout, R1, R2.
func DividerVin(vout, r1, r2 float64) (float64, error) {
	frac, ok := Div(r1+r2, r2)
	if !ok {
		return 0, errors.NewDivideByZero("Error: R2 cannot be zero (or near zero).")
	}
	return vout * frac, nil
}

// DividerR1 computes R1 = R2 * (Vin/Vout - 1).
func DividerR1(vin, vout, r2 float64) (float64, error) {
	q, ok := Div(vin, vout)
	if !ok {
		return 0, errors.NewDivideByZero("Error: Vout cannot be zero (or near zero).")
	}
	return r2 * (q - 1.0), nil
}

// DividerR2 computes R2 = R1 * Vout / (Vin - Vout).
func DividerR2(vin, vout, r1 float64) (float64, error) {
	frac, ok := Div(vout, vin-vout)
	if !ok {
		return 0, errors.NewDivideByZero("Error: Vin must not equal Vout (denominator near zero).")
	}
	return r1 * frac, nil
}
