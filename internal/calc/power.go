package calc

import "github.com/hpungsan/ohm/internal/errors"

// Power: P = V · I, solved for each quantity.

// PowerP computes P = V * I. Any finite inputs are valid.
func PowerP(v, i float64) float64 {
	return v * i
}

// PowerV computes V = P / I.
func PowerV(p, i float64) (float64, error) {
	v, ok := Div(p, i)
	if !ok {
		return 0, errors.NewDivideByZero("Error: I cannot be zero (or near zero).")
	}
	return v, nil
}

// PowerI computes I = P / V.
func PowerI(p, v float64) (float64, error) {
	i, ok := Div(p, v)
	if !ok {
		return 0, errors.NewDivideByZero("Error: V cannot be zero (or near zero).")
	}
	return i, nil
}
