package calc

import "github.com/hpungsan/ohm/internal/errors"

// Series and two-resistor parallel combinations.

// SeriesTotal sums resistances in series.
func SeriesTotal(rs []float64) float64 {
	sum := 0.0
	for _, r := range rs {
		sum += r
	}
	return sum
}

// SeriesMissing computes the one unknown resistor in a series chain given
// the target total and the known resistors.
func SeriesMissing(rt float64, known []float64) float64 {
	return rt - SeriesTotal(known)
}

// ParallelReqResult is the result of a two-resistor parallel combination.
// Short reports the exact-zero branch policy: if either branch resistance is
// exactly zero the equivalent is zero ohms, bypassing the general formula.
// Tiny nonzero branches fall through to safe division instead; the asymmetry
// matches observable behavior and must not be unified.
type ParallelReqResult struct {
	Req   float64
	Short bool
}

// ParallelReq computes Req = R1*R2 / (R1 + R2).
func ParallelReq(r1, r2 float64) (ParallelReqResult, error) {
	if r1 == 0.0 || r2 == 0.0 {
		return ParallelReqResult{Req: 0, Short: true}, nil
	}

	req, ok := Div(r1*r2, r1+r2)
	if !ok {
		return ParallelReqResult{}, errors.NewDivideByZero("Error: R1 + R2 cannot be zero (or near zero).")
	}
	return ParallelReqResult{Req: req}, nil
}

// ParallelR1 computes R1 = Req*R2 / (R2 - Req).
func ParallelR1(req, r2 float64) (float64, error) {
	r1, ok := Div(req*r2, r2-req)
	if !ok {
		return 0, errors.NewDivideByZero("Error: R2 must not equal Req (denominator near zero).")
	}
	return r1, nil
}

// ParallelR2 computes R2 = Req*R1 / (R1 - Req).
func ParallelR2(req, r1 float64) (float64, error) {
	r2, ok := Div(req*r1, r1-req)
	if !ok {
		return 0, errors.NewDivideByZero("Error: R1 must not equal Req (denominator near zero).")
	}
	return r2, nil
}
