// Package calc implements the calculation core: safe division, per-formula
// domain guards, and the closed-form formulas themselves.
//
// Every division whose denominator derives from user input routes through
// Div, and every formula validates its domain before computing, so no result
// is ever NaN or infinite.
package calc

import "math"

// Epsilon is the magnitude below which a denominator is treated as zero.
const Epsilon = 1e-12

// Div performs safe division. If the denominator's magnitude is below
// Epsilon it returns (0, false) without computing the quotient; otherwise
// it returns the true quotient and true.
func Div(num, den float64) (float64, bool) {
	if math.Abs(den) < Epsilon {
		return 0, false
	}
	return num / den, true
}
