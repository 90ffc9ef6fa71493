package calc

import (
	"math"

	"github.com/hpungsan/ohm/internal/errors"
)

// RC transient charge/discharge.
//
// τ = RC, charge% = 100(1 - e^(-t/τ)), discharge% = 100·e^(-t/τ).
// Percentage targets must lie strictly inside (0, 100): the boundaries
// correspond to t = 0 and t = ∞ under the inverse formulas.

// RCTransientResult holds the three forward-direction outputs.
type RCTransientResult struct {
	Tau          float64
	ChargePct    float64
	DischargePct float64
}

// RCForward computes τ and the charge/discharge percentages at time t.
func RCForward(r, c, t float64) (RCTransientResult, error) {
	if r <= 0 {
		return RCTransientResult{}, errors.NewDomainViolation("R", "Error: R>0, C>0.")
	}
	if c <= 0 {
		return RCTransientResult{}, errors.NewDomainViolation("C", "Error: R>0, C>0.")
	}
	if t < 0 {
		return RCTransientResult{}, errors.NewDomainViolation("t", "Error: t>=0.")
	}

	// r and c are positive, but their product can still underflow to zero.
	tau := r * c
	if tau <= 0 {
		return RCTransientResult{}, errors.NewDomainViolation("tau", "Error: tau>0.")
	}
	return rcAt(tau, t), nil
}

// RCFromTau computes the charge/discharge percentages at time t directly
// from a known time constant.
func RCFromTau(tau, t float64) (RCTransientResult, error) {
	if tau <= 0 {
		return RCTransientResult{}, errors.NewDomainViolation("tau", "Error: tau>0.")
	}
	if t < 0 {
		return RCTransientResult{}, errors.NewDomainViolation("t", "Error: t>=0.")
	}
	return rcAt(tau, t), nil
}

// rcAt evaluates the transient at time t. tau > 0 and t >= 0 are already
// guaranteed, so -t/tau <= 0 and both percentages are finite.
func rcAt(tau, t float64) RCTransientResult {
	decay := math.Exp(-t / tau)
	return RCTransientResult{
		Tau:          tau,
		ChargePct:    100.0 * (1.0 - decay),
		DischargePct: 100.0 * decay,
	}
}

// RCTimeForCharge computes t = -τ·ln(1 - p) for a target charge percentage.
func RCTimeForCharge(r, c, pct float64) (float64, error) {
	if r <= 0 {
		return 0, errors.NewDomainViolation("R", "Error: R>0, C>0.")
	}
	if c <= 0 {
		return 0, errors.NewDomainViolation("C", "Error: R>0, C>0.")
	}
	if err := guardPercentOpen(pct); err != nil {
		return 0, err
	}

	tau := r * c
	return -tau * math.Log(1.0-pct/100.0), nil
}

// RCSolveC computes C = τ/R with τ = -t / ln(1 - p).
// The τ also comes back so callers can display it alongside C.
func RCSolveC(r, pct, t float64) (c, tau float64, err error) {
	if r <= 0 {
		return 0, 0, errors.NewDomainViolation("R", "Error: R>0.")
	}
	tau, err = rcSolveTau(pct, t)
	if err != nil {
		return 0, 0, err
	}

	c, ok := Div(tau, r)
	if !ok {
		return 0, 0, errors.NewDivideByZero("Error: division by zero.")
	}
	return c, tau, nil
}

// RCSolveR computes R = τ/C with τ = -t / ln(1 - p).
func RCSolveR(c, pct, t float64) (r, tau float64, err error) {
	if c <= 0 {
		return 0, 0, errors.NewDomainViolation("C", "Error: C>0.")
	}
	tau, err = rcSolveTau(pct, t)
	if err != nil {
		return 0, 0, err
	}

	r, ok := Div(tau, c)
	if !ok {
		return 0, 0, errors.NewDivideByZero("Error: division by zero.")
	}
	return r, tau, nil
}

// rcSolveTau inverts the charge curve: τ = -t / ln(1 - p).
// The logarithm can round to exactly zero for vanishingly small percentages,
// so the division routes through Div like every other user-derived
// denominator.
func rcSolveTau(pct, t float64) (float64, error) {
	if t < 0 {
		return 0, errors.NewDomainViolation("t", "Error: t>=0.")
	}
	if err := guardPercentOpen(pct); err != nil {
		return 0, err
	}

	lnArg := 1.0 - pct/100.0
	if err := guardLnDomain(lnArg); err != nil {
		return 0, err
	}

	tau, ok := Div(-t, math.Log(lnArg))
	if !ok {
		return 0, errors.NewDivideByZero("Error: division by zero.")
	}
	return tau, nil
}
