package calc

import "github.com/hpungsan/ohm/internal/errors"

// Shared domain guards. Formula-specific positivity checks live inline in the
// formula functions because their messages list the full precondition set for
// that variant.

// guardPercentOpen rejects percentages outside (0, 100) exclusive. The
// boundaries correspond to a zero or infinite time constant under the
// inverse RC formulas.
func guardPercentOpen(pct float64) error {
	if pct <= 0 || pct >= 100 {
		return errors.NewDomainViolation("%", "Error: % must be in (0,100).")
	}
	return nil
}

// guardLnDomain rejects non-positive logarithm arguments.
func guardLnDomain(arg float64) error {
	if arg <= 0 {
		return errors.NewDomainViolation("ln", "Error: invalid ln() domain.")
	}
	return nil
}

// GuardSeriesCount rejects non-positive resistor counts for the series-total
// calculation.
func GuardSeriesCount(n int64) error {
	if n <= 0 {
		return errors.NewDomainViolation("n", "Count must be positive.")
	}
	return nil
}

// GuardSeriesMissingCount rejects counts below two for the missing-resistor
// calculation, which needs at least one known resistor plus the unknown.
func GuardSeriesMissingCount(n int64) error {
	if n < 2 {
		return errors.NewDomainViolation("n", "n must be at least 2.")
	}
	return nil
}
