// Package parse implements strict numeric parsing for user-entered lines.
//
// Parsing is strict: the entire non-whitespace content of the input must be
// consumed by the numeric grammar. Inputs such as "12abc" are rejected, while
// trailing spaces or tabs ("12 ", "12\t") are allowed.
package parse

import (
	"math"
	"strconv"
	"strings"
)

const cutset = " \t"

// Int64 parses a signed integer with strict validation.
// base follows strconv.ParseInt semantics (0 means auto-detect prefix).
// Returns false for empty input, trailing junk, or out-of-range magnitudes.
func Int64(s string, base int) (int64, bool) {
	s = trim(s)
	if s == "" || strings.ContainsRune(s, '_') {
		return 0, false
	}

	v, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Float parses a floating-point value with strict validation.
// Returns false for empty input, trailing junk, out-of-range magnitudes,
// and non-finite values ("inf", "nan"), which no calculation accepts.
// Go-literal digit underscores ("1_000.5") are rejected too; the accepted
// grammar has no separators.
func Float(s string) (float64, bool) {
	s = trim(s)
	if s == "" || strings.ContainsRune(s, '_') {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// trim strips leading and trailing spaces/tabs. Leading whitespace is skipped
// by the numeric grammar; trailing whitespace is the only content allowed
// after the consumed prefix.
func trim(s string) string {
	return strings.Trim(s, cutset)
}
