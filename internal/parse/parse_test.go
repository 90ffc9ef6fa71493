package parse

import (
	"fmt"
	"math"
	"strconv"
	"testing"
)

func TestInt64_Valid(t *testing.T) {
	tests := []struct {
		input string
		base  int
		want  int64
	}{
		{"12", 10, 12},
		{"12 ", 10, 12},
		{"12\t", 10, 12},
		{" 12", 10, 12},
		{"-7", 10, -7},
		{"+3", 10, 3},
		{"0", 10, 0},
		{"ff", 16, 255},
		{"9223372036854775807", 10, math.MaxInt64},
		{"-9223372036854775808", 10, math.MinInt64},
	}

	for _, tt := range tests {
		got, ok := Int64(tt.input, tt.base)
		if !ok {
			t.Errorf("Int64(%q, %d) not ok, want %d", tt.input, tt.base, tt.want)
			continue
		}
		if got != tt.want {
			t.Errorf("Int64(%q, %d) = %d, want %d", tt.input, tt.base, got, tt.want)
		}
	}
}

func TestInt64_Invalid(t *testing.T) {
	tests := []struct {
		input string
		base  int
	}{
		{"", 10},
		{" ", 10},
		{"\t", 10},
		{"abc", 10},
		{"12abc", 10},
		{"12 34", 10},
		{"1.5", 10},
		{"+", 10},
		{"9223372036854775808", 10},  // overflow
		{"-9223372036854775809", 10}, // underflow
		{"1_000", 10},
		{"1_000", 0}, // base 0 would otherwise accept separators
	}

	for _, tt := range tests {
		if v, ok := Int64(tt.input, tt.base); ok {
			t.Errorf("Int64(%q, %d) = %d ok, want failure", tt.input, tt.base, v)
		}
	}
}

func TestFloat_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"12", 12},
		{"12 ", 12},
		{"12\t", 12},
		{"3.5", 3.5},
		{"-0.25", -0.25},
		{".5", 0.5},
		{"1e-6", 1e-6},
		{"2.5E3", 2500},
		{"+4.0", 4},
	}

	for _, tt := range tests {
		got, ok := Float(tt.input)
		if !ok {
			t.Errorf("Float(%q) not ok, want %v", tt.input, tt.want)
			continue
		}
		if got != tt.want {
			t.Errorf("Float(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFloat_Invalid(t *testing.T) {
	tests := []string{
		"",
		" ",
		"abc",
		"3.4xyz",
		"1.2.3",
		"1e",
		"-",
		".",
		"1e999", // overflows to +Inf
		"inf",
		"-inf",
		"nan",
		"1_000.5", // digit separators are not part of the grammar
		"1_0e2",
	}

	for _, input := range tests {
		if v, ok := Float(input); ok {
			t.Errorf("Float(%q) = %v ok, want failure", input, v)
		}
	}
}

// TestFloat_RoundTrip verifies that re-rendering an accepted value and
// re-parsing it yields the same value.
func TestFloat_RoundTrip(t *testing.T) {
	inputs := []string{"12", "3.5", "-0.25", "1e-6", "6.28318", "1000"}

	for _, input := range inputs {
		v, ok := Float(input)
		if !ok {
			t.Fatalf("Float(%q) not ok", input)
		}

		rendered := strconv.FormatFloat(v, 'g', -1, 64)
		again, ok := Float(rendered)
		if !ok {
			t.Fatalf("Float(%q) (re-parse) not ok", rendered)
		}
		if again != v {
			t.Errorf("round trip %q -> %v -> %q -> %v", input, v, rendered, again)
		}
	}
}

func TestInt64_RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 42, math.MaxInt64, math.MinInt64} {
		rendered := fmt.Sprintf("%d", v)
		got, ok := Int64(rendered, 10)
		if !ok || got != v {
			t.Errorf("round trip %d -> %q -> (%d, %v)", v, rendered, got, ok)
		}
	}
}
