package logbook

import (
	"fmt"
	"strings"
)

// Quantity is one named value in a log record, pre-rendered with its unit.
// Formatting rules are fixed per physical kind so log output stays stable:
// %.6f for volts/ohms/hertz/watts/amps/seconds, %.9f or %.9e for inductance,
// %.9e for capacitance, %.2f for percentages.
type Quantity struct {
	Name  string
	Text  string
	Paren bool // rendered in parentheses after the preceding quantity
}

// Fixed6 renders v with six decimal places and a unit.
func Fixed6(name string, v float64, unit string) Quantity {
	return Quantity{Name: name, Text: fmt.Sprintf("%.6f %s", v, unit)}
}

// Fixed9 renders v with nine decimal places and a unit.
func Fixed9(name string, v float64, unit string) Quantity {
	return Quantity{Name: name, Text: fmt.Sprintf("%.9f %s", v, unit)}
}

// Sci9 renders v in scientific notation with nine decimal places and a unit.
func Sci9(name string, v float64, unit string) Quantity {
	return Quantity{Name: name, Text: fmt.Sprintf("%.9e %s", v, unit)}
}

// Percent renders v with two decimal places and a percent sign (no space).
func Percent(name string, v float64) Quantity {
	return Quantity{Name: name, Text: fmt.Sprintf("%.2f%%", v)}
}

// Count renders an integer count with no unit.
func Count(name string, n int64) Quantity {
	return Quantity{Name: name, Text: fmt.Sprintf("%d", n)}
}

// Raw renders pre-formatted text verbatim.
func Raw(name, text string) Quantity {
	return Quantity{Name: name, Text: text}
}

// Paren marks a quantity to be rendered parenthesized after the previous one,
// e.g. "C=1.000000000e-06 F (tau=0.001000 s)".
func Paren(q Quantity) Quantity {
	q.Paren = true
	return q
}

// Record is one completed calculation: the operation name, its inputs, and
// its outputs. It renders to a single log line.
type Record struct {
	Op      string
	Inputs  []Quantity
	Outputs []Quantity
}

// Line renders the record as "<op>: <inputs> -> <outputs>".
func (r Record) Line() string {
	var b strings.Builder
	b.WriteString(r.Op)
	b.WriteString(": ")
	writeQuantities(&b, r.Inputs)
	b.WriteString(" -> ")
	writeQuantities(&b, r.Outputs)
	return b.String()
}

func writeQuantities(b *strings.Builder, qs []Quantity) {
	first := true
	for _, q := range qs {
		switch {
		case q.Paren:
			b.WriteString(" (")
			b.WriteString(q.Name)
			b.WriteString("=")
			b.WriteString(q.Text)
			b.WriteString(")")
		case first:
			b.WriteString(q.Name)
			b.WriteString("=")
			b.WriteString(q.Text)
			first = false
		default:
			b.WriteString(", ")
			b.WriteString(q.Name)
			b.WriteString("=")
			b.WriteString(q.Text)
		}
	}
}
