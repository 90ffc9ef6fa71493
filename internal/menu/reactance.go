package menu

import (
	"fmt"

	"github.com/hpungsan/ohm/internal/calc"
	"github.com/hpungsan/ohm/internal/logbook"
)

func (s *Session) reactance() {
	fmt.Fprint(s.out, "\n--- AC Reactance & Resonance ---\n")
	fmt.Fprint(s.out, "1) Inductive Reactance (X_L)\n")
	fmt.Fprint(s.out, "2) Capacitive Reactance (X_C)\n")
	fmt.Fprint(s.out, "3) Resonance (f0)\n")

	group, ok := s.in.Int("Select: ")
	if !ok {
		return
	}

	switch group {
	case 1:
		s.inductiveReactance()
	case 2:
		s.capacitiveReactance()
	case 3:
		s.resonance()
	default:
		fmt.Fprintln(s.out, "Invalid selection.")
	}
}

func (s *Session) inductiveReactance() {
	fmt.Fprint(s.out, "\nSolve for:\n")
	fmt.Fprint(s.out, "1) X_L given f, L\n")
	fmt.Fprint(s.out, "2) L   given X_L, f\n")
	fmt.Fprint(s.out, "3) f   given X_L, L\n")

	mode, ok := s.in.Int("Select: ")
	if !ok {
		return
	}

	switch mode {
	case 1:
		f, ok := s.in.Float("f (Hz): ")
		if !ok {
			return
		}
		l, ok := s.in.Float("L (H): ")
		if !ok {
			return
		}

		xl, err := calc.InductiveXL(f, l)
		if err != nil {
			s.printErr(err)
			return
		}
		fmt.Fprintf(s.out, "X_L = %.6f ohms\n", xl)

		s.record(logbook.Record{
			Op: "AC Inductive Reactance",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("f", f, "Hz"),
				logbook.Fixed9("L", l, "H"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("XL", xl, "ohm")},
		})

	case 2:
		xl, ok := s.in.Float("X_L (ohms): ")
		if !ok {
			return
		}
		f, ok := s.in.Float("f (Hz): ")
		if !ok {
			return
		}

		l, err := calc.InductiveL(xl, f)
		if err != nil {
			s.printErr(err)
			return
		}
		fmt.Fprintf(s.out, "L = %.9f H\n", l)

		s.record(logbook.Record{
			Op: "AC Inductive Reactance solve L",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("XL", xl, "ohm"),
				logbook.Fixed6("f", f, "Hz"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed9("L", l, "H")},
		})

	case 3:
		xl, ok := s.in.Float("X_L (ohms): ")
		if !ok {
			return
		}
		l, ok := s.in.Float("L (H): ")
		if !ok {
			return
		}

		f, err := calc.InductiveF(xl, l)
		if err != nil {
			s.printErr(err)
			return
		}
		fmt.Fprintf(s.out, "f = %.6f Hz\n", f)

		s.record(logbook.Record{
			Op: "AC Inductive Reactance solve f",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("XL", xl, "ohm"),
				logbook.Fixed9("L", l, "H"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("f", f, "Hz")},
		})

	default:
		fmt.Fprintln(s.out, "Invalid selection.")
	}
}

func (s *Session) capacitiveReactance() {
	fmt.Fprint(s.out, "\nSolve for:\n")
	fmt.Fprint(s.out, "1) X_C given f, C\n")
	fmt.Fprint(s.out, "2) C   given X_C, f\n")
	fmt.Fprint(s.out, "3) f   given X_C, C\n")

	mode, ok := s.in.Int("Select: ")
	if !ok {
		return
	}

	switch mode {
	case 1:
		f, ok := s.in.Float("f (Hz): ")
		if !ok {
			return
		}
		c, ok := s.in.Float("C (F): ")
		if !ok {
			return
		}

		xc, err := calc.CapacitiveXC(f, c)
		if err != nil {
			s.printErr(err)
			return
		}
		fmt.Fprintf(s.out, "X_C = %.6f ohms\n", xc)

		s.record(logbook.Record{
			Op: "AC Capacitive Reactance",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("f", f, "Hz"),
				logbook.Sci9("C", c, "F"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("XC", xc, "ohm")},
		})

	case 2:
		xc, ok := s.in.Float("X_C (ohms): ")
		if !ok {
			return
		}
		f, ok := s.in.Float("f (Hz): ")
		if !ok {
			return
		}

		c, err := calc.CapacitiveC(xc, f)
		if err != nil {
			s.printErr(err)
			return
		}
		fmt.Fprintf(s.out, "C = %.9e F\n", c)

		s.record(logbook.Record{
			Op: "AC Capacitive Reactance solve C",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("XC", xc, "ohm"),
				logbook.Fixed6("f", f, "Hz"),
			},
			Outputs: []logbook.Quantity{logbook.Sci9("C", c, "F")},
		})

	case 3:
		xc, ok := s.in.Float("X_C (ohms): ")
		if !ok {
			return
		}
		c, ok := s.in.Float("C (F): ")
		if !ok {
			return
		}

		f, err := calc.CapacitiveF(xc, c)
		if err != nil {
			s.printErr(err)
			return
		}
		fmt.Fprintf(s.out, "f = %.6f Hz\n", f)

		s.record(logbook.Record{
			Op: "AC Capacitive Reactance solve f",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("XC", xc, "ohm"),
				logbook.Sci9("C", c, "F"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("f", f, "Hz")},
		})

	default:
		fmt.Fprintln(s.out, "Invalid selection.")
	}
}

func (s *Session) resonance() {
	fmt.Fprint(s.out, "\nSolve for:\n")
	fmt.Fprint(s.out, "1) f0 given L, C\n")
	fmt.Fprint(s.out, "2) L  given f0, C\n")
	fmt.Fprint(s.out, "3) C  given f0, L\n")

	mode, ok := s.in.Int("Select: ")
	if !ok {
		return
	}

	switch mode {
	case 1:
		l, ok := s.in.Float("L (H): ")
		if !ok {
			return
		}
		c, ok := s.in.Float("C (F): ")
		if !ok {
			return
		}

		f0, err := calc.ResonantF0(l, c)
		if err != nil {
			s.printErr(err)
			return
		}
		fmt.Fprintf(s.out, "f0 = %.6f Hz\n", f0)

		s.record(logbook.Record{
			Op: "Resonance",
			Inputs: []logbook.Quantity{
				logbook.Sci9("L", l, "H"),
				logbook.Sci9("C", c, "F"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("f0", f0, "Hz")},
		})

	case 2:
		f0, ok := s.in.Float("f0 (Hz): ")
		if !ok {
			return
		}
		c, ok := s.in.Float("C (F): ")
		if !ok {
			return
		}

		l, err := calc.ResonantL(f0, c)
		if err != nil {
			s.printErr(err)
			return
		}
		fmt.Fprintf(s.out, "L = %.9e H\n", l)

		s.record(logbook.Record{
			Op: "Resonance solve L",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("f0", f0, "Hz"),
				logbook.Sci9("C", c, "F"),
			},
			Outputs: []logbook.Quantity{logbook.Sci9("L", l, "H")},
		})

	case 3:
		f0, ok := s.in.Float("f0 (Hz): ")
		if !ok {
			return
		}
		l, ok := s.in.Float("L (H): ")
		if !ok {
			return
		}

		c, err := calc.ResonantC(f0, l)
		if err != nil {
			s.printErr(err)
			return
		}
		fmt.Fprintf(s.out, "C = %.9e F\n", c)

		s.record(logbook.Record{
			Op: "Resonance solve C",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("f0", f0, "Hz"),
				logbook.Sci9("L", l, "H"),
			},
			Outputs: []logbook.Quantity{logbook.Sci9("C", c, "F")},
		})

	default:
		fmt.Fprintln(s.out, "Invalid selection.")
	}
}
