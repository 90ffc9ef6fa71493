package menu

import (
	"fmt"

	"github.com/hpungsan/ohm/internal/calc"
	"github.com/hpungsan/ohm/internal/logbook"
)

func (s *Session) power() {
	fmt.Fprint(s.out, "\n--- Power Equation ---\n")
	fmt.Fprint(s.out, "Choose using P = V × I:\n")
	fmt.Fprint(s.out, "1) Power  (P)  given V and I\n")
	fmt.Fprint(s.out, "2) Voltage (V) given P and I\n")
	fmt.Fprint(s.out, "3) Current (I) given P and V\n")

	mode, ok := s.in.Int("Select: ")
	if !ok {
		return
	}

	switch mode {
	case 1:
		v, ok := s.in.Float("V (volts): ")
		if !ok {
			return
		}
		i, ok := s.in.Float("I (amps):  ")
		if !ok {
			return
		}

		p := calc.PowerP(v, i)
		fmt.Fprintf(s.out, "P = %.6f W\n", p)

		s.record(logbook.Record{
			Op: "Power",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("V", v, "V"),
				logbook.Fixed6("I", i, "A"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("P", p, "W")},
		})

	case 2:
		p, ok := s.in.Float("P (watts): ")
		if !ok {
			return
		}
		i, ok := s.in.Float("I (amps):  ")
		if !ok {
			return
		}

		v, err := calc.PowerV(p, i)
		if err != nil {
			s.printErr(err)
			return
		}
		fmt.Fprintf(s.out, "V = %.6f V\n", v)

		s.record(logbook.Record{
			Op: "Power solve V",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("P", p, "W"),
				logbook.Fixed6("I", i, "A"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("V", v, "V")},
		})

	case 3:
		p, ok := s.in.Float("P (watts): ")
		if !ok {
			return
		}
		v, ok := s.in.Float("V (volts): ")
		if !ok {
			return
		}

		i, err := calc.PowerI(p, v)
		if err != nil {
			s.printErr(err)
			return
		}
		fmt.Fprintf(s.out, "I = %.6f A\n", i)

		s.record(logbook.Record{
			Op: "Power solve I",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("P", p, "W"),
				logbook.Fixed6("V", v, "V"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("I", i, "A")},
		})

	default:
		fmt.Fprintln(s.out, "Invalid selection.")
	}
}
