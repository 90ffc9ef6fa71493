package menu

import (
	"fmt"

	"github.com/hpungsan/ohm/internal/calc"
	"github.com/hpungsan/ohm/internal/logbook"
)

func (s *Session) voltageDivider() {
	fmt.Fprint(s.out, "\n--- Voltage Divider ---\n")
	fmt.Fprint(s.out, "Solve:\n")
	fmt.Fprint(s.out, "1) Vout given Vin, R1, R2\n")
	fmt.Fprint(s.out, "2) Vin  given Vout, R1, R2\n")
	fmt.Fprint(s.out, "3) R1   given Vin, Vout, R2\n")
	fmt.Fprint(s.out, "4) R2   given Vin, Vout, R1\n")

	mode, ok := s.in.Int("Select: ")
	if !ok {
		return
	}

	switch mode {
	case 1:
		vin, ok := s.in.Float("Vin (V): ")
		if !ok {
			return
		}
		r1, ok := s.in.Float("R1 (ohms): ")
		if !ok {
			return
		}
		r2, ok := s.in.Float("R2 (ohms): ")
		if !ok {
			return
		}

		vout, err := calc.DividerVout(vin, r1, r2)
		if err != nil {
			s.printErr(err)
			return
		}
		fmt.Fprintf(s.out, "Vout = %.6f V\n", vout)

		s.record(logbook.Record{
			Op: "Voltage Divider (Vout)",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("Vin", vin, "V"),
				logbook.Fixed6("R1", r1, "ohm"),
				logbook.Fixed6("R2", r2, "ohm"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("Vout", vout, "V")},
		})

	case 2:
		vout, ok := s.in.Float("Vout (V): ")
		if !ok {
			return
		}
		r1, ok := s.in.Float("R1 (ohms): ")
		if !ok {
			return
		}
		r2, ok := s.in.Float("R2 (ohms): ")
		if !ok {
			return
		}

		vin, err := calc.DividerVin(vout, r1, r2)
		if err != nil {
			s.printErr(err)
			return
		}
		fmt.Fprintf(s.out, "Vin = %.6f V\n", vin)

		s.record(logbook.Record{
			Op: "Voltage Divider (Vin)",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("Vout", vout, "V"),
				logbook.Fixed6("R1", r1, "ohm"),
				logbook.Fixed6("R2", r2, "ohm"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("Vin", vin, "V")},
		})

	case 3:
		vin, ok := s.in.Float("Vin (V): ")
		if !ok {
			return
		}
		vout, ok := s.in.Float("Vout (V): ")
		if !ok {
			return
		}
		r2, ok := s.in.Float("R2 (ohms): ")
		if !ok {
			return
		}

		r1, err := calc.DividerR1(vin, vout, r2)
		if err != nil {
			s.printErr(err)
			return
		}
		fmt.Fprintf(s.out, "R1 = %.6f ohms\n", r1)

		s.record(logbook.Record{
			Op: "Voltage Divider (R1)",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("Vin", vin, "V"),
				logbook.Fixed6("Vout", vout, "V"),
				logbook.Fixed6("R2", r2, "ohm"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("R1", r1, "ohm")},
		})

	case 4:
		vin, ok := s.in.Float("Vin (V): ")
		if !ok {
			return
		}
		vout, ok := s.in.Float("Vout (V): ")
		if !ok {
			return
		}
		r1, ok := s.in.Float("R1 (ohms): ")
		if !ok {
			return
		}

		r2, err := calc.DividerR2(vin, vout, r1)
		if err != nil {
			s.printErr(err)
			return
		}
		fmt.Fprintf(s.out, "R2 = %.6f ohms\n", r2)

		s.record(logbook.Record{
			Op: "Voltage Divider (R2)",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("Vin", vin, "V"),
				logbook.Fixed6("Vout", vout, "V"),
				logbook.Fixed6("R1", r1, "ohm"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("R2", r2, "ohm")},
		})

	default:
		fmt.Fprintln(s.out, "Invalid selection.")
	}
}
