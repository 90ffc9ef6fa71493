package menu

import (
	"fmt"

	"github.com/hpungsan/ohm/internal/calc"
	"github.com/hpungsan/ohm/internal/logbook"
)

func (s *Session) rcTransient() {
	fmt.Fprint(s.out, "\n--- RC Transient Calculator ---\n")
	fmt.Fprintf(s.out, "1) Given R, C, t  -> tau, %%charge, %%discharge\n")
	fmt.Fprintf(s.out, "2) Given R, C, %%charge -> t\n")
	fmt.Fprintf(s.out, "3) Given tau, t   -> %%charge, %%discharge\n")
	fmt.Fprintf(s.out, "4) Given R, %%charge, t -> C\n")
	fmt.Fprintf(s.out, "5) Given C, %%charge, t -> R\n")

	mode, ok := s.in.Int("Select: ")
	if !ok {
		return
	}

	switch mode {
	case 1:
		r, ok := s.in.Float("R (ohms): ")
		if !ok {
			return
		}
		c, ok := s.in.Float("C (F): ")
		if !ok {
			return
		}
		t, ok := s.in.Float("t (s): ")
		if !ok {
			return
		}

		res, err := calc.RCForward(r, c, t)
		if err != nil {
			s.printErr(err)
			return
		}

		fmt.Fprintf(s.out, "Tau = %.6f s\n", res.Tau)
		fmt.Fprintf(s.out, "Charge at t: %.2f%%\n", res.ChargePct)
		fmt.Fprintf(s.out, "Discharge at t: %.2f%%\n", res.DischargePct)

		s.record(logbook.Record{
			Op: "RC Transient",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("R", r, "ohm"),
				logbook.Sci9("C", c, "F"),
				logbook.Fixed6("t", t, "s"),
			},
			Outputs: []logbook.Quantity{
				logbook.Fixed6("tau", res.Tau, "s"),
				logbook.Percent("charge", res.ChargePct),
				logbook.Percent("discharge", res.DischargePct),
			},
		})

	case 2:
		r, ok := s.in.Float("R (ohms): ")
		if !ok {
			return
		}
		c, ok := s.in.Float("C (F): ")
		if !ok {
			return
		}
		pct, ok := s.in.Float("Target charge (%): ")
		if !ok {
			return
		}

		t, err := calc.RCTimeForCharge(r, c, pct)
		if err != nil {
			s.printErr(err)
			return
		}
		fmt.Fprintf(s.out, "t = %.6f s\n", t)

		s.record(logbook.Record{
			Op: "RC solve t",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("R", r, "ohm"),
				logbook.Sci9("C", c, "F"),
				logbook.Percent("charge", pct),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("t", t, "s")},
		})

	case 3:
		tau, ok := s.in.Float("Tau (s): ")
		if !ok {
			return
		}
		t, ok := s.in.Float("t (s): ")
		if !ok {
			return
		}

		res, err := calc.RCFromTau(tau, t)
		if err != nil {
			s.printErr(err)
			return
		}

		fmt.Fprintf(s.out, "Charge at t: %.2f%%\n", res.ChargePct)
		fmt.Fprintf(s.out, "Discharge at t: %.2f%%\n", res.DischargePct)

		s.record(logbook.Record{
			Op: "RC from tau,t",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("tau", tau, "s"),
				logbook.Fixed6("t", t, "s"),
			},
			Outputs: []logbook.Quantity{
				logbook.Percent("charge", res.ChargePct),
				logbook.Percent("discharge", res.DischargePct),
			},
		})

	case 4:
		r, ok := s.in.Float("R (ohms): ")
		if !ok {
			return
		}
		pct, ok := s.in.Float("Target charge (%): ")
		if !ok {
			return
		}
		t, ok := s.in.Float("t (s): ")
		if !ok {
			return
		}

		c, tau, err := calc.RCSolveC(r, pct, t)
		if err != nil {
			s.printErr(err)
			return
		}
		fmt.Fprintf(s.out, "C = %.9e F (Tau = %.6f s)\n", c, tau)

		s.record(logbook.Record{
			Op: "RC solve C",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("R", r, "ohm"),
				logbook.Percent("charge", pct),
				logbook.Fixed6("t", t, "s"),
			},
			Outputs: []logbook.Quantity{
				logbook.Sci9("C", c, "F"),
				logbook.Paren(logbook.Fixed6("tau", tau, "s")),
			},
		})

	case 5:
		c, ok := s.in.Float("C (F): ")
		if !ok {
			return
		}
		pct, ok := s.in.Float("Target charge (%): ")
		if !ok {
			return
		}
		t, ok := s.in.Float("t (s): ")
		if !ok {
			return
		}

		r, tau, err := calc.RCSolveR(c, pct, t)
		if err != nil {
			s.printErr(err)
			return
		}
		fmt.Fprintf(s.out, "R = %.6f ohms (Tau = %.6f s)\n", r, tau)

		s.record(logbook.Record{
			Op: "RC solve R",
			Inputs: []logbook.Quantity{
				logbook.Sci9("C", c, "F"),
				logbook.Percent("charge", pct),
				logbook.Fixed6("t", t, "s"),
			},
			Outputs: []logbook.Quantity{
				logbook.Fixed6("R", r, "ohm"),
				logbook.Paren(logbook.Fixed6("tau", tau, "s")),
			},
		})

	default:
		fmt.Fprintln(s.out, "Invalid selection.")
	}
}
