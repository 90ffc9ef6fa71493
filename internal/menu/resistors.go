package menu

import (
	"fmt"

	"github.com/hpungsan/ohm/internal/calc"
	"github.com/hpungsan/ohm/internal/logbook"
)

func (s *Session) resistorTools() {
	fmt.Fprint(s.out, "\n--- Resistor Tools ---\n")
	fmt.Fprint(s.out, "1) Series\n")
	fmt.Fprint(s.out, "2) Parallel (2 resistors)\n")

	group, ok := s.in.Int("Select: ")
	if !ok {
		return
	}

	switch group {
	case 1:
		s.seriesResistors()
	case 2:
		s.parallelResistors()
	default:
		fmt.Fprintln(s.out, "Invalid selection.")
	}
}

func (s *Session) seriesResistors() {
	fmt.Fprint(s.out, "\nSeries modes:\n")
	fmt.Fprint(s.out, "1) Total Rt given n resistors\n")
	fmt.Fprint(s.out, "2) Missing resistor given Rt and the other (n-1)\n")

	mode, ok := s.in.Int("Select: ")
	if !ok {
		return
	}

	switch mode {
	case 1:
		n, ok := s.in.Int("How many resistors? ")
		if !ok {
			return
		}
		if err := calc.GuardSeriesCount(n); err != nil {
			s.printErr(err)
			return
		}

		// n is raw user input; it bounds the read loop but must not size
		// an allocation.
		var rs []float64
		for i := int64(1); i <= n; i++ {
			fmt.Fprintf(s.out, "R%d (ohms): ", i)
			r, ok := s.in.Float("")
			if !ok {
				return
			}
			rs = append(rs, r)
		}

		sum := calc.SeriesTotal(rs)
		fmt.Fprintf(s.out, "R_total(series) = %.6f ohms\n", sum)

		s.record(logbook.Record{
			Op:      "Resistors Series",
			Inputs:  []logbook.Quantity{logbook.Count("n", n)},
			Outputs: []logbook.Quantity{logbook.Fixed6("Rt", sum, "ohm")},
		})

	case 2:
		n, ok := s.in.Int("Total number of series resistors n: ")
		if !ok {
			return
		}
		if err := calc.GuardSeriesMissingCount(n); err != nil {
			s.printErr(err)
			return
		}

		rt, ok := s.in.Float("Target Rt (ohms): ")
		if !ok {
			return
		}

		var known []float64
		for i := int64(1); i <= n-1; i++ {
			fmt.Fprintf(s.out, "Known R%d (ohms): ", i)
			r, ok := s.in.Float("")
			if !ok {
				return
			}
			known = append(known, r)
		}

		sumKnown := calc.SeriesTotal(known)
		missing := calc.SeriesMissing(rt, known)
		fmt.Fprintf(s.out, "Missing resistor = %.6f ohms\n", missing)

		s.record(logbook.Record{
			Op: "Resistors Series Missing",
			Inputs: []logbook.Quantity{
				logbook.Count("n", n),
				logbook.Fixed6("Rt", rt, "ohm"),
				logbook.Fixed6("sum_known", sumKnown, "ohm"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("R_missing", missing, "ohm")},
		})

	default:
		fmt.Fprintln(s.out, "Invalid selection.")
	}
}

func (s *Session) parallelResistors() {
	fmt.Fprint(s.out, "\nParallel(2) modes:\n")
	fmt.Fprint(s.out, "1) Req given R1 and R2\n")
	fmt.Fprint(s.out, "2) R1  given Req and R2\n")
	fmt.Fprint(s.out, "3) R2  given Req and R1\n")

	mode, ok := s.in.Int("Select: ")
	if !ok {
		return
	}

	switch mode {
	case 1:
		r1, ok := s.in.Float("R1 (ohms): ")
		if !ok {
			return
		}
		r2, ok := s.in.Float("R2 (ohms): ")
		if !ok {
			return
		}

		res, err := calc.ParallelReq(r1, r2)
		if err != nil {
			s.printErr(err)
			return
		}

		inputs := []logbook.Quantity{
			logbook.Fixed6("R1", r1, "ohm"),
			logbook.Fixed6("R2", r2, "ohm"),
		}

		if res.Short {
			fmt.Fprint(s.out, "Req = 0 ohms (one branch is a short).\n")
			s.record(logbook.Record{
				Op:      "Resistors Parallel(2)",
				Inputs:  inputs,
				Outputs: []logbook.Quantity{logbook.Raw("Req", "0 (short branch)")},
			})
			return
		}

		fmt.Fprintf(s.out, "R_eq(parallel,2) = %.6f ohms\n", res.Req)
		s.record(logbook.Record{
			Op:      "Resistors Parallel(2)",
			Inputs:  inputs,
			Outputs: []logbook.Quantity{logbook.Fixed6("Req", res.Req, "ohm")},
		})

	case 2:
		req, ok := s.in.Float("Req (ohms): ")
		if !ok {
			return
		}
		r2, ok := s.in.Float("R2  (ohms): ")
		if !ok {
			return
		}

		r1, err := calc.ParallelR1(req, r2)
		if err != nil {
			s.printErr(err)
			return
		}
		fmt.Fprintf(s.out, "R1 = %.6f ohms\n", r1)

		s.record(logbook.Record{
			Op: "Resistors Parallel(2) solve R1",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("Req", req, "ohm"),
				logbook.Fixed6("R2", r2, "ohm"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("R1", r1, "ohm")},
		})

	case 3:
		req, ok := s.in.Float("Req (ohms): ")
		if !ok {
			return
		}
		r1, ok := s.in.Float("R1  (ohms): ")
		if !ok {
			return
		}

		r2, err := calc.ParallelR2(req, r1)
		if err != nil {
			s.printErr(err)
			return
		}
		fmt.Fprintf(s.out, "R2 = %.6f ohms\n", r2)

		s.record(logbook.Record{
			Op: "Resistors Parallel(2) solve R2",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("Req", req, "ohm"),
				logbook.Fixed6("R1", r1, "ohm"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("R2", r2, "ohm")},
		})

	default:
		fmt.Fprintln(s.out, "Invalid selection.")
	}
}
