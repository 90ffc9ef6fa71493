package mcp

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/ohm/internal/calc"
	"github.com/hpungsan/ohm/internal/config"
	"github.com/hpungsan/ohm/internal/errors"
	"github.com/hpungsan/ohm/internal/logbook"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	log *logbook.Logbook
	cfg *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(log *logbook.Logbook, cfg *config.Config) *Handlers {
	return &Handlers{log: log, cfg: cfg}
}

// Request types for each tool

// DividerRequest represents the arguments for divider_solve.
type DividerRequest struct {
	Solve string   `json:"solve"`
	Vin   *float64 `json:"vin,omitempty"`
	Vout  *float64 `json:"vout,omitempty"`
	R1    *float64 `json:"r1,omitempty"`
	R2    *float64 `json:"r2,omitempty"`
}

// SeriesRequest represents the arguments for resistor_series.
type SeriesRequest struct {
	Mode      string    `json:"mode"`
	Resistors []float64 `json:"resistors"`
	Rt        *float64  `json:"rt,omitempty"`
}

// ParallelRequest represents the arguments for resistor_parallel.
type ParallelRequest struct {
	Solve string   `json:"solve"`
	Req   *float64 `json:"req,omitempty"`
	R1    *float64 `json:"r1,omitempty"`
	R2    *float64 `json:"r2,omitempty"`
}

// ReactanceRequest represents the arguments for reactance_solve.
type ReactanceRequest struct {
	Kind  string   `json:"kind"`
	Solve string   `json:"solve"`
	F     *float64 `json:"f,omitempty"`
	XL    *float64 `json:"xl,omitempty"`
	XC    *float64 `json:"xc,omitempty"`
	L     *float64 `json:"l,omitempty"`
	C     *float64 `json:"c,omitempty"`
}

// ResonanceRequest represents the arguments for resonance_solve.
type ResonanceRequest struct {
	Solve string   `json:"solve"`
	F0    *float64 `json:"f0,omitempty"`
	L     *float64 `json:"l,omitempty"`
	C     *float64 `json:"c,omitempty"`
}

// RCRequest represents the arguments for rc_transient.
type RCRequest struct {
	Mode   string   `json:"mode"`
	R      *float64 `json:"r,omitempty"`
	C      *float64 `json:"c,omitempty"`
	T      *float64 `json:"t,omitempty"`
	Tau    *float64 `json:"tau,omitempty"`
	Charge *float64 `json:"charge,omitempty"`
}

// PowerRequest represents the arguments for power_solve.
type PowerRequest struct {
	Solve string   `json:"solve"`
	P     *float64 `json:"p,omitempty"`
	V     *float64 `json:"v,omitempty"`
	I     *float64 `json:"i,omitempty"`
}

// need extracts a required numeric argument, naming it when absent.
func need(p *float64, name string) (float64, error) {
	if p == nil {
		return 0, errors.NewInvalidRequest(name + " is required")
	}
	return *p, nil
}

// Handler implementations

// HandleDivider handles the divider_solve tool call.
func (h *Handlers) HandleDivider(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DividerRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	switch input.Solve {
	case "vout":
		vin, err := need(input.Vin, "vin")
		if err != nil {
			return errorResult(err), nil
		}
		r1, err := need(input.R1, "r1")
		if err != nil {
			return errorResult(err), nil
		}
		r2, err := need(input.R2, "r2")
		if err != nil {
			return errorResult(err), nil
		}

		vout, err := calc.DividerVout(vin, r1, r2)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
			Op: "Voltage Divider (Vout)",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("Vin", vin, "V"),
				logbook.Fixed6("R1", r1, "ohm"),
				logbook.Fixed6("R2", r2, "ohm"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("Vout", vout, "V")},
		}, map[string]float64{"vout": vout})

	case "vin":
		vout, err := need(input.Vout, "vout")
		if err != nil {
			return errorResult(err), nil
		}
		r1, err := need(input.R1, "r1")
		if err != nil {
			return errorResult(err), nil
		}
		r2, err := need(input.R2, "r2")
		if err != nil {
			return errorResult(err), nil
		}

		vin, err := calc.DividerVin(vout, r1, r2)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
			Op: "Voltage Divider (Vin)",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("Vout", vout, "V"),
				logbook.Fixed6("R1", r1, "ohm"),
				logbook.Fixed6("R2", r2, "ohm"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("Vin", vin, "V")},
		}, map[string]float64{"vin": vin})

	case "r1":
		vin, err := need(input.Vin, "vin")
		if err != nil {
			return errorResult(err), nil
		}
		vout, err := need(input.Vout, "vout")
		if err != nil {
			return errorResult(err), nil
		}
		r2, err := need(input.R2, "r2")
		if err != nil {
			return errorResult(err), nil
		}

		r1, err := calc.DividerR1(vin, vout, r2)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
			Op: "Voltage Divider (R1)",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("Vin", vin, "V"),
				logbook.Fixed6("Vout", vout, "V"),
				logbook.Fixed6("R2", r2, "ohm"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("R1", r1, "ohm")},
		}, map[string]float64{"r1": r1})

	case "r2":
		vin, err := need(input.Vin, "vin")
		if err != nil {
			return errorResult(err), nil
		}
		vout, err := need(input.Vout, "vout")
		if err != nil {
			return errorResult(err), nil
		}
		r1, err := need(input.R1, "r1")
		if err != nil {
			return errorResult(err), nil
		}

		r2, err := calc.DividerR2(vin, vout, r1)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
			Op: "Voltage Divider (R2)",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("Vin", vin, "V"),
				logbook.Fixed6("Vout", vout, "V"),
				logbook.Fixed6("R1", r1, "ohm"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("R2", r2, "ohm")},
		}, map[string]float64{"r2": r2})

	default:
		return errorResult(errors.NewInvalidRequest("unknown solve: " + input.Solve)), nil
	}
}

// HandleSeries handles the resistor_series tool call.
func (h *Handlers) HandleSeries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SeriesRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	switch input.Mode {
	case "total":
		n := int64(len(input.Resistors))
		if err := calc.GuardSeriesCount(n); err != nil {
			return errorResult(err), nil
		}

		sum := calc.SeriesTotal(input.Resistors)
		return h.success(logbook.Record{
			Op:      "Resistors Series",
			Inputs:  []logbook.Quantity{logbook.Count("n", n)},
			Outputs: []logbook.Quantity{logbook.Fixed6("Rt", sum, "ohm")},
		}, map[string]float64{"rt": sum})

	case "missing":
		// The known resistors are the other n-1; the full chain has one more.
		n := int64(len(input.Resistors)) + 1
		if err := calc.GuardSeriesMissingCount(n); err != nil {
			return errorResult(err), nil
		}

		rt, err := need(input.Rt, "rt")
		if err != nil {
			return errorResult(err), nil
		}

		sumKnown := calc.SeriesTotal(input.Resistors)
		missing := calc.SeriesMissing(rt, input.Resistors)
		return h.success(logbook.Record{
			Op: "Resistors Series Missing",
			Inputs: []logbook.Quantity{
				logbook.Count("n", n),
				logbook.Fixed6("Rt", rt, "ohm"),
				logbook.Fixed6("sum_known", sumKnown, "ohm"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("R_missing", missing, "ohm")},
		}, map[string]float64{"r_missing": missing})

	default:
		return errorResult(errors.NewInvalidRequest("unknown mode: " + input.Mode)), nil
	}
}

// HandleParallel handles the resistor_parallel tool call.
func (h *Handlers) HandleParallel(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ParallelRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	switch input.Solve {
	case "req":
		r1, err := need(input.R1, "r1")
		if err != nil {
			return errorResult(err), nil
		}
		r2, err := need(input.R2, "r2")
		if err != nil {
			return errorResult(err), nil
		}

		res, err := calc.ParallelReq(r1, r2)
		if err != nil {
			return errorResult(err), nil
		}

		inputs := []logbook.Quantity{
			logbook.Fixed6("R1", r1, "ohm"),
			logbook.Fixed6("R2", r2, "ohm"),
		}
		if res.Short {
			return h.success(logbook.Record{
				Op:      "Resistors Parallel(2)",
				Inputs:  inputs,
				Outputs: []logbook.Quantity{logbook.Raw("Req", "0 (short branch)")},
			}, map[string]float64{"req": 0})
		}
		return h.success(logbook.Record{
			Op:      "Resistors Parallel(2)",
			Inputs:  inputs,
			Outputs: []logbook.Quantity{logbook.Fixed6("Req", res.Req, "ohm")},
		}, map[string]float64{"req": res.Req})

	case "r1":
		reqOhms, err := need(input.Req, "req")
		if err != nil {
			return errorResult(err), nil
		}
		r2, err := need(input.R2, "r2")
		if err != nil {
			return errorResult(err), nil
		}

		r1, err := calc.ParallelR1(reqOhms, r2)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
			Op: "Resistors Parallel(2) solve R1",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("Req", reqOhms, "ohm"),
				logbook.Fixed6("R2", r2, "ohm"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("R1", r1, "ohm")},
		}, map[string]float64{"r1": r1})

	case "r2":
		reqOhms, err := need(input.Req, "req")
		if err != nil {
			return errorResult(err), nil
		}
		r1, err := need(input.R1, "r1")
		if err != nil {
			return errorResult(err), nil
		}

		r2, err := calc.ParallelR2(reqOhms, r1)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
			Op: "Resistors Parallel(2) solve R2",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("Req", reqOhms, "ohm"),
				logbook.Fixed6("R1", r1, "ohm"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("R2", r2, "ohm")},
		}, map[string]float64{"r2": r2})

	default:
		return errorResult(errors.NewInvalidRequest("unknown solve: " + input.Solve)), nil
	}
}

// HandleReactance handles the reactance_solve tool call.
func (h *Handlers) HandleReactance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ReactanceRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	switch input.Kind {
	case "inductive":
		return h.inductiveReactance(input)
	case "capacitive":
		return h.capacitiveReactance(input)
	default:
		return errorResult(errors.NewInvalidRequest("unknown kind: " + input.Kind)), nil
	}
}

func (h *Handlers) inductiveReactance(input ReactanceRequest) (*mcp.CallToolResult, error) {
	switch input.Solve {
	case "reactance":
		f, err := need(input.F, "f")
		if err != nil {
			return errorResult(err), nil
		}
		l, err := need(input.L, "l")
		if err != nil {
			return errorResult(err), nil
		}

		xl, err := calc.InductiveXL(f, l)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
			Op: "AC Inductive Reactance",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("f", f, "Hz"),
				logbook.Fixed9("L", l, "H"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("XL", xl, "ohm")},
		}, map[string]float64{"xl": xl})

	case "component":
		xl, err := need(input.XL, "xl")
		if err != nil {
			return errorResult(err), nil
		}
		f, err := need(input.F, "f")
		if err != nil {
			return errorResult(err), nil
		}

		l, err := calc.InductiveL(xl, f)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
			Op: "AC Inductive Reactance solve L",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("XL", xl, "ohm"),
				logbook.Fixed6("f", f, "Hz"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed9("L", l, "H")},
		}, map[string]float64{"l": l})

	case "frequency":
		xl, err := need(input.XL, "xl")
		if err != nil {
			return errorResult(err), nil
		}
		l, err := need(input.L, "l")
		if err != nil {
			return errorResult(err), nil
		}

		f, err := calc.InductiveF(xl, l)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
			Op: "AC Inductive Reactance solve f",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("XL", xl, "ohm"),
				logbook.Fixed9("L", l, "H"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("f", f, "Hz")},
		}, map[string]float64{"f": f})

	default:
		return errorResult(errors.NewInvalidRequest("unknown solve: " + input.Solve)), nil
	}
}

func (h *Handlers) capacitiveReactance(input ReactanceRequest) (*mcp.CallToolResult, error) {
	switch input.Solve {
	case "reactance":
		f, err := need(input.F, "f")
		if err != nil {
			return errorResult(err), nil
		}
		c, err := need(input.C, "c")
		if err != nil {
			return errorResult(err), nil
		}

		xc, err := calc.CapacitiveXC(f, c)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
			Op: "AC Capacitive Reactance",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("f", f, "Hz"),
				logbook.Sci9("C", c, "F"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("XC", xc, "ohm")},
		}, map[string]float64{"xc": xc})

	case "component":
		xc, err := need(input.XC, "xc")
		if err != nil {
			return errorResult(err), nil
		}
		f, err := need(input.F, "f")
		if err != nil {
			return errorResult(err), nil
		}

		c, err := calc.CapacitiveC(xc, f)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
			Op: "AC Capacitive Reactance solve C",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("XC", xc, "ohm"),
				logbook.Fixed6("f", f, "Hz"),
			},
			Outputs: []logbook.Quantity{logbook.Sci9("C", c, "F")},
		}, map[string]float64{"c": c})

	case "frequency":
		xc, err := need(input.XC, "xc")
		if err != nil {
			return errorResult(err), nil
		}
		c, err := need(input.C, "c")
		if err != nil {
			return errorResult(err), nil
		}

		f, err := calc.CapacitiveF(xc, c)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
			Op: "AC Capacitive Reactance solve f",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("XC", xc, "ohm"),
				logbook.Sci9("C", c, "F"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("f", f, "Hz")},
		}, map[string]float64{"f": f})

	default:
		return errorResult(errors.NewInvalidRequest("unknown solve: " + input.Solve)), nil
	}
}

// HandleResonance handles the resonance_solve tool call.
func (h *Handlers) HandleResonance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ResonanceRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	switch input.Solve {
	case "f0":
		l, err := need(input.L, "l")
		if err != nil {
			return errorResult(err), nil
		}
		c, err := need(input.C, "c")
		if err != nil {
			return errorResult(err), nil
		}

		f0, err := calc.ResonantF0(l, c)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
			Op: "Resonance",
			Inputs: []logbook.Quantity{
				logbook.Sci9("L", l, "H"),
				logbook.Sci9("C", c, "F"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("f0", f0, "Hz")},
		}, map[string]float64{"f0": f0})

	case "l":
		f0, err := need(input.F0, "f0")
		if err != nil {
			return errorResult(err), nil
		}
		c, err := need(input.C, "c")
		if err != nil {
			return errorResult(err), nil
		}

		l, err := calc.ResonantL(f0, c)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
			Op: "Resonance solve L",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("f0", f0, "Hz"),
				logbook.Sci9("C", c, "F"),
			},
			Outputs: []logbook.Quantity{logbook.Sci9("L", l, "H")},
		}, map[string]float64{"l": l})

	case "c":
		f0, err := need(input.F0, "f0")
		if err != nil {
			return errorResult(err), nil
		}
		l, err := need(input.L, "l")
		if err != nil {
			return errorResult(err), nil
		}

		c, err := calc.ResonantC(f0, l)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
			Op: "Resonance solve C",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("f0", f0, "Hz"),
				logbook.Sci9("L", l, "H"),
			},
			Outputs: []logbook.Quantity{logbook.Sci9("C", c, "F")},
		}, map[string]float64{"c": c})

	default:
		return errorResult(errors.NewInvalidRequest("unknown solve: " + input.Solve)), nil
	}
}

// HandleRC handles the rc_transient tool call.
func (h *Handlers) HandleRC(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RCRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	switch input.Mode {
	case "forward":
		r, err := need(input.R, "r")
		if err != nil {
			return errorResult(err), nil
		}
		c, err := need(input.C, "c")
		if err != nil {
			return errorResult(err), nil
		}
		t, err := need(input.T, "t")
		if err != nil {
			return errorResult(err), nil
		}

		res, err := calc.RCForward(r, c, t)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
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
		}, map[string]float64{
			"tau":       res.Tau,
			"charge":    res.ChargePct,
			"discharge": res.DischargePct,
		})

	case "time":
		r, err := need(input.R, "r")
		if err != nil {
			return errorResult(err), nil
		}
		c, err := need(input.C, "c")
		if err != nil {
			return errorResult(err), nil
		}
		pct, err := need(input.Charge, "charge")
		if err != nil {
			return errorResult(err), nil
		}

		t, err := calc.RCTimeForCharge(r, c, pct)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
			Op: "RC solve t",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("R", r, "ohm"),
				logbook.Sci9("C", c, "F"),
				logbook.Percent("charge", pct),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("t", t, "s")},
		}, map[string]float64{"t": t})

	case "from_tau":
		tau, err := need(input.Tau, "tau")
		if err != nil {
			return errorResult(err), nil
		}
		t, err := need(input.T, "t")
		if err != nil {
			return errorResult(err), nil
		}

		res, err := calc.RCFromTau(tau, t)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
			Op: "RC from tau,t",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("tau", tau, "s"),
				logbook.Fixed6("t", t, "s"),
			},
			Outputs: []logbook.Quantity{
				logbook.Percent("charge", res.ChargePct),
				logbook.Percent("discharge", res.DischargePct),
			},
		}, map[string]float64{
			"charge":    res.ChargePct,
			"discharge": res.DischargePct,
		})

	case "capacitance":
		r, err := need(input.R, "r")
		if err != nil {
			return errorResult(err), nil
		}
		pct, err := need(input.Charge, "charge")
		if err != nil {
			return errorResult(err), nil
		}
		t, err := need(input.T, "t")
		if err != nil {
			return errorResult(err), nil
		}

		c, tau, err := calc.RCSolveC(r, pct, t)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
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
		}, map[string]float64{"c": c, "tau": tau})

	case "resistance":
		c, err := need(input.C, "c")
		if err != nil {
			return errorResult(err), nil
		}
		pct, err := need(input.Charge, "charge")
		if err != nil {
			return errorResult(err), nil
		}
		t, err := need(input.T, "t")
		if err != nil {
			return errorResult(err), nil
		}

		r, tau, err := calc.RCSolveR(c, pct, t)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
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
		}, map[string]float64{"r": r, "tau": tau})

	default:
		return errorResult(errors.NewInvalidRequest("unknown mode: " + input.Mode)), nil
	}
}

// HandlePower handles the power_solve tool call.
func (h *Handlers) HandlePower(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[PowerRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	switch input.Solve {
	case "p":
		v, err := need(input.V, "v")
		if err != nil {
			return errorResult(err), nil
		}
		i, err := need(input.I, "i")
		if err != nil {
			return errorResult(err), nil
		}

		p := calc.PowerP(v, i)
		return h.success(logbook.Record{
			Op: "Power",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("V", v, "V"),
				logbook.Fixed6("I", i, "A"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("P", p, "W")},
		}, map[string]float64{"p": p})

	case "v":
		p, err := need(input.P, "p")
		if err != nil {
			return errorResult(err), nil
		}
		i, err := need(input.I, "i")
		if err != nil {
			return errorResult(err), nil
		}

		v, err := calc.PowerV(p, i)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
			Op: "Power solve V",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("P", p, "W"),
				logbook.Fixed6("I", i, "A"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("V", v, "V")},
		}, map[string]float64{"v": v})

	case "i":
		p, err := need(input.P, "p")
		if err != nil {
			return errorResult(err), nil
		}
		v, err := need(input.V, "v")
		if err != nil {
			return errorResult(err), nil
		}

		i, err := calc.PowerI(p, v)
		if err != nil {
			return errorResult(err), nil
		}
		return h.success(logbook.Record{
			Op: "Power solve I",
			Inputs: []logbook.Quantity{
				logbook.Fixed6("P", p, "W"),
				logbook.Fixed6("V", v, "V"),
			},
			Outputs: []logbook.Quantity{logbook.Fixed6("I", i, "A")},
		}, map[string]float64{"i": i})

	default:
		return errorResult(errors.NewInvalidRequest("unknown solve: " + input.Solve)), nil
	}
}

// success appends the logbook record, then returns a JSON result carrying a
// fresh calculation id, the record's display strings, and the raw values.
// Logging failures are ignored, same as the interactive menu.
func (h *Handlers) success(rec logbook.Record, values map[string]float64) (*mcp.CallToolResult, error) {
	_ = h.log.Append(rec)

	inputs := make(map[string]string, len(rec.Inputs))
	for _, q := range rec.Inputs {
		inputs[q.Name] = q.Text
	}
	outputs := make(map[string]string, len(rec.Outputs))
	for _, q := range rec.Outputs {
		outputs[q.Name] = q.Text
	}

	return successResult(map[string]any{
		"id":      newCalculationID(),
		"op":      rec.Op,
		"inputs":  inputs,
		"outputs": outputs,
		"values":  values,
	})
}

// newCalculationID generates a ULID for a completed calculation.
func newCalculationID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.Monotonic(rand.Reader, 0)).String()
}

// errorResult creates an MCP error result from any error.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if calcErr, ok := err.(*errors.CalcError); ok {
		errorObj := map[string]any{
			"code":    calcErr.Code,
			"message": calcErr.Message,
		}
		// Internal errors keep their details out of the wire payload.
		if calcErr.Code != errors.ErrInternal && calcErr.Details != nil {
			errorObj["details"] = calcErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
