package mcp

import "github.com/mark3labs/mcp-go/mcp"

// Tool definitions. Each tool mirrors one interactive menu module: the same
// formulas, the same guards, and the same logbook record on success.

var dividerToolDef = mcp.NewTool("divider_solve",
	mcp.WithDescription("Solve the two-resistor voltage divider Vout = Vin * R2/(R1+R2) for any one quantity given the other three"),
	mcp.WithString("solve",
		mcp.Required(),
		mcp.Description("Quantity to solve for"),
		mcp.Enum("vout", "vin", "r1", "r2"),
	),
	mcp.WithNumber("vin", mcp.Description("Input voltage in volts")),
	mcp.WithNumber("vout", mcp.Description("Output voltage in volts")),
	mcp.WithNumber("r1", mcp.Description("Top resistor in ohms")),
	mcp.WithNumber("r2", mcp.Description("Bottom resistor in ohms")),
)

var seriesToolDef = mcp.NewTool("resistor_series",
	mcp.WithDescription("Sum series resistors, or find the missing resistor given the target total and the known ones"),
	mcp.WithString("mode",
		mcp.Required(),
		mcp.Description("total: sum the given resistors; missing: solve rt minus the sum of the known resistors"),
		mcp.Enum("total", "missing"),
	),
	mcp.WithArray("resistors",
		mcp.Required(),
		mcp.Description("Resistor values in ohms (the known resistors in missing mode)"),
		mcp.Items(map[string]any{"type": "number"}),
	),
	mcp.WithNumber("rt", mcp.Description("Target total resistance in ohms (missing mode only)")),
)

var parallelToolDef = mcp.NewTool("resistor_parallel",
	mcp.WithDescription("Solve the two-resistor parallel combination Req = R1*R2/(R1+R2) for Req, R1, or R2"),
	mcp.WithString("solve",
		mcp.Required(),
		mcp.Description("Quantity to solve for"),
		mcp.Enum("req", "r1", "r2"),
	),
	mcp.WithNumber("req", mcp.Description("Equivalent resistance in ohms")),
	mcp.WithNumber("r1", mcp.Description("First resistor in ohms")),
	mcp.WithNumber("r2", mcp.Description("Second resistor in ohms")),
)

var reactanceToolDef = mcp.NewTool("reactance_solve",
	mcp.WithDescription("Solve inductive reactance XL = 2*pi*f*L or capacitive reactance XC = 1/(2*pi*f*C) for any one quantity"),
	mcp.WithString("kind",
		mcp.Required(),
		mcp.Description("Reactance kind"),
		mcp.Enum("inductive", "capacitive"),
	),
	mcp.WithString("solve",
		mcp.Required(),
		mcp.Description("Quantity to solve for: the reactance itself, the component value (L or C), or the frequency"),
		mcp.Enum("reactance", "component", "frequency"),
	),
	mcp.WithNumber("f", mcp.Description("Frequency in hertz")),
	mcp.WithNumber("xl", mcp.Description("Inductive reactance in ohms")),
	mcp.WithNumber("xc", mcp.Description("Capacitive reactance in ohms")),
	mcp.WithNumber("l", mcp.Description("Inductance in henries")),
	mcp.WithNumber("c", mcp.Description("Capacitance in farads")),
)

var resonanceToolDef = mcp.NewTool("resonance_solve",
	mcp.WithDescription("Solve the LC resonant frequency f0 = 1/(2*pi*sqrt(L*C)) for f0, L, or C"),
	mcp.WithString("solve",
		mcp.Required(),
		mcp.Description("Quantity to solve for"),
		mcp.Enum("f0", "l", "c"),
	),
	mcp.WithNumber("f0", mcp.Description("Resonant frequency in hertz")),
	mcp.WithNumber("l", mcp.Description("Inductance in henries")),
	mcp.WithNumber("c", mcp.Description("Capacitance in farads")),
)

var rcToolDef = mcp.NewTool("rc_transient",
	mcp.WithDescription("RC charging/discharging: tau and charge/discharge percentages, or solve the time, capacitance, or resistance that reaches a target charge"),
	mcp.WithString("mode",
		mcp.Required(),
		mcp.Description("forward: R,C,t -> tau and percentages; time: R,C,charge -> t; from_tau: tau,t -> percentages; capacitance: R,charge,t -> C; resistance: C,charge,t -> R"),
		mcp.Enum("forward", "time", "from_tau", "capacitance", "resistance"),
	),
	mcp.WithNumber("r", mcp.Description("Resistance in ohms")),
	mcp.WithNumber("c", mcp.Description("Capacitance in farads")),
	mcp.WithNumber("t", mcp.Description("Time in seconds")),
	mcp.WithNumber("tau", mcp.Description("Time constant in seconds")),
	mcp.WithNumber("charge", mcp.Description("Target charge percentage, strictly between 0 and 100")),
)

var powerToolDef = mcp.NewTool("power_solve",
	mcp.WithDescription("Solve P = V * I for power, voltage, or current"),
	mcp.WithString("solve",
		mcp.Required(),
		mcp.Description("Quantity to solve for"),
		mcp.Enum("p", "v", "i"),
	),
	mcp.WithNumber("p", mcp.Description("Power in watts")),
	mcp.WithNumber("v", mcp.Description("Voltage in volts")),
	mcp.WithNumber("i", mcp.Description("Current in amps")),
)
