package logbook

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestRecordLine_VoltageDivider(t *testing.T) {
	rec := Record{
		Op: "Voltage Divider (Vout)",
		Inputs: []Quantity{
			Fixed6("Vin", 10, "V"),
			Fixed6("R1", 1000, "ohm"),
			Fixed6("R2", 1000, "ohm"),
		},
		Outputs: []Quantity{
			Fixed6("Vout", 5, "V"),
		},
	}

	want := "Voltage Divider (Vout): Vin=10.000000 V, R1=1000.000000 ohm, R2=1000.000000 ohm -> Vout=5.000000 V"
	if got := rec.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestRecordLine_RCTransient(t *testing.T) {
	rec := Record{
		Op: "RC Transient",
		Inputs: []Quantity{
			Fixed6("R", 1000, "ohm"),
			Sci9("C", 1e-6, "F"),
			Fixed6("t", 0.001, "s"),
		},
		Outputs: []Quantity{
			Fixed6("tau", 0.001, "s"),
			Percent("charge", 63.212055882),
			Percent("discharge", 36.787944117),
		},
	}

	want := "RC Transient: R=1000.000000 ohm, C=1.000000000e-06 F, t=0.001000 s -> tau=0.001000 s, charge=63.21%, discharge=36.79%"
	if got := rec.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestRecordLine_ParenthesizedOutput(t *testing.T) {
	rec := Record{
		Op: "RC solve C",
		Inputs: []Quantity{
			Fixed6("R", 1000, "ohm"),
			Percent("charge", 63.21),
			Fixed6("t", 0.001, "s"),
		},
		Outputs: []Quantity{
			Sci9("C", 1e-6, "F"),
			Paren(Fixed6("tau", 0.001, "s")),
		},
	}

	want := "RC solve C: R=1000.000000 ohm, charge=63.21%, t=0.001000 s -> C=1.000000000e-06 F (tau=0.001000 s)"
	if got := rec.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestRecordLine_ShortBranchAndCount(t *testing.T) {
	rec := Record{
		Op: "Resistors Parallel(2)",
		Inputs: []Quantity{
			Fixed6("R1", 100, "ohm"),
			Fixed6("R2", 0, "ohm"),
		},
		Outputs: []Quantity{
			Raw("Req", "0 (short branch)"),
		},
	}
	want := "Resistors Parallel(2): R1=100.000000 ohm, R2=0.000000 ohm -> Req=0 (short branch)"
	if got := rec.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}

	rec = Record{
		Op:      "Resistors Series",
		Inputs:  []Quantity{Count("n", 3)},
		Outputs: []Quantity{Fixed6("Rt", 600, "ohm")},
	}
	want = "Resistors Series: n=3 -> Rt=600.000000 ohm"
	if got := rec.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestAppendAndView(t *testing.T) {
	fs := afero.NewMemMapFs()
	lb := New(fs, "/logs/ohm_log.txt")

	rec := Record{
		Op:      "Power",
		Inputs:  []Quantity{Fixed6("V", 12, "V"), Fixed6("I", 0.5, "A")},
		Outputs: []Quantity{Fixed6("P", 6, "W")},
	}

	if err := lb.Append(rec); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := lb.Append(rec); err != nil {
		t.Fatalf("Append() second error = %v", err)
	}

	var out bytes.Buffer
	lb.View(&out)

	if !strings.HasPrefix(out.String(), "\n--- Saved Log ---\n") {
		t.Errorf("View() output missing header: %q", out.String())
	}
	if got := strings.Count(out.String(), rec.Line()); got != 2 {
		t.Errorf("View() record count = %d, want 2", got)
	}
}

func TestView_NoFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	lb := New(fs, "/nope/ohm_log.txt")

	var out bytes.Buffer
	lb.View(&out)

	want := "\n--- Saved Log ---\nNo saved calculations yet.\n"
	if out.String() != want {
		t.Errorf("View() = %q, want %q", out.String(), want)
	}
}

func TestAppend_FailureDoesNotPanic(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	lb := New(fs, "/ohm_log.txt")

	rec := Record{Op: "Power", Inputs: []Quantity{Fixed6("V", 1, "V")}, Outputs: []Quantity{Fixed6("P", 1, "W")}}
	if err := lb.Append(rec); err == nil {
		t.Error("Append() on read-only fs should fail")
	}
}
