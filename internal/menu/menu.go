// Package menu implements the interactive calculator session: the main menu
// loop, the per-module submenu flows, and the back-to-menu prompt.
package menu

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/hpungsan/ohm/internal/errors"
	"github.com/hpungsan/ohm/internal/logbook"
	"github.com/hpungsan/ohm/internal/parse"
	"github.com/hpungsan/ohm/internal/prompt"
)

// ErrInputClosed reports that input ended at the back-to-menu prompt, where
// the session cannot continue. The process exits with a nonzero status.
var ErrInputClosed = stderrors.New("input closed")

// Choice identifies a main-menu entry.
type Choice int64

const (
	ChoiceVoltageDivider Choice = 1
	ChoiceResistorTools  Choice = 2
	ChoiceReactance      Choice = 3
	ChoiceRCTransient    Choice = 4
	ChoicePower          Choice = 5
	ChoiceViewLog        Choice = 6
	ChoiceQuit           Choice = 7
)

// Session runs the menu loop over an input/output stream pair.
type Session struct {
	in  *prompt.Prompter
	out io.Writer
	log *logbook.Logbook
}

// NewSession creates a Session reading from r, writing to w, and appending
// completed calculations to log.
func NewSession(r io.Reader, w io.Writer, log *logbook.Logbook) *Session {
	return &Session{
		in:  prompt.New(r, w),
		out: w,
		log: log,
	}
}

// Run executes the main menu loop until the user quits or input ends.
// End of input at the menu itself is a clean quit; end of input at the
// back prompt returns ErrInputClosed.
func (s *Session) Run() error {
	for {
		s.printMenu()

		line, ok := s.in.Line("")
		if !ok {
			return nil
		}

		v, ok := parse.Int64(line, 10)
		if !ok {
			fmt.Fprintln(s.out, "Invalid choice.")
			continue
		}

		switch Choice(v) {
		case ChoiceVoltageDivider:
			s.voltageDivider()
		case ChoiceResistorTools:
			s.resistorTools()
		case ChoiceReactance:
			s.reactance()
		case ChoiceRCTransient:
			s.rcTransient()
		case ChoicePower:
			s.power()
		case ChoiceViewLog:
			s.log.View(s.out)
		case ChoiceQuit:
			fmt.Fprintln(s.out, "Bye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice.")
			continue
		}

		if err := s.waitBack(); err != nil {
			return err
		}
	}
}

func (s *Session) printMenu() {
	fmt.Fprint(s.out, "\n====== EEE Helper CLI ======\n")
	fmt.Fprint(s.out, "1) Voltage divider (Vout)\n")
	fmt.Fprint(s.out, "2) Resistor tools (series / parallel-2)\n")
	fmt.Fprint(s.out, "3) AC reactance & resonance\n")
	fmt.Fprintf(s.out, "4) RC transient (tau / %%charge / %%discharge)\n")
	fmt.Fprint(s.out, "5) Power (P = V * I)\n")
	fmt.Fprint(s.out, "6) View saved log\n")
	fmt.Fprint(s.out, "7) Quit\n")
	fmt.Fprint(s.out, "Select: ")
}

// waitBack blocks until the user enters exactly "b" or "B".
func (s *Session) waitBack() error {
	for {
		line, ok := s.in.Line("\nEnter 'b' to go back to the main menu: ")
		if !ok {
			fmt.Fprintln(s.out, "Input error. Exiting.")
			return ErrInputClosed
		}

		if line == "b" || line == "B" {
			return nil
		}
	}
}

// printErr shows a calculation error to the user. CalcError messages are
// already complete user-visible sentences.
func (s *Session) printErr(err error) {
	if ce, ok := err.(*errors.CalcError); ok {
		fmt.Fprintln(s.out, ce.Message)
		return
	}
	fmt.Fprintln(s.out, err)
}

// record appends to the logbook, ignoring failures: the calculator keeps
// working even if logging does not.
func (s *Session) record(rec logbook.Record) {
	_ = s.log.Append(rec)
}
