// Package prompt reads validated numeric input interactively.
//
// Invalid entries are answered with a retry message and re-read in a loop;
// end of input aborts silently so unattended runs (tests feeding EOF) exit
// the current operation instead of spinning.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hpungsan/ohm/internal/parse"
)

// Prompter reads lines from an input stream and writes prompts to an output
// stream. It holds no other state.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// New creates a Prompter over the given streams.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		r: bufio.NewReader(r),
		w: w,
	}
}

// Line displays the prompt (if non-empty) and reads one line.
// Trailing line-terminator characters are stripped.
// Returns false when no more input is available.
func (p *Prompter) Line(promptText string) (string, bool) {
	if promptText != "" {
		fmt.Fprint(p.w, promptText)
	}

	line, err := p.r.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

// Int re-prompts until the user enters a valid integer.
// Returns false when input is exhausted before a valid value is read.
func (p *Prompter) Int(promptText string) (int64, bool) {
	for {
		line, ok := p.Line(promptText)
		if !ok {
			return 0, false
		}

		if v, ok := parse.Int64(line, 10); ok {
			return v, true
		}
		fmt.Fprintln(p.w, "Invalid integer. Try again.")
	}
}

// Float re-prompts until the user enters a valid floating-point number.
// Returns false when input is exhausted before a valid value is read.
func (p *Prompter) Float(promptText string) (float64, bool) {
	for {
		line, ok := p.Line(promptText)
		if !ok {
			return 0, false
		}

		if v, ok := parse.Float(line); ok {
			return v, true
		}
		fmt.Fprintln(p.w, "Invalid number. Try again.")
	}
}
