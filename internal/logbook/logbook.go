// Package logbook appends completed calculations to a flat text file, one
// line per record, and reads them back for viewing. The file is opened per
// operation; nothing is held between calls.
package logbook

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// Logbook is an append-only text sink for calculation records.
type Logbook struct {
	fs   afero.Fs
	path string
}

// New creates a Logbook writing to path on the given filesystem.
func New(fs afero.Fs, path string) *Logbook {
	return &Logbook{fs: fs, path: path}
}

// Append writes one record line. The calculator's correctness does not
// depend on logging succeeding; callers may ignore the returned error.
func (l *Logbook) Append(rec Record) error {
	f, err := l.fs.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = fmt.Fprintln(f, rec.Line())
	return err
}

// View writes the saved log to w. A missing file is not an error: there is
// simply nothing saved yet.
func (l *Logbook) View(w io.Writer) {
	f, err := l.fs.Open(l.path)
	if err != nil {
		fmt.Fprint(w, "\n--- Saved Log ---\nNo saved calculations yet.\n")
		return
	}
	defer f.Close()

	fmt.Fprint(w, "\n--- Saved Log ---\n")
	io.Copy(w, f)
}
