package cilisp

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

// FatalError is returned for conditions that must terminate the program.
// The core never exits by itself; the host decides.
type FatalError struct {
	Msg string
}

func (e *FatalError) Error() string {
	return e.Msg
}

func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}

// Reporter prints diagnostics.
type Reporter struct {
	out   io.Writer
	color bool
	count int
}

func NewReporter(out io.Writer, mode string) *Reporter {
	return &Reporter{
		out:   out,
		color: useColor(out, mode),
	}
}

func useColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *Reporter) print(s string) {
	if r.color {
		fmt.Fprint(r.out, colorRed+s+colorReset)
	} else {
		fmt.Fprint(r.out, s)
	}
}

// Warn reports a recoverable problem. Evaluation continues.
func (r *Reporter) Warn(format string, args ...interface{}) {
	r.count++
	r.print(fmt.Sprintf("WARNING: "+format+"\n", args...))
}

// Fatal reports an unrecoverable problem and returns it as a *FatalError.
func (r *Reporter) Fatal(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	r.print("\nERROR: " + msg + "\nExiting...\n")
	return &FatalError{Msg: msg}
}

// Count returns the number of warnings reported so far.
func (r *Reporter) Count() int {
	return r.count
}
