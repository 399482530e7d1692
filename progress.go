package main

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// scanSpinner reports walk progress as a spinner counting visited directories.
// A nil *scanSpinner is valid and does nothing.
type scanSpinner struct {
	bar *progressbar.ProgressBar
	w   io.Writer
}

// newScanSpinner returns nil unless w is a terminal.
func newScanSpinner(w io.Writer, description string) *scanSpinner {
	if !isTerminal(w) {
		return nil
	}
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("dirs"),
		progressbar.OptionShowIts(),
	)
	return &scanSpinner{bar: bar, w: w}
}

func (s *scanSpinner) dir(string) {
	if s == nil {
		return
	}
	s.bar.Add(1)
}

func (s *scanSpinner) done() {
	if s == nil {
		return
	}
	s.bar.Finish()
	fmt.Fprintln(s.w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
