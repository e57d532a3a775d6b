package cmd

import (
	"io"

	"github.com/fatih/color"
)

// ui prints status lines for the user on stderr.
type ui struct {
	w    io.Writer
	fail *color.Color
	warn *color.Color
	ok   *color.Color
}

func newUI(w io.Writer) *ui {
	return &ui{
		w:    w,
		fail: color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow),
		ok:   color.New(color.FgGreen),
	}
}

func (u *ui) Failf(format string, args ...any) {
	_, _ = u.fail.Fprintf(u.w, "✗ "+format+"\n", args...)
}

func (u *ui) Warnf(format string, args ...any) {
	_, _ = u.warn.Fprintf(u.w, "⚠ "+format+"\n", args...)
}

func (u *ui) Okf(format string, args ...any) {
	_, _ = u.ok.Fprintf(u.w, "✓ "+format+"\n", args...)
}
