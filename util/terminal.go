package util

import (
	"io"

	"golang.org/x/term"
)

// DefaultLineSize is the help line size used when the output is not a terminal
const DefaultLineSize = 79

// Terminal abstracts the terminal queries used for help layout and colored output
type Terminal interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

// DefaultTerminal implements Terminal with golang.org/x/term
type DefaultTerminal struct{}

// IsTerminal checks if fd is attached to a terminal
func (DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// GetSize returns the dimensions of the terminal attached to fd
func (DefaultTerminal) GetSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

type fder interface {
	Fd() uintptr
}

// IsTerminal returns true when w is a file attached to a terminal
func IsTerminal(w io.Writer, t Terminal) bool {
	if t == nil {
		t = DefaultTerminal{}
	}
	f, ok := w.(fder)
	if !ok {
		return false
	}

	return t.IsTerminal(int(f.Fd()))
}

// LineSize returns the usable line width of w: the terminal width minus one column when w is
// a terminal, DefaultLineSize otherwise
func LineSize(w io.Writer, t Terminal) int {
	if t == nil {
		t = DefaultTerminal{}
	}
	if !IsTerminal(w, t) {
		return DefaultLineSize
	}
	width, _, err := t.GetSize(int(w.(fder).Fd()))
	if err != nil || width <= 1 {
		return DefaultLineSize
	}

	return width - 1
}
