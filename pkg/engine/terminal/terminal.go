// Package terminal answers questions about the output terminal: whether
// stdout is one and how wide it is.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Size assumed when stdout is redirected or its size cannot be read
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

func stdout() int {
	return int(os.Stdout.Fd())
}

// GetSize returns the columns and rows of the terminal on stdout, or
// DefaultWidth x DefaultHeight when stdout is not a terminal.
func GetSize() (width, height int) {
	w, h, err := term.GetSize(stdout())
	if err != nil || w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return w, h
}

// GetWidth returns the column count from GetSize
func GetWidth() int {
	w, _ := GetSize()
	return w
}

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(stdout())
}

// FitsWidth reports whether a map line of the given column count fits on
// one terminal line. Redirected output never wraps, so it always fits.
func FitsWidth(columns int) bool {
	if !IsTerminal() {
		return true
	}
	return columns <= GetWidth()
}
