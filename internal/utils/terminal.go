package utils

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal. A nil file is not.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
