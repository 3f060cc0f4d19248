package style

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// fdWriter is satisfied by *os.File and anything else exposing a
// file descriptor.
type fdWriter interface {
	Fd() uintptr
}

// CanStyle reports whether styled output is appropriate for w:
// a real terminal with color support and NO_COLOR unset.
func CanStyle(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}

	return termenv.ColorProfile() != termenv.Ascii
}

// Header returns s bolded when w is a terminal, byte-identical
// otherwise.
func Header(w io.Writer, s string) string {
	if !CanStyle(w) {
		return s
	}
	return pterm.Bold.Sprint(s)
}
