// Package terminal decides whether output is going to a colour-capable
// terminal.
package terminal

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Info holds the resolved terminal state for the current process.
type Info struct {
	// IsTerminal is true when the output writer is a TTY.
	IsTerminal bool
	// ColorEnabled is true when ANSI colours should be emitted.
	ColorEnabled bool
}

// Detect inspects w and the environment. noColor is the value of the
// --no-color flag; the NO_COLOR convention (https://no-color.org/) and
// TERM=dumb are honoured as well. A writer that is not an *os.File is never
// treated as a terminal.
func Detect(w io.Writer, noColor bool) Info {
	return resolve(IsTerminal(w), noColor, NoColorEnv(), IsDumb())
}

func resolve(isTTY, noColor, envNoColor, dumb bool) Info {
	return Info{
		IsTerminal:   isTTY,
		ColorEnabled: isTTY && !noColor && !envNoColor && !dumb,
	}
}

// IsTerminal reports whether w is a file attached to a TTY.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// NoColorEnv reports whether NO_COLOR is set to any non-empty value.
func NoColorEnv() bool {
	return os.Getenv("NO_COLOR") != ""
}

// IsDumb returns true when the terminal is known to have no capabilities.
func IsDumb() bool {
	return strings.ToLower(os.Getenv("TERM")) == "dumb"
}
