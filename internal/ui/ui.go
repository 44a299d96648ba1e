// Package ui renders strfind's terminal output: the benchmark comparison
// table and its styling.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// UseColor decides whether to color output for the given color mode
// ("auto", "always", "never") and destination file.
func UseColor(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// StylesFor returns colored or plain styles depending on UseColor.
func StylesFor(mode string, f *os.File) Styles {
	if UseColor(mode, f) {
		return DefaultStyles()
	}
	return NoColorStyles()
}
