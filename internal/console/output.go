// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

// Package console prints warnings and errors for the user on stderr.
// Command results go through the output adapter on stdout instead.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const (
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiReset  = "\033[0m"
)

// Notices carries the output mode that decides how stderr messages look.
type Notices struct {
	Plain bool
	JSON  bool
	Color string

	// Stderr defaults to os.Stderr.
	Stderr io.Writer
}

// DefaultOutput is the process wide notice channel configured by the CLI.
var DefaultOutput = &Notices{Color: ColorAuto} //nolint:gochecknoglobals

// SetMode records the --plain and --json flags.
func (n *Notices) SetMode(plain, json bool) {
	n.Plain = plain
	n.JSON = json
}

// SetColor selects auto, always or never. Unknown values mean auto.
func (n *Notices) SetColor(mode string) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ColorAlways:
		n.Color = ColorAlways
	case ColorNever:
		n.Color = ColorNever
	default:
		n.Color = ColorAuto
	}
}

// Warningf reports a problem the launcher recovered from.
func (n *Notices) Warningf(format string, args ...any) {
	n.write("warning: ", "⚠ ", ansiYellow, fmt.Sprintf(format, args...))
}

// Errorf reports why a command failed.
func (n *Notices) Errorf(format string, args ...any) {
	n.write("error: ", "✗ ", ansiRed, fmt.Sprintf(format, args...))
}

func (n *Notices) write(plainPrefix, symbol, color, message string) {
	line := symbol + message
	switch {
	case n.Plain || n.JSON:
		line = plainPrefix + message
	case n.colored():
		line = color + symbol + ansiReset + message
	}

	_, _ = fmt.Fprintln(n.stderr(), line)
}

// colored reports whether ANSI escapes may be written to stderr.
func (n *Notices) colored() bool {
	switch {
	case n.Color == ColorNever:
		return false
	case n.Color == ColorAlways:
		return true
	case os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb":
		return false
	}

	file, ok := n.stderr().(*os.File)

	return ok && term.IsTerminal(int(file.Fd()))
}

func (n *Notices) stderr() io.Writer {
	if n.Stderr != nil {
		return n.Stderr
	}

	return os.Stderr
}
