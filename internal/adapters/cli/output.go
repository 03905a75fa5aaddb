// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli renders command results for the terminal and for scripts.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/canaveral-launcher/canaveral/internal/domain"
)

// OutputFormat selects how results are rendered.
type OutputFormat int

const (
	// TextFormat prints aligned tables and messages.
	TextFormat OutputFormat = iota
	// JSONFormat prints indented JSON documents.
	JSONFormat
	// PlainFormat prints one value per line.
	PlainFormat
)

// FormatFromFlags picks the output format for the --json and --plain flags.
// --json wins when both are set.
func FormatFromFlags(jsonFlag, plainFlag bool) OutputFormat {
	switch {
	case jsonFlag:
		return JSONFormat
	case plainFlag:
		return PlainFormat
	default:
		return TextFormat
	}
}

// Printer implements domain.OutputPort on top of an io.Writer.
type Printer struct {
	w      io.Writer
	format OutputFormat
	quiet  bool
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, format OutputFormat, quiet bool) *Printer {
	return &Printer{w: w, format: format, quiet: quiet}
}

// Success prints data as JSON in JSON mode, message otherwise.
// Quiet mode drops the message but never the data.
func (p *Printer) Success(message string, data any) error {
	if p.format == JSONFormat && data != nil {
		return p.json(data)
	}

	return p.Info(message)
}

// Info prints message unless quiet. Empty messages print nothing.
func (p *Printer) Info(message string) error {
	if p.quiet || message == "" {
		return nil
	}

	_, err := fmt.Fprintln(p.w, message)

	return err
}

// Catalog prints the applications of one discovery run.
func (p *Printer) Catalog(result domain.ListResult) error {
	switch p.format {
	case JSONFormat:
		return p.json(result)
	case PlainFormat:
		return p.lines(len(result.Applications), func(i int) string {
			return result.Applications[i].DisplayName
		})
	case TextFormat:
	}

	if len(result.Applications) == 0 {
		if result.Query != "" {
			return p.Info(fmt.Sprintf("No applications match %q", result.Query))
		}

		return p.Info("No applications found")
	}

	table := p.table("NAME", "KIND", "IDENTITY", "PATH")
	for _, app := range result.Applications {
		table.row(app.DisplayName, string(app.Kind), app.Identity, app.LaunchTarget)
	}

	if err := table.flush(); err != nil {
		return err
	}

	return p.Info(fmt.Sprintf("\n%d applications (%s)", result.Total, result.Duration.Round(1e6)))
}

// Roots prints the discovery roots and whether each one exists.
func (p *Printer) Roots(roots []domain.RootInfo) error {
	switch p.format {
	case JSONFormat:
		return p.json(map[string]any{"roots": roots})
	case PlainFormat:
		return p.lines(len(roots), func(i int) string { return roots[i].Path })
	case TextFormat:
	}

	table := p.table("ROOT", "STATUS", "ALLOW-LIST")

	for _, root := range roots {
		status := "missing"
		if root.Exists {
			status = "ok"
		}

		table.row(root.Path, status, strings.Join(root.AllowList, ", "))
	}

	return table.flush()
}

func (p *Printer) json(data any) error {
	encoder := json.NewEncoder(p.w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(data)
}

// lines prints n values, one per line. Scripted output ignores quiet.
func (p *Printer) lines(n int, value func(int) string) error {
	for i := range n {
		if _, err := fmt.Fprintln(p.w, value(i)); err != nil {
			return err
		}
	}

	return nil
}

type textTable struct {
	tw    *tabwriter.Writer
	quiet bool
}

// table starts an aligned table with an underlined header row.
func (p *Printer) table(headers ...string) *textTable {
	t := &textTable{tw: tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0), quiet: p.quiet}

	rule := make([]string, len(headers))
	for i, header := range headers {
		rule[i] = strings.Repeat("-", len(header))
	}

	t.row(headers...)
	t.row(rule...)

	return t
}

func (t *textTable) row(cells ...string) {
	if t.quiet {
		return
	}

	_, _ = fmt.Fprintln(t.tw, strings.Join(cells, "\t"))
}

func (t *textTable) flush() error {
	return t.tw.Flush()
}
