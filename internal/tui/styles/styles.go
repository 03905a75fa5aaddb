// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

// Package styles holds the lipgloss styles shared by the launcher views.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles groups the launcher's palette and the styles derived from it.
type Styles struct {
	Accent lipgloss.Color
	Glow   lipgloss.Color
	Alert  lipgloss.Color
	Dim    lipgloss.Color

	SearchBox     lipgloss.Style
	Cell          lipgloss.Style
	SelectedCell  lipgloss.Style
	Glyph         lipgloss.Style
	Indicator     lipgloss.Style
	Arrow         lipgloss.Style
	ArrowDisabled lipgloss.Style
	Overlay       lipgloss.Style

	MutedText  lipgloss.Style
	AccentText lipgloss.Style
	StatusText lipgloss.Style
	HintKey    lipgloss.Style
	HelpKey    lipgloss.Style
}

// New returns the launcher styles. Colors adapt to light and dark terminals.
func New() *Styles {
	accent := lipgloss.Color("#ff8c42") // launch orange
	glow := lipgloss.Color("#4ecdc4")   // teal
	alert := lipgloss.Color("#ffd166")  // amber
	dim := lipgloss.Color("#6c7086")    // slate

	text := lipgloss.AdaptiveColor{Light: "#2b2d42", Dark: "#edf2f4"}
	onAccent := lipgloss.Color("#1b1b2f")

	framed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1)

	return &Styles{
		Accent: accent,
		Glow:   glow,
		Alert:  alert,
		Dim:    dim,

		SearchBox: framed,
		Overlay:   framed.BorderForeground(glow),

		Cell:         lipgloss.NewStyle().Foreground(text),
		SelectedCell: lipgloss.NewStyle().Background(accent).Foreground(onAccent).Bold(true),
		Glyph:        lipgloss.NewStyle().Foreground(glow),

		Indicator:     lipgloss.NewStyle().Foreground(accent),
		Arrow:         lipgloss.NewStyle().Foreground(accent).Bold(true),
		ArrowDisabled: lipgloss.NewStyle().Foreground(dim),

		MutedText:  lipgloss.NewStyle().Foreground(dim),
		AccentText: lipgloss.NewStyle().Foreground(accent),
		StatusText: lipgloss.NewStyle().Foreground(alert),
		HintKey:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		HelpKey:    lipgloss.NewStyle().Foreground(alert).Bold(true),
	}
}
