// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/canaveral-launcher/canaveral/internal/tui/styles"
)

// FooterAction is one key hint in the footer bar.
type FooterAction struct {
	Key    string
	Action string
}

// RenderFooter lays out the key hints on a single line clipped to width.
// The help hint is appended only while it can be triggered.
func RenderFooter(s *styles.Styles, width int, actions []FooterAction, helpAvailable bool) string {
	hints := make([]string, 0, len(actions)+1)
	for _, action := range actions {
		hints = append(hints, s.HintKey.Render(action.Key)+" "+s.MutedText.Render(action.Action))
	}

	if helpAvailable {
		hints = append(hints, s.HelpKey.Render("?")+" "+s.MutedText.Render("Help"))
	}

	return footerLine(width, strings.Join(hints, s.MutedText.Render("  ·  ")))
}

// RenderStatus shows a transient message where the hints normally sit.
func RenderStatus(s *styles.Styles, width int, message string) string {
	return footerLine(width, s.StatusText.Render(message))
}

func footerLine(width int, content string) string {
	return lipgloss.NewStyle().
		Inline(true).
		MaxWidth(max(1, width)).
		Render("  " + content)
}
