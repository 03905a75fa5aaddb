// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/canaveral-launcher/canaveral/internal/tui/styles"
)

const (
	helpMaxWidth  = 80
	helpMinWidth  = 20
	helpMinHeight = 5
	// helpChrome is the overlay border and padding.
	helpChrome = 4
)

const helpMarkdown = `# Canaveral

Type to search. The search box always has focus.

## Keys

| Key | Action |
|-----|--------|
| ← → | Previous / next application, crossing page edges |
| ↑ ↓ | Previous / next row, wrapping around |
| ⇧← ⇧→, PgUp PgDn | Previous / next page |
| Tab | Next application |
| Enter | Launch the selected application |
| Esc | Quit |
| ? | Toggle this help (when the search box is empty) |

## Mouse

- Click an application to launch it.
- Click the ‹ › arrows below the grid to change page.
- Swipe horizontally on a trackpad, or drag across the grid, to change page.

## Preferences

Run ` + "`canaveral prefs`" + ` or edit ` + "`config.toml`" + `. A running launcher
picks up saved changes immediately, and on SIGHUP.
`

// HelpKeyMap defines key bindings for the help overlay.
type HelpKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Close key.Binding
}

// DefaultHelpKeyMap returns the default key bindings.
func DefaultHelpKeyMap() HelpKeyMap {
	return HelpKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q", "?", "f1"),
			key.WithHelp("esc", "close help"),
		),
	}
}

// Help is the keyboard and mouse reference overlay, rendered from markdown.
type Help struct {
	styles   *styles.Styles
	viewport viewport.Model
	keyMap   HelpKeyMap
	width    int
	height   int
	rendered string
}

// NewHelp creates the help overlay.
func NewHelp(styleConfig *styles.Styles) *Help {
	help := &Help{
		styles:   styleConfig,
		viewport: viewport.New(helpMaxWidth, defaultHeight),
		keyMap:   DefaultHelpKeyMap(),
		width:    defaultWidth,
		height:   defaultHeight,
	}

	help.updateContent()

	return help
}

// Init initializes the help model.
func (m *Help) Init() tea.Cmd {
	return nil
}

// Update handles messages for the Help model.
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m *Help) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateContent()

		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keyMap.Close) {
			return m, func() tea.Msg { return HelpClosedMsg{} }
		}
	}

	var cmd tea.Cmd

	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// View renders the overlay.
func (m *Help) View() string {
	return m.styles.Overlay.Render(m.viewport.View())
}

// Content returns the rendered help text.
func (m *Help) Content() string {
	return m.rendered
}

func (m *Help) updateContent() {
	width := max(helpMinWidth, min(helpMaxWidth, m.width-helpChrome))
	height := max(helpMinHeight, m.height-helpChrome)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-2),
	)
	if err == nil {
		m.rendered, err = renderer.Render(helpMarkdown)
	}

	if err != nil {
		m.rendered = helpMarkdown
	}

	m.rendered = strings.TrimSpace(m.rendered)
	m.viewport.Width = width
	m.viewport.Height = height
	m.viewport.SetContent(m.rendered)
}
