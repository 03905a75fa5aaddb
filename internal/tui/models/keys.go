// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/canaveral-launcher/canaveral/internal/grid"
)

// KeyMap defines key bindings for the launcher grid.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	Tab       key.Binding
	Launch    key.Binding
	Cancel    key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings. Letters are left to the
// search box, which always has focus.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "row up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "row down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+left", "ctrl+left", "pgup"),
			key.WithHelp("⇧←/pgup", "previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("shift+right", "ctrl+right", "pgdown"),
			key.WithHelp("⇧→/pgdn", "next page"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next result"),
		),
		Launch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "launch"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Event maps a key press to a navigation event. Keys that are not
// navigation keys belong to the search box.
func (k KeyMap) Event(msg tea.KeyMsg) (grid.Event, bool) {
	switch {
	case key.Matches(msg, k.PrevPage):
		return grid.Event{Kind: grid.MoveLeft, PageModifier: true}, true
	case key.Matches(msg, k.NextPage):
		return grid.Event{Kind: grid.MoveRight, PageModifier: true}, true
	case key.Matches(msg, k.Left):
		return grid.Event{Kind: grid.MoveLeft}, true
	case key.Matches(msg, k.Right):
		return grid.Event{Kind: grid.MoveRight}, true
	case key.Matches(msg, k.Up):
		return grid.Event{Kind: grid.MoveUp}, true
	case key.Matches(msg, k.Down):
		return grid.Event{Kind: grid.MoveDown}, true
	case key.Matches(msg, k.Tab):
		return grid.Event{Kind: grid.Tab}, true
	case key.Matches(msg, k.Launch):
		return grid.Event{Kind: grid.Confirm}, true
	case key.Matches(msg, k.Cancel), key.Matches(msg, k.ForceQuit):
		return grid.Event{Kind: grid.Cancel}, true
	default:
		return grid.Event{}, false
	}
}
