// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canaveral-launcher/canaveral/internal/config"
	"github.com/canaveral-launcher/canaveral/internal/domain"
	"github.com/canaveral-launcher/canaveral/internal/tui/styles"
)

func TestIndicatorText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		page  int
		total int
		want  string
	}{
		{"single page", 0, 1, "●"},
		{"first of three", 0, 3, "● ○ ○"},
		{"last of three", 2, 3, "○ ○ ●"},
		{"many pages", 4, 20, "5 / 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, indicatorText(tt.page, tt.total))
		})
	}
}

func TestIconGlyph(t *testing.T) {
	t.Parallel()

	assert.Equal(t, glyphFallback, iconGlyph(domain.CatalogEntry{Kind: domain.KindAppBundle}))
	assert.Equal(t, glyphBundle, iconGlyph(domain.CatalogEntry{Kind: domain.KindAppBundle, IconRef: "AppIcon.icns"}))
	assert.Equal(t, glyphDesktop, iconGlyph(domain.CatalogEntry{Kind: domain.KindDesktopEntry, IconRef: "org.gnome.Maps"}))
}

func TestFitHeight(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\n\n", fitHeight("a", 3))
	assert.Equal(t, "a\nb", fitHeight("a\nb\nc", 2))
	assert.Empty(t, fitHeight("a", 0))
}

func TestLauncherViewFillsScreen(t *testing.T) {
	t.Parallel()

	for _, indicator := range []bool{true, false} {
		cfg := config.Default()
		cfg.Appearance.ShowPageIndicator = indicator

		f := newFixture(t, cfg)
		f.load(t, appNames...)

		view := f.model.View()
		assert.Equal(t, 24, lipgloss.Height(view), "indicator=%v", indicator)
		assert.Contains(t, view, "Atlas")
		assert.NotContains(t, view, "Music", "second page is not drawn")
	}
}

func TestLauncherViewTruncatesLongNames(t *testing.T) {
	t.Parallel()

	f := newFixture(t, config.Default())
	f.load(t, "An Application With A Very Long Name")

	view := f.model.View()
	assert.Contains(t, view, "…")
	assert.NotContains(t, view, "Very Long Name")
}

func TestLauncherSearchScrollsToSelection(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, 20)
	for i := 1; i <= 20; i++ {
		names = append(names, fmt.Sprintf("Tool %02d", i))
	}

	f := newFixture(t, config.Default())
	f.load(t, names...)

	f.typeText("tool")
	require.Len(t, f.model.Visible(), 20)
	assert.Contains(t, f.model.View(), "Tool 01")

	for range 19 {
		f.key(tea.KeyMsg{Type: tea.KeyTab})
	}

	selected, ok := f.model.Selected()
	require.True(t, ok)
	assert.Equal(t, "Tool 20", selected.DisplayName)

	view := f.model.View()
	assert.Contains(t, view, "Tool 20")
	assert.Contains(t, view, "Tool 13")
	assert.NotContains(t, view, "Tool 01")
	assert.Contains(t, view, "20 matches")
}

func TestRenderFooter(t *testing.T) {
	t.Parallel()

	s := styles.New()
	actions := []FooterAction{{Key: "enter", Action: "Launch"}, {Key: "esc", Action: "Quit"}}

	withHelp := RenderFooter(s, 80, actions, true)
	assert.Contains(t, withHelp, "enter Launch")
	assert.Contains(t, withHelp, "? Help")

	assert.NotContains(t, RenderFooter(s, 80, actions, false), "Help")
	assert.LessOrEqual(t, lipgloss.Width(RenderFooter(s, 10, actions, true)), 10)
	assert.Contains(t, RenderStatus(s, 80, "Failed to launch Atlas"), "Failed to launch Atlas")
}
