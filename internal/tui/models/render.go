// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/canaveral-launcher/canaveral/internal/config"
	"github.com/canaveral-launcher/canaveral/internal/domain"
	"github.com/canaveral-launcher/canaveral/internal/grid"
)

// Screen layout, in terminal cells. From the top: the bordered search box,
// a spacer line, the grid, the page indicator and the footer.
const (
	defaultWidth    = 80
	defaultHeight   = 24
	searchHeight    = 3
	gridTop         = searchHeight + 1
	footerHeight    = 1
	indicatorHeight = 1
	cellGap         = 1
	gridPadding     = 2
	// searchChrome is the width taken by the search box border, padding
	// and prompt.
	searchChrome = 10
	// maxDots is the page count above which the indicator shows numbers.
	maxDots = 12
)

const (
	glyphBundle   = "◼"
	glyphDesktop  = "◆"
	glyphFallback = "◇"
)

type arrow int

const (
	arrowNone arrow = iota
	arrowPrevious
	arrowNext
)

func chrome(appearance config.Appearance) int {
	height := gridTop + footerHeight
	if appearance.ShowPageIndicator {
		height += indicatorHeight
	}

	return height
}

func geometry(appearance config.Appearance) grid.Geometry {
	return grid.Geometry{
		CellWidth:  appearance.IconSize,
		CellHeight: appearance.CellHeight,
		Gap:        cellGap,
		Padding:    gridPadding,
		Chrome:     chrome(appearance),
	}
}

// screen is where things are drawn, shared by View and mouse hit testing.
type screen struct {
	width      int
	height     int
	layout     grid.LayoutContext
	cellWidth  int
	cellHeight int
	left       int
	indicator  bool
}

func (m *Launcher) screen() screen {
	cols := m.layout.Columns
	gridWidth := cols*m.cfg.Appearance.IconSize + (cols-1)*cellGap

	return screen{
		width:      m.width,
		height:     m.height,
		layout:     m.layout,
		cellWidth:  m.cfg.Appearance.IconSize,
		cellHeight: m.cfg.Appearance.CellHeight,
		left:       max(0, (m.width-gridWidth)/2),
		indicator:  m.cfg.Appearance.ShowPageIndicator,
	}
}

func (s screen) bodyHeight() int {
	height := s.height - gridTop - footerHeight
	if s.indicator {
		height -= indicatorHeight
	}

	return max(0, height)
}

func (s screen) indicatorRow() int {
	return s.height - footerHeight - indicatorHeight
}

// firstRow is the first grid row drawn. Browse mode always starts at the
// top of the page; search mode shows the screenful holding the selection.
func (s screen) firstRow(sel grid.Selection, columns int) int {
	if !sel.Searching() {
		return 0
	}

	row, _ := grid.IndexToRowCol(sel.Index, columns)
	rows := s.layout.Normalize().RowsPerPage

	return row / rows * rows
}

// cellIndex returns the visible-list index of the cell under at.
func (s screen) cellIndex(at point, sel grid.Selection, p grid.Pagination) (int, bool) {
	x, y := at.X-s.left, at.Y-gridTop
	if x < 0 || y < 0 {
		return 0, false
	}

	colStride, rowStride := s.cellWidth+cellGap, s.cellHeight+cellGap
	if x%colStride >= s.cellWidth || y%rowStride >= s.cellHeight {
		return 0, false
	}

	row, col := y/rowStride, x/colStride
	if row >= s.layout.RowsPerPage || col >= s.layout.Columns {
		return 0, false
	}

	index := (s.firstRow(sel, s.layout.Columns)+row)*s.layout.Columns + col
	if index >= p.VisibleCount(sel.Page) {
		return 0, false
	}

	return index, true
}

// indicatorText returns the plain page indicator content between the arrows.
func indicatorText(page, total int) string {
	if total > maxDots {
		return fmt.Sprintf("%d / %d", page+1, total)
	}

	dots := make([]string, total)
	for i := range dots {
		dots[i] = "○"
		if i == page {
			dots[i] = "●"
		}
	}

	return strings.Join(dots, " ")
}

// arrowColumns returns the x positions of the previous and next arrows.
func (s screen) arrowColumns(page, total int) (prev, next int) {
	width := runewidth.StringWidth("‹  " + indicatorText(page, total) + "  ›")
	start := max(0, (s.width-width)/2)

	return start, start + width - 1
}

func (s screen) hitArrow(at point, p grid.Pagination, sel grid.Selection) arrow {
	if !s.indicator || sel.Searching() || at.Y != s.indicatorRow() {
		return arrowNone
	}

	prev, next := s.arrowColumns(sel.Page, p.TotalPages())

	switch {
	case abs(at.X-prev) <= 1 && p.HasPrevious(sel.Page):
		return arrowPrevious
	case abs(at.X-next) <= 1 && p.HasNext(sel.Page):
		return arrowNext
	default:
		return arrowNone
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// View renders the launcher.
func (m *Launcher) View() string {
	if m.quitting {
		return ""
	}

	scr := m.screen()
	parts := []string{
		m.styles.SearchBox.Width(max(1, m.width-2)).Render(m.search.View()),
		"",
		fitHeight(m.renderBody(scr), scr.bodyHeight()),
	}

	if scr.indicator {
		parts = append(parts, m.renderIndicator(scr))
	}

	parts = append(parts, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Launcher) renderBody(scr screen) string {
	switch {
	case m.Loading():
		return m.centered(scr, m.spinner.View()+" Discovering applications…")
	case m.catalog.IsEmpty():
		return m.centered(scr, m.styles.MutedText.Render("No applications found"))
	case len(m.filtered) == 0:
		return m.centered(scr, m.styles.MutedText.Render(fmt.Sprintf("No applications match %q", m.selection.Query)))
	}

	return m.renderGrid(scr)
}

func (m *Launcher) centered(scr screen, text string) string {
	return lipgloss.Place(max(1, scr.width), max(1, scr.bodyHeight()), lipgloss.Center, lipgloss.Center, text)
}

func (m *Launcher) renderGrid(scr screen) string {
	columns := scr.layout.Columns
	visible := m.Visible()
	first := scr.firstRow(m.selection, columns) * columns
	last := min(len(visible), first+scr.layout.PageSize())

	var rows []string

	for start := first; start < last; start += columns {
		end := min(last, start+columns)
		cells := make([]string, 0, 2*(end-start))

		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", cellGap))
			}

			cells = append(cells, m.renderCell(visible[i], i == m.selection.Index))
		}

		if len(rows) > 0 {
			for range cellGap {
				rows = append(rows, "")
			}
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.NewStyle().
		PaddingLeft(scr.left).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m *Launcher) renderCell(entry domain.CatalogEntry, selected bool) string {
	width, height := m.cfg.Appearance.IconSize, m.cfg.Appearance.CellHeight

	style := m.styles.Cell
	if selected {
		style = m.styles.SelectedCell
	}

	label := runewidth.Truncate(entry.DisplayName, max(1, width-2), "…")
	content := m.styles.Glyph.Render(iconGlyph(entry)) + "\n" + label

	return style.
		Width(width).
		Height(height).
		MaxHeight(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// iconGlyph stands in for the application icon. Entries without an icon
// get the fallback glyph.
func iconGlyph(entry domain.CatalogEntry) string {
	if !entry.HasIcon() {
		return glyphFallback
	}

	if entry.Kind == domain.KindDesktopEntry {
		return glyphDesktop
	}

	return glyphBundle
}

func (m *Launcher) renderIndicator(scr screen) string {
	if m.Loading() {
		return ""
	}

	if m.selection.Searching() {
		text := fmt.Sprintf("%d matches", len(m.filtered))
		if len(m.filtered) == 1 {
			text = "1 match"
		}

		return lipgloss.PlaceHorizontal(max(1, scr.width), lipgloss.Center, m.styles.MutedText.Render(text))
	}

	p := m.pagination()
	total := p.TotalPages()
	prevCol, _ := scr.arrowColumns(m.selection.Page, total)

	prev, next := m.styles.ArrowDisabled.Render("‹"), m.styles.ArrowDisabled.Render("›")
	if p.HasPrevious(m.selection.Page) {
		prev = m.styles.Arrow.Render("‹")
	}

	if p.HasNext(m.selection.Page) {
		next = m.styles.Arrow.Render("›")
	}

	return strings.Repeat(" ", prevCol) + prev + "  " +
		m.styles.Indicator.Render(indicatorText(m.selection.Page, total)) + "  " + next
}

func (m *Launcher) renderFooter() string {
	if m.status != "" {
		return RenderStatus(m.styles, m.width, m.status)
	}

	return RenderFooter(m.styles, m.width, []FooterAction{
		{Key: "enter", Action: "Launch"},
		{Key: "←↑↓→", Action: "Move"},
		{Key: "⇧←/⇧→", Action: "Page"},
		{Key: "esc", Action: "Quit"},
	}, m.selection.Query == "")
}

// fitHeight pads or cuts block to exactly height lines.
func fitHeight(block string, height int) string {
	if height <= 0 {
		return ""
	}

	lines := strings.Split(block, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}

	for len(lines) < height {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
