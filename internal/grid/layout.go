// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

// Package grid holds the paged icon grid model and the navigation state
// machine. Everything here is pure; the presentation layer owns the only
// mutable Selection and feeds it through Reduce.
package grid

// LayoutContext is the grid geometry for the current screen.
type LayoutContext struct {
	Columns     int
	RowsPerPage int
}

// Normalize guards against degenerate geometry; both fields are at least 1.
func (l LayoutContext) Normalize() LayoutContext {
	return LayoutContext{
		Columns:     max(1, l.Columns),
		RowsPerPage: max(1, l.RowsPerPage),
	}
}

// PageSize is the number of cells on one page.
func (l LayoutContext) PageSize() int {
	n := l.Normalize()

	return n.Columns * n.RowsPerPage
}

// Geometry describes how grid cells are laid out on screen, in terminal
// cells.
type Geometry struct {
	CellWidth  int
	CellHeight int
	Gap        int
	// Padding is applied left and right of the grid.
	Padding int
	// Chrome is the vertical space taken by everything except the grid.
	Chrome int
}

// FitLayout computes how many columns and rows of cells fit on a screen of
// width x height.
func FitLayout(width, height int, g Geometry) LayoutContext {
	colStride := max(1, g.CellWidth+g.Gap)
	rowStride := max(1, g.CellHeight+g.Gap)

	return LayoutContext{
		Columns:     (width - 2*g.Padding + g.Gap) / colStride,
		RowsPerPage: (height - g.Chrome + g.Gap) / rowStride,
	}.Normalize()
}
