// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package grid

// Pagination splits an ordered list into pages. In search mode the whole
// filtered list is one page.
type Pagination struct {
	count     int
	layout    LayoutContext
	searching bool
}

// NewPagination creates the model for count entries.
func NewPagination(count int, layout LayoutContext, searching bool) Pagination {
	return Pagination{
		count:     max(0, count),
		layout:    layout.Normalize(),
		searching: searching,
	}
}

// Count is the number of entries in the list being paged.
func (p Pagination) Count() int { return p.count }

// Layout is the normalized grid geometry.
func (p Pagination) Layout() LayoutContext { return p.layout }

// Columns is the normalized column count.
func (p Pagination) Columns() int { return p.layout.Columns }

// Searching reports whether paging is bypassed.
func (p Pagination) Searching() bool { return p.searching }

// PageSize is the number of entries per page.
func (p Pagination) PageSize() int {
	if p.searching {
		return max(1, p.count)
	}

	return p.layout.PageSize()
}

// TotalPages is always at least 1.
func (p Pagination) TotalPages() int {
	if p.searching || p.count == 0 {
		return 1
	}

	size := p.PageSize()

	return (p.count + size - 1) / size
}

// PageBounds returns the half-open range [start, end) of page. Out of
// range pages yield an empty range.
func (p Pagination) PageBounds(page int) (start, end int) {
	if page < 0 || page >= p.TotalPages() {
		return 0, 0
	}

	size := p.PageSize()
	start = min(page*size, p.count)
	end = min(start+size, p.count)

	return start, end
}

// VisibleCount is the number of entries shown on page.
func (p Pagination) VisibleCount(page int) int {
	start, end := p.PageBounds(page)

	return end - start
}

// HasPrevious reports whether a page exists before page.
func (p Pagination) HasPrevious(page int) bool {
	return page > 0
}

// HasNext reports whether a page exists after page.
func (p Pagination) HasNext(page int) bool {
	return page < p.TotalPages()-1
}

// Clamp restores the Selection invariants: the page is in range and the
// index addresses an entry of the visible list, or is 0 when it is empty.
func (p Pagination) Clamp(s Selection) Selection {
	s.Page = min(max(0, s.Page), p.TotalPages()-1)

	visible := p.VisibleCount(s.Page)
	if visible == 0 {
		s.Index = 0
	} else {
		s.Index = min(max(0, s.Index), visible-1)
	}

	return s
}

// PageSlice returns the entries of page, or nil when page is out of range.
func PageSlice[T any](items []T, p Pagination, page int) []T {
	start, end := p.PageBounds(page)
	if start == end || end > len(items) {
		return nil
	}

	return items[start:end]
}

// IndexToRowCol converts a page-relative index to grid coordinates.
func IndexToRowCol(index, columns int) (row, col int) {
	columns = max(1, columns)

	return index / columns, index % columns
}

// RowColToIndex converts grid coordinates back to an index, clamped to the
// last populated slot of a list of count entries.
func RowColToIndex(row, col, columns, count int) int {
	columns = max(1, columns)

	return max(0, min(row*columns+col, count-1))
}
