// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package grid

// Selection is the navigation state: the search text, the page and the
// index into the visible list.
type Selection struct {
	Query string
	Page  int
	Index int
}

// Searching reports whether the selection is in flat filtered-list mode.
func (s Selection) Searching() bool {
	return s.Query != ""
}

// Absolute converts the page-relative index to an index into the full
// filtered list.
func (s Selection) Absolute(p Pagination) int {
	start, _ := p.PageBounds(s.Page)

	return start + s.Index
}
