// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package grid

import (
	"fmt"
	"math"
)

// EventKind enumerates the navigation vocabulary.
type EventKind int

// Navigation events.
const (
	MoveLeft EventKind = iota
	MoveRight
	MoveUp
	MoveDown
	Tab
	Confirm
	Cancel
	SearchTextChanged
	Swipe
)

func (k EventKind) String() string {
	switch k {
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case MoveUp:
		return "move-up"
	case MoveDown:
		return "move-down"
	case Tab:
		return "tab"
	case Confirm:
		return "confirm"
	case Cancel:
		return "cancel"
	case SearchTextChanged:
		return "search-text-changed"
	case Swipe:
		return "swipe"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is one input for Reduce.
type Event struct {
	Kind EventKind
	// PageModifier turns MoveLeft/MoveRight into whole page moves.
	PageModifier bool
	// Query is the new search text for SearchTextChanged.
	Query string
	// DX and DY are the gesture deltas for Swipe. Negative DX pages forward.
	DX, DY float64
}

// Effect is a side effect requested by a transition.
type Effect int

// Transition effects.
const (
	EffectNone Effect = iota
	EffectLaunch
	EffectQuit
)

// Transition is the result of reducing one event.
type Transition struct {
	State  Selection
	Effect Effect
	// Launch is the index into the full filtered list for EffectLaunch.
	Launch int
}

// Reduce applies event to state. p describes the list state refers to. The
// result always satisfies the Selection invariants; events that do not
// apply are no-ops.
func Reduce(state Selection, event Event, p Pagination) Transition {
	state = p.Clamp(state)
	visible := p.VisibleCount(state.Page)

	switch event.Kind {
	case SearchTextChanged:
		return Transition{State: Selection{Query: event.Query}}

	case Cancel:
		return Transition{State: state, Effect: EffectQuit}

	case Confirm:
		if visible == 0 {
			return Transition{State: state}
		}

		return Transition{State: state, Effect: EffectLaunch, Launch: state.Absolute(p)}

	case MoveLeft:
		if event.PageModifier {
			return Transition{State: previousPage(state, p)}
		}

		return Transition{State: moveLeft(state, p, visible)}

	case MoveRight:
		if event.PageModifier {
			return Transition{State: nextPage(state, p)}
		}

		return Transition{State: moveRight(state, p, visible)}

	case MoveUp:
		return Transition{State: moveVertical(state, p, visible, -1)}

	case MoveDown:
		return Transition{State: moveVertical(state, p, visible, 1)}

	case Tab:
		if visible == 0 {
			return Transition{State: state}
		}

		state.Index = (state.Index + 1) % visible

		return Transition{State: state}

	case Swipe:
		return Transition{State: swipe(state, event, p)}

	default:
		return Transition{State: state}
	}
}

func previousPage(state Selection, p Pagination) Selection {
	if !p.HasPrevious(state.Page) {
		return state
	}

	return Selection{Query: state.Query, Page: state.Page - 1}
}

func nextPage(state Selection, p Pagination) Selection {
	if !p.HasNext(state.Page) {
		return state
	}

	return Selection{Query: state.Query, Page: state.Page + 1}
}

func moveLeft(state Selection, p Pagination, visible int) Selection {
	if visible == 0 {
		return state
	}

	return stepEntry(state, p, -1)
}

func moveRight(state Selection, p Pagination, visible int) Selection {
	if visible == 0 {
		return state
	}

	return stepEntry(state, p, 1)
}

// stepEntry moves delta entries through the whole filtered list, crossing
// page edges and wrapping from the last entry to the first and back.
// Every page but the last is full, so the previous page's last slot is
// its last entry.
func stepEntry(state Selection, p Pagination, delta int) Selection {
	count := p.Count()
	size := p.PageSize()
	target := ((state.Page*size+state.Index+delta)%count + count) % count

	state.Page = target / size
	state.Index = target % size

	return state
}

// moveVertical moves one row by step, wrapping between the first and last
// row and clamping into a short last row.
func moveVertical(state Selection, p Pagination, visible, step int) Selection {
	if visible == 0 {
		return state
	}

	columns := p.Columns()
	row, col := IndexToRowCol(state.Index, columns)
	lastRow, _ := IndexToRowCol(visible-1, columns)

	switch {
	case step < 0 && row == 0:
		row = lastRow
	case step > 0 && row == lastRow:
		row = 0
	default:
		row += step
	}

	state.Index = RowColToIndex(row, col, columns, visible)

	return state
}

func swipe(state Selection, event Event, p Pagination) Selection {
	if state.Searching() || event.DX == 0 || math.Abs(event.DX) <= math.Abs(event.DY) {
		return state
	}

	if event.DX < 0 {
		return nextPage(state, p)
	}

	return previousPage(state, p)
}
