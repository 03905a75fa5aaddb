// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package grid

import (
	"math"
	"time"
)

// Gesture thresholds.
const (
	// SwipeThreshold is the accumulated scroll distance that turns a
	// horizontal scroll gesture into a page change.
	SwipeThreshold = 120.0
	// DragThreshold is the horizontal mouse drag distance, in columns,
	// that turns a drag into a page change.
	DragThreshold = 6.0
	// SwipeIdle ends a scroll gesture when no delta arrives for this long.
	SwipeIdle = 250 * time.Millisecond
)

// DragSwipe classifies a completed drag. It returns a Swipe event when the
// motion is dominantly horizontal and longer than threshold.
func DragSwipe(dx, dy, threshold float64) (Event, bool) {
	if math.Abs(dx) <= math.Abs(dy) || math.Abs(dx) <= threshold {
		return Event{}, false
	}

	return Event{Kind: Swipe, DX: dx, DY: dy}, true
}

// SwipeTracker accumulates scroll deltas into swipe gestures. A gesture
// ends after an idle gap; each gesture pages at most once.
type SwipeTracker struct {
	threshold float64
	idle      time.Duration

	dx, dy float64
	last   time.Time
	fired  bool
}

// NewSwipeTracker creates a tracker. Non-positive arguments select the
// defaults.
func NewSwipeTracker(threshold float64, idle time.Duration) *SwipeTracker {
	if threshold <= 0 {
		threshold = SwipeThreshold
	}

	if idle <= 0 {
		idle = SwipeIdle
	}

	return &SwipeTracker{threshold: threshold, idle: idle}
}

// Add records a delta observed at now. It returns a Swipe event the first
// time the accumulated horizontal distance of the current gesture reaches
// the threshold.
func (t *SwipeTracker) Add(dx, dy float64, now time.Time) (Event, bool) {
	if t.last.IsZero() || now.Sub(t.last) > t.idle {
		t.Reset()
	}

	t.last = now
	t.dx += dx
	t.dy += dy

	if t.fired || math.Abs(t.dx) < t.threshold || math.Abs(t.dx) <= math.Abs(t.dy) {
		return Event{}, false
	}

	t.fired = true

	return Event{Kind: Swipe, DX: t.dx, DY: t.dy}, true
}

// Reset discards the gesture in progress.
func (t *SwipeTracker) Reset() {
	t.dx, t.dy = 0, 0
	t.fired = false
	t.last = time.Time{}
}
