// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package grid_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/canaveral-launcher/canaveral/internal/grid"
)

func TestDragSwipe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		dx, dy float64
		want   bool
	}{
		{"short", -5, 0, false},
		{"at threshold", -6, 0, false},
		{"past threshold left", -7, 1, true},
		{"past threshold right", 12, -3, true},
		{"vertical", 8, 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			event, ok := grid.DragSwipe(tt.dx, tt.dy, grid.DragThreshold)
			assert.Equal(t, tt.want, ok)

			if ok {
				assert.Equal(t, grid.Swipe, event.Kind)
				assert.InDelta(t, tt.dx, event.DX, 0)
			}
		})
	}
}

func TestSwipeTracker(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := func(ms int) time.Time { return start.Add(time.Duration(ms) * time.Millisecond) }

	tracker := grid.NewSwipeTracker(0, 0)

	_, fired := tracker.Add(-40, 0, tick(0))
	assert.False(t, fired)

	_, fired = tracker.Add(-40, 0, tick(50))
	assert.False(t, fired)

	event, fired := tracker.Add(-40, 0, tick(100))
	assert.True(t, fired)
	assert.InDelta(t, -120, event.DX, 0)

	_, fired = tracker.Add(-400, 0, tick(150))
	assert.False(t, fired, "one page per gesture")

	// An idle gap starts a new gesture.
	_, fired = tracker.Add(80, 0, tick(1000))
	assert.False(t, fired)

	event, fired = tracker.Add(80, 0, tick(1100))
	assert.True(t, fired)
	assert.InDelta(t, 160, event.DX, 0)
}

func TestSwipeTrackerIdleResetsAccumulation(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tracker := grid.NewSwipeTracker(120, 100*time.Millisecond)

	_, fired := tracker.Add(-100, 0, start)
	assert.False(t, fired)

	_, fired = tracker.Add(-100, 0, start.Add(time.Second))
	assert.False(t, fired)

	tracker.Reset()

	_, fired = tracker.Add(-50, -200, start.Add(2*time.Second))
	assert.False(t, fired)
}
