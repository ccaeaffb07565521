package tui

import "github.com/vovakirdan/tui-platformer/internal/core"

// HoldTracker turns terminal key presses into held actions.
//
// Terminals report presses and auto-repeats but never releases, so a press
// keeps its action held for a fixed number of ticks. Auto-repeat refreshes
// the window while the key stays down; once repeats stop the action expires.
type HoldTracker struct {
	window uint64
	tick   uint64
	until  map[core.Action]uint64
}

// NewHoldTracker creates a tracker that holds each press for window ticks.
func NewHoldTracker(window int) *HoldTracker {
	if window < 1 {
		window = 1
	}
	return &HoldTracker{
		window: uint64(window),
		until:  make(map[core.Action]uint64),
	}
}

// Press starts or refreshes the hold window for a. Pressing one direction
// releases the other.
func (h *HoldTracker) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
	h.until[a] = h.tick + h.window
}

// Held reports whether a counts as held on the current tick.
func (h *HoldTracker) Held(a core.Action) bool {
	return h.tick < h.until[a]
}

// Apply sets every held action on frame.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for a, until := range h.until {
		if h.tick < until {
			frame.Set(a)
		}
	}
}

// Advance moves to the next tick and forgets expired holds.
func (h *HoldTracker) Advance() {
	h.tick++
	for a, until := range h.until {
		if h.tick >= until {
			delete(h.until, a)
		}
	}
}

// Reset releases everything.
func (h *HoldTracker) Reset() {
	clear(h.until)
}
