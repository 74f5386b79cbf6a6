package tui

import (
	"time"

	"github.com/vovakirdan/carrot-quest/internal/core"
)

// Terminals deliver key presses and auto-repeats but no releases. A press
// keeps the direction held for a window; repeats of the same key extend it.
// The first window spans the usual OS repeat delay.
const (
	firstHoldWindow  = 550 * time.Millisecond
	repeatHoldWindow = 120 * time.Millisecond
)

// intentTracker turns discrete key presses into a held horizontal direction.
type intentTracker struct {
	dir   core.Action
	until time.Time
}

// Press records a left or right key press at now.
func (t *intentTracker) Press(dir core.Action, now time.Time) {
	if dir != core.ActionLeft && dir != core.ActionRight {
		return
	}
	if dir == t.dir && now.Before(t.until) {
		if ext := now.Add(repeatHoldWindow); ext.After(t.until) {
			t.until = ext
		}
		return
	}
	t.dir = dir
	t.until = now.Add(firstHoldWindow)
}

// Stop releases the held direction immediately.
func (t *intentTracker) Stop() {
	t.dir = core.ActionNone
	t.until = time.Time{}
}

// Held returns the direction held at now, or ActionNone.
func (t *intentTracker) Held(now time.Time) core.Action {
	if t.dir == core.ActionNone || !now.Before(t.until) {
		return core.ActionNone
	}
	return t.dir
}
