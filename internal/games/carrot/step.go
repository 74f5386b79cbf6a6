package carrot

import "github.com/vovakirdan/carrot-quest/internal/core"

// Step advances the run by one display frame of dt nominal frames.
// It is a no-op outside the playing phase. The order is fixed: integrate,
// scroll, fall-out, landing, obstacles, recycling, scoring. Ending the run
// skips everything after the check that ended it.
func (w *World) Step(intent Intent, dt float64) []core.Event {
	if w.Phase() != core.PhasePlaying {
		return nil
	}

	var events []core.Event
	dt = clampDT(dt, w.cfg.Physics.MaxDT)
	w.Frames++

	integrate(&w.Actor, intent, dt, w.cfg.Physics, w.cfg.Viewport.Width)
	w.scroll()

	if w.fellOut() {
		w.end(EndFell)
		return events
	}

	if w.land() {
		events = append(events, core.Event{Kind: core.EventBounce})
	}

	if w.hitObstacle() {
		w.end(EndObstacle)
		return events
	}

	w.recycle()
	w.credit()
	return events
}

// end records the reason and moves to game over.
func (w *World) end(reason EndReason) {
	w.Reason = reason
	// Step only runs while playing, where fail is always legal.
	_ = w.machine.Transition(TriggerFail)
}
