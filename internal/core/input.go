package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, H, Left arrow - held horizontal intent
	ActionRight          // D, L, Right arrow - held horizontal intent
	ActionPause          // P, Escape - pause/unpause game (edge-triggered)
	ActionRestart        // R key - restart game after game over
	ActionBack           // B - back to menu while paused or after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation frame.
// Held actions (Left, Right) are re-set every frame the key counts as held;
// the rest are set only on the frame they were pressed.
type InputFrame struct {
	Actions map[Action]bool

	// DT is the elapsed time since the previous frame divided by the
	// nominal frame duration. 1.0 means the frame took exactly 1/60s.
	DT float64
}

// NewInputFrame creates an empty input frame with a nominal time step.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		DT:      1,
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
