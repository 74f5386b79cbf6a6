package carrot

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/carrot-quest/internal/core"
)

// ErrInvalidTransition is returned when a trigger is not allowed in the current phase.
var ErrInvalidTransition = errors.New("carrot: invalid phase transition")

// Trigger is an input to the phase machine.
type Trigger int

const (
	TriggerStart Trigger = iota
	TriggerPause
	TriggerResume
	TriggerFail
	TriggerRestart
	TriggerMenu
)

// String returns the trigger name.
func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "start"
	case TriggerPause:
		return "pause"
	case TriggerResume:
		return "resume"
	case TriggerFail:
		return "fail"
	case TriggerRestart:
		return "restart"
	case TriggerMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// transitions lists every legal (phase, trigger) pair.
var transitions = map[core.Phase]map[Trigger]core.Phase{
	core.PhaseMenu: {
		TriggerStart: core.PhasePlaying,
	},
	core.PhasePlaying: {
		TriggerPause: core.PhasePaused,
		TriggerFail:  core.PhaseGameOver,
	},
	core.PhasePaused: {
		TriggerResume: core.PhasePlaying,
		TriggerMenu:   core.PhaseMenu,
	},
	core.PhaseGameOver: {
		TriggerRestart: core.PhasePlaying,
		TriggerMenu:    core.PhaseMenu,
	},
}

// PhaseListener observes phase changes.
type PhaseListener func(from, to core.Phase)

// PhaseMachine is the single authority over the run phase.
// The zero value starts in the menu.
type PhaseMachine struct {
	phase     core.Phase
	listeners []PhaseListener
}

// Phase returns the current phase.
func (m *PhaseMachine) Phase() core.Phase {
	return m.phase
}

// Can reports whether t is legal in the current phase.
func (m *PhaseMachine) Can(t Trigger) bool {
	_, ok := transitions[m.phase][t]
	return ok
}

// Transition moves to the phase t leads to and notifies listeners.
func (m *PhaseMachine) Transition(t Trigger) error {
	to, ok := transitions[m.phase][t]
	if !ok {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, t, m.phase)
	}
	from := m.phase
	m.phase = to
	for _, l := range m.listeners {
		l(from, to)
	}
	return nil
}

// OnPhaseChange registers a listener.
func (m *PhaseMachine) OnPhaseChange(l PhaseListener) {
	m.listeners = append(m.listeners, l)
}
