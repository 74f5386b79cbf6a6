package carrot

import (
	"sync"

	"github.com/vovakirdan/carrot-quest/internal/config"
	"github.com/vovakirdan/carrot-quest/internal/core"
	"github.com/vovakirdan/carrot-quest/internal/registry"
)

// GameID is the registry and score key for Carrot Quest.
const GameID = "carrot"

// Configuration used by games created through the registry.
var (
	registeredMu  sync.RWMutex
	registeredCfg = config.DefaultCarrotConfig()
)

// Configure sets the configuration of games created through the registry.
func Configure(cfg config.CarrotConfig) {
	registeredMu.Lock()
	defer registeredMu.Unlock()
	registeredCfg = cfg
}

func registeredConfig() config.CarrotConfig {
	registeredMu.RLock()
	defer registeredMu.RUnlock()
	return registeredCfg
}

// Game adapts a World to the registry.Game interface. It maps input actions
// to intent and phase triggers, and reports phase changes as events.
type Game struct {
	cfg     config.CarrotConfig
	world   *World
	pending []core.Event
}

// New creates a game with the default configuration.
func New() *Game {
	return NewWithConfig(config.DefaultCarrotConfig())
}

// NewWithConfig creates a game with the given configuration.
func NewWithConfig(cfg config.CarrotConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Carrot Quest"
}

// Reset discards the current run and starts a new one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.pending = g.pending[:0]
	g.world = NewWorld(g.cfg, cfg.Seed)
	g.world.OnPhaseChange(func(from, to core.Phase) {
		g.pending = append(g.pending, core.Event{Kind: core.EventPhaseChange, From: from, To: to})
	})
	_ = g.world.Transition(TriggerStart)
}

// Step applies this frame's triggers and advances the simulation while playing.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(core.DefaultConfig())
	}
	w := g.world

	switch w.Phase() {
	case core.PhasePlaying:
		if in.Has(core.ActionPause) {
			_ = w.Transition(TriggerPause)
		}
	case core.PhasePaused:
		if in.Has(core.ActionPause) {
			_ = w.Transition(TriggerResume)
		} else if in.Has(core.ActionBack) {
			_ = w.Transition(TriggerMenu)
		}
	case core.PhaseGameOver:
		if in.Has(core.ActionRestart) {
			_ = w.Transition(TriggerRestart)
		} else if in.Has(core.ActionBack) {
			_ = w.Transition(TriggerMenu)
		}
	}

	events := g.drain()
	if w.Phase() == core.PhasePlaying && !in.Has(core.ActionPause) {
		events = append(events, w.Step(intentFrom(in), in.DT)...)
		events = append(events, g.drain()...)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// drain returns and clears the queued phase change events.
func (g *Game) drain() []core.Event {
	if len(g.pending) == 0 {
		return nil
	}
	out := make([]core.Event, len(g.pending))
	copy(out, g.pending)
	g.pending = g.pending[:0]
	return out
}

// intentFrom maps held actions to a direction. Holding both cancels out.
func intentFrom(in core.InputFrame) Intent {
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && !right:
		return IntentLeft
	case right && !left:
		return IntentRight
	default:
		return IntentNone
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{Phase: core.PhaseMenu}
	}
	return core.GameState{
		Score: g.world.Score,
		Phase: g.world.Phase(),
	}
}

// World exposes the running world for inspection.
func (g *Game) World() *World {
	return g.world
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return NewWithConfig(registeredConfig())
	})
}
