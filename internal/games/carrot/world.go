// Package carrot implements Carrot Quest, a vertical platformer.
// A rabbit bounces upward across randomly placed platforms while avoiding
// falling bombs. Height gained and platforms passed add to the score.
package carrot

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/carrot-quest/internal/config"
	"github.com/vovakirdan/carrot-quest/internal/core"
)

// Facing is the direction the actor looks in. It only selects the sprite.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Intent is the held horizontal movement direction.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
)

// EndReason records why a run ended.
type EndReason int

const (
	EndNone EndReason = iota
	EndFell
	EndObstacle
)

// String returns a short description for the game-over view.
func (r EndReason) String() string {
	switch r {
	case EndFell:
		return "You fell!"
	case EndObstacle:
		return "Hit a bomb!"
	default:
		return ""
	}
}

// Actor is the player-controlled rabbit. Y grows downward.
type Actor struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
	Facing Facing
}

// Box returns the actor's collision box.
func (a Actor) Box() core.Box {
	return core.NewBox(a.X, a.Y, a.W, a.H)
}

// Bottom returns the y coordinate of the actor's feet.
func (a Actor) Bottom() float64 {
	return a.Y + a.H
}

// Platform is a landing surface. IDs are unique within a run and start at 1.
type Platform struct {
	ID   int
	X, Y float64
	W, H float64
}

// Box returns the platform's bounding box.
func (p Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Obstacle is a bomb. Touching one ends the run.
type Obstacle struct {
	X, Y float64
	W, H float64
}

// Box returns the obstacle's collision box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// World holds the whole run state. It is owned by a single driver and
// mutated only through Step and Transition.
type World struct {
	Actor     Actor
	Platforms []Platform // Front is the lowest surviving platform
	Obstacles []Obstacle // Front is the lowest surviving obstacle
	Score     int
	// LastCredited is the ID of the last platform that earned a point (0 = none).
	LastCredited int
	Reason       EndReason
	Frames       int

	cfg        config.CarrotConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	machine    PhaseMachine
	nextID     int
}

// NewWorld creates a world in the menu phase. Call Transition(TriggerStart)
// to lay out the first run.
func NewWorld(cfg config.CarrotConfig, seed int64) *World {
	return &World{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
		Platforms:  make([]Platform, 0, cfg.Platforms.InitialCount),
		Obstacles:  make([]Obstacle, 0, cfg.Obstacles.InitialCount),
	}
}

// Config returns the constants the world runs with.
func (w *World) Config() config.CarrotConfig {
	return w.cfg
}

// DifficultyLevel returns the current difficulty level (0.0 to 1.0).
// ok is false while progression is disabled.
func (w *World) DifficultyLevel() (level float64, ok bool) {
	if !w.difficulty.IsEnabled() {
		return 0, false
	}
	return w.difficulty.Level(w.Score, w.Frames), true
}

// Phase returns the current run phase.
func (w *World) Phase() core.Phase {
	return w.machine.Phase()
}

// OnPhaseChange registers a listener called after every phase change.
func (w *World) OnPhaseChange(l PhaseListener) {
	w.machine.OnPhaseChange(l)
}

// Transition applies a phase trigger. Start and restart lay out a fresh run
// before the listeners are notified.
func (w *World) Transition(t Trigger) error {
	if (t == TriggerStart || t == TriggerRestart) && w.machine.Can(t) {
		w.reset()
	}
	return w.machine.Transition(t)
}

// reset rebuilds the actor and both sequences for a new run.
func (w *World) reset() {
	vw, vh := w.cfg.Viewport.Width, w.cfg.Viewport.Height
	ac := w.cfg.Actor

	w.Actor = Actor{
		X:      vw/2 - ac.Width/2,
		Y:      vh*ac.StartY - ac.Height,
		W:      ac.Width,
		H:      ac.Height,
		VY:     w.cfg.Physics.JumpForce,
		Facing: FacingRight,
	}
	w.Score = 0
	w.LastCredited = 0
	w.Reason = EndNone
	w.Frames = 0
	w.nextID = 0

	w.placePlatforms()
	w.placeObstacles()
}

// placePlatforms builds the initial platform stack: one fixed platform near
// the bottom edge, then evenly spaced ones at random x.
func (w *World) placePlatforms() {
	pc := w.cfg.Platforms
	vw, vh := w.cfg.Viewport.Width, w.cfg.Viewport.Height

	w.Platforms = w.Platforms[:0]
	if pc.InitialCount <= 0 {
		return
	}
	w.Platforms = append(w.Platforms, w.newPlatform(vw/2, vh-pc.FirstOffset))
	for i := 1; i < pc.InitialCount; i++ {
		x := w.randomX(pc.Width)
		y := vh - pc.InitialSpacing*float64(i) - pc.Height + 5
		w.Platforms = append(w.Platforms, w.newPlatform(x, y))
	}
}

// placeObstacles builds the initial, widely spaced obstacles.
func (w *World) placeObstacles() {
	oc := w.cfg.Obstacles
	vh := w.cfg.Viewport.Height

	w.Obstacles = w.Obstacles[:0]
	for i := 0; i < oc.InitialCount; i++ {
		x := w.randomX(oc.Width)
		y := vh - vh*oc.InitialScreens*float64(i) - oc.Height
		w.Obstacles = append(w.Obstacles, Obstacle{X: x, Y: y, W: oc.Width, H: oc.Height})
	}
}

// newPlatform allocates the next platform ID.
func (w *World) newPlatform(x, y float64) Platform {
	w.nextID++
	return Platform{
		ID: w.nextID,
		X:  x,
		Y:  y,
		W:  w.cfg.Platforms.Width,
		H:  w.cfg.Platforms.Height,
	}
}

// randomX returns a whole-unit x so that an element of the given width fits the viewport.
func (w *World) randomX(width float64) float64 {
	span := w.cfg.Viewport.Width - width
	if span <= 0 {
		return 0
	}
	return math.Floor(w.rng.Float64() * span)
}
