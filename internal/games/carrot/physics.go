package carrot

import (
	"math"

	"github.com/vovakirdan/carrot-quest/internal/config"
	"github.com/vovakirdan/carrot-quest/internal/core"
)

// integrate advances the actor by dt nominal frames and wraps it horizontally
// around a viewport of the given width. dt must already be clamped.
func integrate(a *Actor, intent Intent, dt float64, phys config.PhysicsConfig, viewportW float64) {
	// Vertical: gravity capped at terminal velocity, then exponential air drag.
	a.VY = math.Min(a.VY+phys.Gravity*dt, phys.MaxFallSpeed)
	a.VY *= math.Pow(phys.AirResistance, dt)

	// Horizontal: accelerate toward the intent, or decay to a full stop.
	switch intent {
	case IntentLeft:
		a.VX = core.Approach(a.VX, -phys.MoveSpeed, phys.Acceleration)
		a.Facing = FacingLeft
	case IntentRight:
		a.VX = core.Approach(a.VX, phys.MoveSpeed, phys.Acceleration)
		a.Facing = FacingRight
	default:
		a.VX = core.Approach(a.VX, 0, phys.Deceleration)
	}

	a.X += a.VX * dt
	wrap(a, viewportW)

	a.Y += a.VY * dt
}

// wrap moves an actor that left the viewport completely to the opposite edge.
func wrap(a *Actor, viewportW float64) {
	if a.X+a.W < 0 {
		a.X = viewportW
	} else if a.X > viewportW {
		a.X = -a.W
	}
}

// clampDT bounds the physics step on slow frames.
func clampDT(dt, maxDT float64) float64 {
	if dt > maxDT {
		return maxDT
	}
	return dt
}
