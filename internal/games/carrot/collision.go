package carrot

// fellOut reports whether the actor dropped below the viewport.
func (w *World) fellOut() bool {
	return w.Actor.Y > w.cfg.Viewport.Height
}

// land bounces the actor off the first platform whose landing band contains
// its feet. Landings are only checked while falling or at rest, and a bounce
// makes vy negative, so at most one landing happens per frame.
func (w *World) land() bool {
	pc := w.cfg.Platforms
	phys := w.cfg.Physics
	bounced := false

	for _, p := range w.Platforms {
		if w.Actor.VY < 0 {
			break
		}
		if !w.Actor.Box().OverlapsX(p.Box()) {
			continue
		}
		center := p.Box().CenterY()
		bottom := w.Actor.Bottom()
		if bottom < center-pc.LandingAbove || bottom > center+pc.LandingBelow {
			continue
		}

		w.Actor.Y = center - w.Actor.H
		w.Actor.VY = phys.JumpForce - phys.BounceBoost*abs(w.Actor.VX)
		w.Actor.VX *= phys.BounceDamping
		bounced = true
	}
	return bounced
}

// hitObstacle reports whether the actor overlaps any obstacle.
// Touching edges do not count.
func (w *World) hitObstacle() bool {
	box := w.Actor.Box()
	for _, o := range w.Obstacles {
		if box.Intersects(o.Box()) {
			return true
		}
	}
	return false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
