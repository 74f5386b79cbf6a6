package carrot

import "math"

// scroll keeps the actor at or below the threshold line by moving the world
// down instead. Returns the adjustment applied.
func (w *World) scroll() float64 {
	threshold := w.cfg.ScrollThresholdY()
	if w.Actor.Y >= threshold {
		return 0
	}

	adj := threshold - w.Actor.Y
	w.Actor.Y = threshold
	for i := range w.Platforms {
		w.Platforms[i].Y += adj
	}
	for i := range w.Obstacles {
		w.Obstacles[i].Y += adj
	}

	// Fractions are dropped every frame.
	w.Score += int(math.Floor(adj * w.cfg.Scoring.ScrollRate))
	return adj
}

// recycle replaces every element that scrolled past the bottom edge with a new
// one above the current top. A single large scroll can push out several.
func (w *World) recycle() {
	vh := w.cfg.Viewport.Height

	for len(w.Platforms) > 0 && w.Platforms[0].Y >= vh {
		w.Platforms = append(w.Platforms[1:], w.spawnPlatform())
	}
	for len(w.Obstacles) > 0 && w.Obstacles[0].Y >= vh {
		w.Obstacles = append(w.Obstacles[1:], w.spawnObstacle())
	}
}

// spawnPlatform creates a platform above the current topmost one.
func (w *World) spawnPlatform() Platform {
	pc := w.cfg.Platforms
	top := w.Platforms[len(w.Platforms)-1]

	x := w.randomX(pc.Width)
	jitter := w.difficulty.PlatformJitter(pc.Jitter, w.Score, w.Frames)
	y := top.Y - pc.Height - w.rng.Float64()*jitter
	return w.newPlatform(x, y)
}

// spawnObstacle creates an obstacle above the current topmost one.
func (w *World) spawnObstacle() Obstacle {
	oc := w.cfg.Obstacles
	top := w.Obstacles[len(w.Obstacles)-1]

	x := w.randomX(oc.Width)
	spacing := w.difficulty.ObstacleSpacing(oc.SpacingFactor, w.Score, w.Frames)
	return Obstacle{
		X: x,
		Y: top.Y - oc.Height*spacing,
		W: oc.Width,
		H: oc.Height,
	}
}
