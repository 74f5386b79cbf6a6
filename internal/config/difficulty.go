package config

import "github.com/vovakirdan/carrot-quest/internal/core"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty scaling is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/frames.
func (d *DifficultyManager) Level(score int, frames int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(frames) / maxAt
	default:
		return d.initialLevel
	}

	progress = core.ClampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// ObstacleSpacing returns the gap between generated obstacles, in obstacle heights.
// Returns base unchanged while scaling is disabled.
func (d *DifficultyManager) ObstacleSpacing(base float64, score int, frames int) float64 {
	if !d.cfg.Enabled {
		return base
	}
	result := base - d.Level(score, frames)*d.cfg.Scaling.SpacingReduction
	if result < minObstacleSpacing {
		result = minObstacleSpacing
	}
	return result
}

// PlatformJitter returns the random extra gap range for generated platforms.
// Returns base unchanged while scaling is disabled.
func (d *DifficultyManager) PlatformJitter(base float64, score int, frames int) float64 {
	if !d.cfg.Enabled {
		return base
	}
	return base + d.Level(score, frames)*d.cfg.Scaling.JitterIncrease
}

// Minimum playable obstacle gap in obstacle heights.
const minObstacleSpacing = 4
