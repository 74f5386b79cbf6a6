package config

import (
	_ "embed"
)

//go:embed defaults/carrot.yaml
var defaultCarrotYAML []byte

// DefaultCarrotConfig returns the default Carrot Quest configuration.
// It mirrors defaults/carrot.yaml and is used when the embedded YAML cannot be parsed.
func DefaultCarrotConfig() CarrotConfig {
	return CarrotConfig{
		Viewport: ViewportConfig{
			Width:           1200,
			Height:          900,
			ScrollThreshold: 0.4,
		},
		Physics: PhysicsConfig{
			JumpForce:     -10.5,
			Gravity:       0.08,
			MoveSpeed:     6,
			MaxFallSpeed:  3.5,
			Acceleration:  0.35,
			Deceleration:  0.15,
			AirResistance: 0.99,
			MaxDT:         1.5,
			FrameRate:     60,
			BounceBoost:   0.15,
			BounceDamping: 0.95,
		},
		Actor: ActorConfig{
			Width:  100,
			Height: 100,
			StartY: 0.375,
		},
		Platforms: PlatformConfig{
			Width:          450,
			Height:         250,
			InitialCount:   6,
			InitialSpacing: 100,
			FirstOffset:    50,
			Jitter:         80,
			LandingAbove:   10,
			LandingBelow:   15,
		},
		Obstacles: ObstacleConfig{
			Width:          50,
			Height:         50,
			InitialCount:   2,
			InitialScreens: 4,
			SpacingFactor:  12,
		},
		Scoring: ScoringConfig{
			ScrollRate: 0.25,
			CreditZone: 0.75,
			CreditBand: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpacingReduction: 6,
				JitterIncrease:   60,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCarrotYAML
}
