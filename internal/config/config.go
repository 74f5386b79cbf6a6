// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// CarrotConfig contains all tunable constants of the platformer.
// Lengths are in world units; the renderer scales them to terminal cells.
type CarrotConfig struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Actor      ActorConfig      `yaml:"actor"`
	Platforms  PlatformConfig   `yaml:"platforms"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ViewportConfig defines the visible world area.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// ScrollThreshold is the fraction of Height above which the world
	// scrolls instead of the actor moving further up.
	ScrollThreshold float64 `yaml:"scroll_threshold"`
}

// PhysicsConfig defines the integrator and bounce constants.
type PhysicsConfig struct {
	JumpForce     float64 `yaml:"jump_force"`
	Gravity       float64 `yaml:"gravity"`
	MoveSpeed     float64 `yaml:"move_speed"`
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`
	Acceleration  float64 `yaml:"acceleration"`
	Deceleration  float64 `yaml:"deceleration"`
	AirResistance float64 `yaml:"air_resistance"`
	MaxDT         float64 `yaml:"max_dt"`
	FrameRate     int     `yaml:"frame_rate"`         // Nominal frames per second that dt=1 represents
	BounceBoost   float64 `yaml:"bounce_speed_boost"` // Extra upward speed per unit of |vx|
	BounceDamping float64 `yaml:"bounce_damping"`     // vx multiplier on landing
}

// ActorConfig defines the player's size and spawn point.
type ActorConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// StartY is the fraction of viewport height where the actor's bottom spawns.
	StartY float64 `yaml:"start_y"`
}

// PlatformConfig defines platform size, initial layout and generation.
type PlatformConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	InitialCount   int     `yaml:"initial_count"`
	InitialSpacing float64 `yaml:"initial_spacing"`
	FirstOffset    float64 `yaml:"first_offset"` // Distance of the first platform above the bottom edge
	Jitter         float64 `yaml:"jitter"`       // Random extra gap [0, jitter) for generated platforms
	LandingAbove   float64 `yaml:"landing_above"`
	LandingBelow   float64 `yaml:"landing_below"`
}

// ObstacleConfig defines obstacle size, initial layout and generation.
type ObstacleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	InitialCount int     `yaml:"initial_count"`
	// InitialScreens is the vertical gap between initial obstacles in viewport heights.
	InitialScreens float64 `yaml:"initial_screens"`
	// SpacingFactor is the gap between generated obstacles in obstacle heights.
	SpacingFactor float64 `yaml:"spacing_factor"`
}

// ScoringConfig defines how score accrues.
type ScoringConfig struct {
	ScrollRate float64 `yaml:"scroll_rate"` // Points per world unit scrolled (truncated per frame)
	CreditZone float64 `yaml:"credit_zone"` // Fraction of viewport height below which platforms are not credited
	CreditBand float64 `yaml:"credit_band"` // Depth of the band below a platform top that credits it
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/frames at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max level.
type ScalingConfig struct {
	SpacingReduction float64 `yaml:"spacing_reduction"` // Obstacle heights removed from the obstacle gap
	JitterIncrease   float64 `yaml:"jitter_increase"`   // World units added to the platform jitter
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "" (keep config).
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ScrollThresholdY returns the viewport threshold in world units.
func (c CarrotConfig) ScrollThresholdY() float64 {
	return c.Viewport.Height * c.Viewport.ScrollThreshold
}
