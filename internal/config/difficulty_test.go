package config

import "testing"

func testDifficulty(enabled bool, typ string) DifficultyConfig {
	return DifficultyConfig{
		Enabled: enabled,
		Progression: ProgressionConfig{
			Type:  typ,
			MaxAt: 1000,
		},
		Scaling: ScalingConfig{
			SpacingReduction: 6,
			JitterIncrease:   60,
		},
	}
}

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name          string
		cfg           DifficultyConfig
		score, frames int
		expected      float64
	}{
		{"disabled", testDifficulty(false, "score"), 5000, 0, 0},
		{"none progression", testDifficulty(true, "none"), 5000, 0, 0},
		{"score start", testDifficulty(true, "score"), 0, 0, 0},
		{"score half", testDifficulty(true, "score"), 500, 0, 0.5},
		{"score capped", testDifficulty(true, "score"), 5000, 0, 1},
		{"time half", testDifficulty(true, "time"), 0, 500, 0.5},
		{"unknown type", testDifficulty(true, "bogus"), 500, 500, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDifficultyManager(tc.cfg)
			if got := d.Level(tc.score, tc.frames); got != tc.expected {
				t.Errorf("Level() = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestDifficultyInitialLevel(t *testing.T) {
	cfg := testDifficulty(true, "score")
	cfg.InitialLevel = 0.5
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level(0) = %f, expected 0.5", got)
	}
	if got := d.Level(500, 0); got != 0.75 {
		t.Errorf("Level(500) = %f, expected 0.75", got)
	}

	cfg.InitialLevel = 3
	if got := NewDifficultyManager(cfg).Level(0, 0); got != 1 {
		t.Errorf("initial level should clamp to 1, got %f", got)
	}
}

func TestObstacleSpacing(t *testing.T) {
	d := NewDifficultyManager(testDifficulty(true, "score"))

	if got := d.ObstacleSpacing(12, 0, 0); got != 12 {
		t.Errorf("ObstacleSpacing at level 0 = %f, expected 12", got)
	}
	if got := d.ObstacleSpacing(12, 1000, 0); got != 6 {
		t.Errorf("ObstacleSpacing at level 1 = %f, expected 6", got)
	}
	if got := d.ObstacleSpacing(5, 1000, 0); got != minObstacleSpacing {
		t.Errorf("ObstacleSpacing should not drop below %d, got %f", minObstacleSpacing, got)
	}

	d = NewDifficultyManager(testDifficulty(false, "score"))
	if got := d.ObstacleSpacing(12, 1000, 0); got != 12 {
		t.Errorf("disabled ObstacleSpacing = %f, expected base", got)
	}
}

func TestPlatformJitter(t *testing.T) {
	d := NewDifficultyManager(testDifficulty(true, "score"))

	if got := d.PlatformJitter(80, 500, 0); got != 110 {
		t.Errorf("PlatformJitter at level 0.5 = %f, expected 110", got)
	}

	if !d.IsEnabled() {
		t.Error("IsEnabled() should be true when progression is enabled")
	}

	d = NewDifficultyManager(testDifficulty(false, "score"))
	if d.IsEnabled() {
		t.Error("IsEnabled() should be false when progression is disabled")
	}
	if got := d.PlatformJitter(80, 500, 0); got != 80 {
		t.Errorf("disabled PlatformJitter = %f, expected base", got)
	}
}
