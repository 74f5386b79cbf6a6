package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const carrotFile = "carrot.yaml"

// LoadCarrot loads the Carrot Quest configuration.
// Search order: customPath -> ~/.carrot/configs/carrot.yaml -> ./configs/carrot.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the keys it sets.
func LoadCarrot(customPath string) (CarrotConfig, error) {
	cfg := DefaultCarrotConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(carrotFile); userCfgPath != "" {
		if loaded, ok := decodeFile(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := decodeFile(filepath.Join("configs", carrotFile)); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultCarrotConfig()
	if err := yaml.Unmarshal(defaultCarrotYAML, &embedded); err != nil {
		return DefaultCarrotConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// decodeFile reads and parses path over the defaults. Missing or invalid files are skipped.
func decodeFile(path string) (CarrotConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CarrotConfig{}, false
	}
	cfg := DefaultCarrotConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CarrotConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".carrot", "configs", filename)
}

// ApplyCarrotPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyCarrotPreset(cfg *CarrotConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
