package audio

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/carrot-quest/internal/core"
)

// Settings keys for persisted volumes.
const (
	MusicVolumeKey   = "music_volume"
	EffectsVolumeKey = "effects_volume"
)

// Volumes holds linear gains in [0, 1].
type Volumes struct {
	Music   float64
	Effects float64
}

// DefaultVolumes returns the volumes used before the player changes them.
func DefaultVolumes() Volumes {
	return Volumes{Music: 0.1, Effects: 0.05}
}

// Clamp restricts both gains to [0, 1].
func (v Volumes) Clamp() Volumes {
	return Volumes{
		Music:   core.ClampF(v.Music, 0, 1),
		Effects: core.ClampF(v.Effects, 0, 1),
	}
}

// SettingsStore is the persistence the volumes live in.
type SettingsStore interface {
	Setting(key string) (string, bool, error)
	SetSetting(key, value string) error
}

// LoadVolumes reads saved volumes, falling back to defaults for missing or
// malformed values.
func LoadVolumes(store SettingsStore) (Volumes, error) {
	v := DefaultVolumes()
	if store == nil {
		return v, nil
	}

	for key, dst := range map[string]*float64{
		MusicVolumeKey:   &v.Music,
		EffectsVolumeKey: &v.Effects,
	} {
		raw, ok, err := store.Setting(key)
		if err != nil {
			return DefaultVolumes(), fmt.Errorf("audio: cannot load volumes: %w", err)
		}
		if !ok {
			continue
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			*dst = f
		}
	}
	return v.Clamp(), nil
}

// SaveVolumes persists both gains.
func SaveVolumes(store SettingsStore, v Volumes) error {
	if store == nil {
		return nil
	}
	v = v.Clamp()
	if err := store.SetSetting(MusicVolumeKey, strconv.FormatFloat(v.Music, 'f', -1, 64)); err != nil {
		return fmt.Errorf("audio: cannot save volumes: %w", err)
	}
	if err := store.SetSetting(EffectsVolumeKey, strconv.FormatFloat(v.Effects, 'f', -1, 64)); err != nil {
		return fmt.Errorf("audio: cannot save volumes: %w", err)
	}
	return nil
}
