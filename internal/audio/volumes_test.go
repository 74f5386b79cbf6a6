package audio

import (
	"errors"
	"testing"
)

type memStore struct {
	values map[string]string
	err    error
}

func (m *memStore) Setting(key string) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memStore) SetSetting(key, value string) error {
	if m.err != nil {
		return m.err
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

func TestLoadVolumesDefaults(t *testing.T) {
	v, err := LoadVolumes(&memStore{})
	if err != nil {
		t.Fatalf("LoadVolumes() failed: %v", err)
	}
	if v != (Volumes{Music: 0.1, Effects: 0.05}) {
		t.Errorf("defaults = %+v", v)
	}

	if v, _ := LoadVolumes(nil); v != DefaultVolumes() {
		t.Errorf("nil store should give defaults, got %+v", v)
	}
}

func TestVolumesRoundTrip(t *testing.T) {
	store := &memStore{}
	if err := SaveVolumes(store, Volumes{Music: 0.35, Effects: 0.8}); err != nil {
		t.Fatalf("SaveVolumes() failed: %v", err)
	}

	v, err := LoadVolumes(store)
	if err != nil {
		t.Fatalf("LoadVolumes() failed: %v", err)
	}
	if v.Music != 0.35 || v.Effects != 0.8 {
		t.Errorf("round trip = %+v", v)
	}
}

func TestLoadVolumesClampsAndSkipsGarbage(t *testing.T) {
	store := &memStore{values: map[string]string{
		MusicVolumeKey:   "7",
		EffectsVolumeKey: "loud",
	}}

	v, err := LoadVolumes(store)
	if err != nil {
		t.Fatalf("LoadVolumes() failed: %v", err)
	}
	if v.Music != 1 {
		t.Errorf("Music = %f, expected clamp to 1", v.Music)
	}
	if v.Effects != 0.05 {
		t.Errorf("Effects = %f, expected default for malformed value", v.Effects)
	}
}

func TestVolumesStoreErrors(t *testing.T) {
	store := &memStore{err: errors.New("disk gone")}

	if _, err := LoadVolumes(store); err == nil {
		t.Error("LoadVolumes() should report store errors")
	}
	if err := SaveVolumes(store, DefaultVolumes()); err == nil {
		t.Error("SaveVolumes() should report store errors")
	}
}

func TestVolumesClamp(t *testing.T) {
	got := Volumes{Music: -0.5, Effects: 1.5}.Clamp()
	if got.Music != 0 || got.Effects != 1 {
		t.Errorf("Clamp() = %+v", got)
	}
}
