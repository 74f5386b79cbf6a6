package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays audio through the system speaker. Every effect is
// added to the mixer as its own streamer, so rapid bounces overlap.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicVolume *effects.Volume
	track       Track
	volumes     Volumes
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(v Volumes) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		volumes: v.Clamp(),
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close stops all sounds and releases the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.music = nil
	sm.musicVolume = nil
	sm.track = TrackNone
	sm.initialized = false
}

// PlayEffect starts a one-shot effect at the current effects volume.
func (sm *SoundManager) PlayEffect(e Effect) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := effectStreamer(e, sampleRate)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(newVolume(s, sm.volumes.Effects))
	speaker.Unlock()
}

// PlayMusic starts t, or resumes it if it is already the current track.
func (sm *SoundManager) PlayMusic(t Track) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if sm.music != nil && sm.track == t {
		sm.music.Paused = false
		return
	}
	sm.stopMusicLocked()

	s := trackStreamer(t, sampleRate)
	if s == nil {
		return
	}
	sm.music = &beep.Ctrl{Streamer: s}
	sm.musicVolume = newVolume(sm.music, sm.volumes.Music)
	sm.track = t
	sm.mixer.Add(sm.musicVolume)
}

// PauseMusic holds the current track at its position.
func (sm *SoundManager) PauseMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
}

// StopMusic ends the current track.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.stopMusicLocked()
	speaker.Unlock()
}

// stopMusicLocked detaches the track. A Ctrl without a streamer reports
// end of stream, so the mixer drops it. Caller holds speaker.Lock.
func (sm *SoundManager) stopMusicLocked() {
	if sm.music != nil {
		sm.music.Streamer = nil
	}
	sm.music = nil
	sm.musicVolume = nil
	sm.track = TrackNone
}

// SetVolumes applies new volumes. Playing music changes immediately;
// effects use the new volume from their next playback.
func (sm *SoundManager) SetVolumes(v Volumes) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.volumes = v.Clamp()
	if sm.musicVolume == nil {
		return
	}
	speaker.Lock()
	setGain(sm.musicVolume, sm.volumes.Music)
	speaker.Unlock()
}

var _ Player = (*SoundManager)(nil)
