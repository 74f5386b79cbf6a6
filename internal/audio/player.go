// Package audio plays sound effects and background music.
// Effects overlap freely; one music track plays at a time.
package audio

// Player is the sound sink the game driver talks to.
type Player interface {
	PlayEffect(e Effect)
	PlayMusic(t Track)
	PauseMusic()
	StopMusic()
	SetVolumes(v Volumes)
}

// Nop is a Player that discards everything. Used when audio is muted,
// unavailable, or the session is remote.
type Nop struct{}

// PlayEffect discards the effect.
func (Nop) PlayEffect(Effect) {}

// PlayMusic discards the track.
func (Nop) PlayMusic(Track) {}

// PauseMusic does nothing.
func (Nop) PauseMusic() {}

// StopMusic does nothing.
func (Nop) StopMusic() {}

// SetVolumes discards the volumes.
func (Nop) SetVolumes(Volumes) {}

var _ Player = Nop{}
