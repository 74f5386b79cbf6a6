package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Effect identifies a one-shot sound.
type Effect int

const (
	EffectBounce Effect = iota
	EffectGameOver
)

// Track identifies a looping background tune.
type Track int

const (
	TrackNone Track = iota
	TrackGame
	TrackMenu
)

const (
	bounceDuration   = 140 * time.Millisecond
	gameOverDuration = 600 * time.Millisecond
)

// sweep generates a sine whose pitch glides from one frequency to another.
type sweep struct {
	rate     beep.SampleRate
	from, to float64
	phase    float64
	pos      int
	total    int
}

// NewSweep creates a finite frequency glide.
func NewSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{rate: rate, from: from, to: to, total: rate.N(duration)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		// Quick attack, linear release.
		env := math.Min(progress/0.05, 1) * (1 - progress)
		val := env * math.Sin(2*math.Pi*s.phase)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// melody loops a note sequence forever. A zero frequency is a rest.
type melody struct {
	rate    beep.SampleRate
	notes   []float64
	noteLen int
	phase   float64
	pos     int
}

// NewMelody creates an endless tune with one note per step.
func NewMelody(notes []float64, step time.Duration, rate beep.SampleRate) beep.Streamer {
	return &melody{rate: rate, notes: notes, noteLen: rate.N(step)}
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	if len(m.notes) == 0 || m.noteLen <= 0 {
		return 0, false
	}
	for i := range samples {
		idx := (m.pos / m.noteLen) % len(m.notes)
		freq := m.notes[idx]
		inNote := float64(m.pos%m.noteLen) / float64(m.noteLen)

		val := 0.0
		if freq > 0 {
			// Soft triangle-ish tone with a plucked decay per note.
			env := math.Exp(-inNote * 3)
			val = env * (0.7*math.Sin(2*math.Pi*m.phase) + 0.3*math.Sin(4*math.Pi*m.phase))
			m.phase += freq / float64(m.rate)
			m.phase -= math.Floor(m.phase)
		}

		samples[i][0] = val
		samples[i][1] = val
		m.pos++
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

// newVolume scales a streamer by a linear gain in [0, 1].
// math.Log2(0) is -Inf, so zero gain is rendered silent instead.
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setGain(v, gain)
	return v
}

// setGain updates a volume effect in place.
func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(gain)
	v.Silent = false
}

// effectStreamer builds a fresh streamer for one playback of e.
func effectStreamer(e Effect, rate beep.SampleRate) beep.Streamer {
	switch e {
	case EffectBounce:
		// Springy upward chirp.
		return NewSweep(320, 880, bounceDuration, rate)
	case EffectGameOver:
		return NewSweep(440, 110, gameOverDuration, rate)
	default:
		return nil
	}
}

// Note frequencies in Hz.
const (
	noteC4 = 261.63
	noteD4 = 293.66
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
)

// trackStreamer builds the looping streamer for a track.
func trackStreamer(t Track, rate beep.SampleRate) beep.Streamer {
	switch t {
	case TrackGame:
		return NewMelody([]float64{
			noteC4, noteE4, noteG4, noteC5, noteG4, noteE4, noteA4, 0,
			noteD4, noteG4, noteA4, noteE5, noteC5, noteA4, noteG4, 0,
		}, 180*time.Millisecond, rate)
	case TrackMenu:
		return NewMelody([]float64{
			noteE4, 0, noteG4, 0, noteA4, noteG4, noteE4, 0,
			noteD4, 0, noteE4, 0, noteC4, 0, 0, 0,
		}, 320*time.Millisecond, rate)
	default:
		return nil
	}
}
