// Package tui provides the Bubble Tea integration for Carrot Quest.
// It handles the terminal UI loop, input mapping, audio hand-off and the
// menu, settings and scoreboard screens.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock converts tick timestamps into dt values measured in nominal
// frames. The first frame after a reset reports dt = 1.
type frameClock struct {
	nominal time.Duration
	last    time.Time
	fresh   bool
}

// newFrameClock creates a clock where dt = 1 means one frame at frameRate fps.
func newFrameClock(frameRate int) frameClock {
	if frameRate <= 0 {
		frameRate = 60
	}
	return frameClock{
		nominal: time.Second / time.Duration(frameRate),
		fresh:   true,
	}
}

// Reset makes the next frame report dt = 1.
func (c *frameClock) Reset() {
	c.fresh = true
}

// Next returns the dt for a frame that started at now.
func (c *frameClock) Next(now time.Time) float64 {
	if c.fresh || c.last.IsZero() {
		c.fresh = false
		c.last = now
		return 1
	}
	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		return 0
	}
	return float64(elapsed) / float64(c.nominal)
}
