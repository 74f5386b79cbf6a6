package audio

import (
	"sync"
	"sync/atomic"
)

type commandKind int

const (
	cmdEffect commandKind = iota
	cmdMusic
	cmdPauseMusic
	cmdStopMusic
	cmdVolumes
)

type command struct {
	kind    commandKind
	effect  Effect
	track   Track
	volumes Volumes
}

// Dispatcher forwards requests to a Player on its own goroutine so the
// frame loop never waits for audio. Requests that do not fit the queue are
// dropped.
type Dispatcher struct {
	player  Player
	queue   chan command
	done    chan struct{}
	mu      sync.RWMutex
	closed  bool
	dropped atomic.Int64
}

// NewDispatcher starts a dispatcher with room for size pending requests.
func NewDispatcher(p Player, size int) *Dispatcher {
	if size <= 0 {
		size = 32
	}
	d := &Dispatcher{
		player: p,
		queue:  make(chan command, size),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for c := range d.queue {
		switch c.kind {
		case cmdEffect:
			d.player.PlayEffect(c.effect)
		case cmdMusic:
			d.player.PlayMusic(c.track)
		case cmdPauseMusic:
			d.player.PauseMusic()
		case cmdStopMusic:
			d.player.StopMusic()
		case cmdVolumes:
			d.player.SetVolumes(c.volumes)
		}
	}
}

// send enqueues c without blocking.
func (d *Dispatcher) send(c command) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}
	select {
	case d.queue <- c:
	default:
		d.dropped.Add(1)
	}
}

// PlayEffect queues an effect. It never blocks.
func (d *Dispatcher) PlayEffect(e Effect) {
	d.send(command{kind: cmdEffect, effect: e})
}

// PlayMusic queues a switch to track t.
func (d *Dispatcher) PlayMusic(t Track) {
	d.send(command{kind: cmdMusic, track: t})
}

// PauseMusic queues a music pause.
func (d *Dispatcher) PauseMusic() {
	d.send(command{kind: cmdPauseMusic})
}

// StopMusic queues a music stop.
func (d *Dispatcher) StopMusic() {
	d.send(command{kind: cmdStopMusic})
}

// SetVolumes queues new gains for both channels.
func (d *Dispatcher) SetVolumes(v Volumes) {
	d.send(command{kind: cmdVolumes, volumes: v})
}

// Dropped returns how many requests were discarded because the queue was full.
func (d *Dispatcher) Dropped() int64 {
	return d.dropped.Load()
}

// Close stops accepting requests and waits until queued ones are delivered.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	<-d.done
}

var _ Player = (*Dispatcher)(nil)
