// Package transport drives the timeline playhead during playback: one frame
// per tick at the timeline's frame rate, looping or stopping at the end
// marker.
package transport

import (
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/cutline/internal/timecode"
)

// Timeline is the part of the timeline engine the transport moves.
type Timeline interface {
	CurrentTime() float64
	EndMarkerTime() float64
	Seek(t float64) error
	Labels() timecode.Formatter
}

// Transport is a play/stop state machine over a Timeline. It has no timer of
// its own: the owner schedules a tick every Interval() and calls Tick with
// the generation it was scheduled for. Like the timeline, it is driven from
// a single event loop.
type Transport struct {
	tl    Timeline
	log   *zap.Logger
	loop  bool
	state State
	gen   int

	subs   []*Subscription
	closed bool
}

// Option configures a Transport.
type Option func(*Transport)

// WithLoop selects whether playback wraps to zero at the end marker (the
// default) or stops there.
func WithLoop(loop bool) Option {
	return func(t *Transport) { t.loop = loop }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(t *Transport) {
		if l != nil {
			t.log = l
		}
	}
}

// New creates a stopped transport over tl.
func New(tl Timeline, opts ...Option) *Transport {
	t := &Transport{
		tl:   tl,
		log:  zap.NewNop(),
		loop: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// State returns the current transport state.
func (t *Transport) State() State { return t.state }

// IsPlaying returns true while ticks advance the playhead.
func (t *Transport) IsPlaying() bool { return t.state == StatePlaying }

// Loop reports whether playback wraps at the end marker.
func (t *Transport) Loop() bool { return t.loop }

// Generation identifies the current run. Ticks scheduled for an older run
// are ignored, so stopping and restarting never doubles the tick rate.
func (t *Transport) Generation() int { return t.gen }

// Interval is the wall-clock time between ticks: one frame.
func (t *Transport) Interval() time.Duration {
	fps := t.tl.Labels().FPS
	if fps <= 0 {
		fps = timecode.DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// Step is the time advanced per tick, in timeline units.
func (t *Transport) Step() float64 {
	return 1 / t.tl.Labels().FramesPerUnit()
}

// Play starts playback. Starting at or past the end marker rewinds to zero
// first. It returns false if nothing can play (the timeline is empty).
func (t *Transport) Play() bool {
	if t.state == StatePlaying {
		return true
	}
	end := t.tl.EndMarkerTime()
	if end <= 0 {
		return false
	}
	if t.tl.CurrentTime() >= end {
		if err := t.tl.Seek(0); err != nil {
			t.fail("rewind", err)
			return false
		}
	}
	t.gen++
	t.setState(StatePlaying)
	t.log.Debug("playback started", zap.Float64("time", t.tl.CurrentTime()), zap.Int("generation", t.gen))
	return true
}

// Stop halts playback, leaving the playhead where it is.
func (t *Transport) Stop() {
	if t.state == StateStopped {
		return
	}
	t.setState(StateStopped)
	t.log.Debug("playback stopped", zap.Float64("time", t.tl.CurrentTime()))
}

// Toggle starts or stops playback and returns the new state.
func (t *Transport) Toggle() State {
	if t.state == StatePlaying {
		t.Stop()
	} else {
		t.Play()
	}
	return t.state
}

// Tick advances the playhead by one frame. It returns true when another
// tick should be scheduled for the same generation.
func (t *Transport) Tick(gen int) bool {
	if t.state != StatePlaying || gen != t.gen {
		return false
	}

	end := t.tl.EndMarkerTime()
	next := t.tl.CurrentTime() + t.Step()
	if next < end {
		if err := t.tl.Seek(next); err != nil {
			t.fail("advance", err)
			return false
		}
		return true
	}

	if !t.loop {
		if err := t.tl.Seek(end); err != nil {
			t.fail("advance", err)
			return false
		}
		t.Stop()
		return false
	}

	if err := t.tl.Seek(0); err != nil {
		t.fail("wrap", err)
		return false
	}
	for _, s := range t.subs {
		s.sendWrapped(Wrapped{End: end})
	}
	return true
}

// Subscribe creates a new event subscription.
func (t *Transport) Subscribe() *Subscription {
	sub := newSubscription()
	if t.closed {
		sub.close()
		return sub
	}
	t.subs = append(t.subs, sub)
	return sub
}

// Close stops playback and closes every subscription.
func (t *Transport) Close() {
	if t.closed {
		return
	}
	t.Stop()
	t.closed = true
	for _, s := range t.subs {
		s.close()
	}
	t.subs = nil
}

func (t *Transport) setState(s State) {
	prev := t.state
	t.state = s
	for _, sub := range t.subs {
		sub.sendState(StateChange{Previous: prev, Current: s})
	}
}

func (t *Transport) fail(op string, err error) {
	t.log.Warn("transport tick failed", zap.String("op", op), zap.Error(err))
	for _, s := range t.subs {
		s.sendError(ErrorEvent{Operation: op, Err: err})
	}
	t.Stop()
}
