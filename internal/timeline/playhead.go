package timeline

import "math"

// Playhead owns the current time. The playhead line and its ruler grip are
// two handles on this one value; both route through set, so they cannot
// diverge.
type Playhead struct {
	time float64
}

// Time returns the current time.
func (p *Playhead) Time() float64 {
	return p.time
}

// set clamps t into [0, end] and reports whether the time changed.
// NaN is ignored.
func (p *Playhead) set(t, end float64) bool {
	if math.IsNaN(t) {
		return false
	}
	t = math.Min(math.Max(t, 0), end)
	if t == p.time {
		return false
	}
	p.time = t
	return true
}

// EndMarker owns the end-of-timeline time and its floor: the last clip end
// plus padding, or emptyEnd when there are no clips.
type EndMarker struct {
	time     float64
	padding  float64
	emptyEnd float64
}

// Time returns the end-of-timeline time.
func (e *EndMarker) Time() float64 {
	return e.time
}

// floor returns the minimum allowed end time for the given tracks.
func (e *EndMarker) floor(tracks []TrackData) float64 {
	last, ok := lastClipEnd(tracks)
	if !ok {
		return e.emptyEnd
	}
	return last + e.padding
}

// drag moves the marker to t, stopping at floor. It never fails.
func (e *EndMarker) drag(t, floor float64) bool {
	if math.IsNaN(t) {
		return false
	}
	t = math.Max(t, floor)
	if t == e.time {
		return false
	}
	e.time = t
	return true
}

// advance raises the marker to floor when the floor overtakes it. The marker
// never shrinks here.
func (e *EndMarker) advance(floor float64) bool {
	if floor <= e.time {
		return false
	}
	e.time = floor
	return true
}
