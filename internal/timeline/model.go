package timeline

import (
	"math"
	"slices"
)

// ClipData is a time-bounded unit of content on a track.
type ClipData struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Start    float64 `json:"start" yaml:"start"`
	Duration float64 `json:"duration" yaml:"duration"`
}

// End returns Start + Duration.
func (c ClipData) End() float64 {
	return c.Start + c.Duration
}

func (c ClipData) validate(op string) error {
	if !finite(c.Start) || c.Start < 0 {
		return invalid(op, "clip start", "must be a finite value >= 0")
	}
	if !finite(c.Duration) || c.Duration <= 0 {
		return invalid(op, "clip duration", "must be a finite value > 0")
	}
	return nil
}

// TrackData is an ordered lane of clips. Clip order is display order;
// overlapping clips are allowed.
type TrackData struct {
	ID    string     `json:"id" yaml:"id"`
	Name  string     `json:"name" yaml:"name"`
	Clips []ClipData `json:"clips" yaml:"clips"`
}

func (t TrackData) clone() TrackData {
	t.Clips = slices.Clone(t.Clips)
	return t
}

// clipIndex returns the index of the clip with the given ID, or -1.
func (t TrackData) clipIndex(id string) int {
	return slices.IndexFunc(t.Clips, func(c ClipData) bool { return c.ID == id })
}

// model holds the tracks and answers structural queries. It never clamps;
// callers validate before mutating.
type model struct {
	tracks []TrackData
}

func (m *model) trackIndex(id string) int {
	return slices.IndexFunc(m.tracks, func(t TrackData) bool { return t.ID == id })
}

// findClip returns the track and clip indexes of a clip ID.
func (m *model) findClip(id string) (ti, ci int, ok bool) {
	for i, t := range m.tracks {
		if j := t.clipIndex(id); j >= 0 {
			return i, j, true
		}
	}
	return -1, -1, false
}

func (m *model) clip(ti, ci int) *ClipData {
	return &m.tracks[ti].Clips[ci]
}

// lastClipEnd returns the maximum clip end across all tracks.
func (m *model) lastClipEnd() (end float64, ok bool) {
	return lastClipEnd(m.tracks)
}

func (m *model) clipCount() int {
	n := 0
	for _, t := range m.tracks {
		n += len(t.Clips)
	}
	return n
}

func (m *model) snapshot() []TrackData {
	out := make([]TrackData, len(m.tracks))
	for i, t := range m.tracks {
		out[i] = t.clone()
	}
	return out
}

func lastClipEnd(tracks []TrackData) (end float64, ok bool) {
	for _, t := range tracks {
		for _, c := range t.Clips {
			if !ok || c.End() > end {
				end = c.End()
				ok = true
			}
		}
	}
	return end, ok
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
