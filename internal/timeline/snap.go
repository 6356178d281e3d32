package timeline

import "math"

// Edge identifies which clip edge a snap locked.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeLeading
	EdgeTrailing
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeNone:
		return "none"
	case EdgeLeading:
		return "leading"
	case EdgeTrailing:
		return "trailing"
	default:
		return "unknown"
	}
}

// SnapRequest describes a clip drag in progress.
type SnapRequest struct {
	Tentative  float64   // unconstrained start derived from the pointer
	Duration   float64   // preserved by the snap
	Candidates []float64 // edge times the clip may lock onto
}

// SnapResult is the adjusted start of a dragged clip.
type SnapResult struct {
	Start   float64
	Snapped bool
	Edge    Edge
	Target  float64 // candidate time the snapped edge landed on
}

// Snapper applies pixel-tolerance edge snapping.
type Snapper struct {
	mapper    Mapper
	tolerance float64
}

// NewSnapper returns a snapper measuring distances with mp.
func NewSnapper(mp Mapper, tolerancePx float64) Snapper {
	return Snapper{mapper: mp, tolerance: tolerancePx}
}

// Snap locks the leading or trailing edge onto the nearest candidate within
// tolerance, translating the clip rigidly. When both edges qualify the
// smaller pixel distance wins and ties go to the leading edge. The start is
// clamped to >= 0 last.
func (s Snapper) Snap(req SnapRequest) SnapResult {
	res := SnapResult{Start: req.Tentative}

	leadTarget, leadDist := s.nearest(req.Tentative, req.Candidates)
	trailTarget, trailDist := s.nearest(req.Tentative+req.Duration, req.Candidates)

	leadOK := leadDist <= s.tolerance
	trailOK := trailDist <= s.tolerance

	switch {
	case leadOK && (!trailOK || leadDist <= trailDist):
		res = SnapResult{Start: leadTarget, Snapped: true, Edge: EdgeLeading, Target: leadTarget}
	case trailOK:
		res = SnapResult{Start: trailTarget - req.Duration, Snapped: true, Edge: EdgeTrailing, Target: trailTarget}
	}

	res.Start = math.Max(0, res.Start)
	return res
}

// nearest returns the candidate closest to t and its pixel distance.
// With no candidates the distance is +Inf.
func (s Snapper) nearest(t float64, candidates []float64) (float64, float64) {
	best, bestDist := 0.0, math.Inf(1)
	for _, c := range candidates {
		if d := s.mapper.DistancePx(t, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist
}

// snapCandidates collects the edges a clip on track may snap to: every other
// clip's start and end on the same track, time 0 and the end marker.
func snapCandidates(track TrackData, skip string, end float64) []float64 {
	out := make([]float64, 0, 2*len(track.Clips)+2)
	out = append(out, 0, end)
	for _, c := range track.Clips {
		if c.ID == skip {
			continue
		}
		out = append(out, c.Start, c.End())
	}
	return out
}
