package timeline

import "math"

// TargetKind identifies the element under the pointer.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetPlayheadGrip
	TargetPlayheadLine
	TargetEndMarker
	TargetClip
	TargetRuler
	TargetLane
	TargetZoomSlider
)

// String returns the target kind name.
func (k TargetKind) String() string {
	switch k {
	case TargetNone:
		return "none"
	case TargetPlayheadGrip:
		return "playhead-grip"
	case TargetPlayheadLine:
		return "playhead-line"
	case TargetEndMarker:
		return "end-marker"
	case TargetClip:
		return "clip"
	case TargetRuler:
		return "ruler"
	case TargetLane:
		return "lane"
	case TargetZoomSlider:
		return "zoom-slider"
	default:
		return "unknown"
	}
}

// Axis selects a zoom direction.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// Target is the identity of a pointer-down element. Zoom sliders live
// outside the scene, so the renderer builds their targets itself and
// supplies the slider's pixel Extent; pointer X is then slider-local.
type Target struct {
	Kind    TargetKind
	ClipID  string
	TrackID string
	Axis    Axis
	Extent  float64
}

// HitTest resolves a point (content-space x, scene y) against g. Handles
// stack as in the scene: playhead grip and line over the end marker, over
// clips, over the ruler and lanes. tolerance is the grab distance for line
// handles.
func HitTest(g Geometry, x, y, tolerance float64) Target {
	ph := g.Playhead
	gripHalf := math.Max(math.Abs(ph.Grip[1].X-ph.Grip[0].X)/2, tolerance)
	if y >= ph.Grip[0].Y && y <= ph.Grip[2].Y && math.Abs(x-ph.X) <= gripHalf {
		return Target{Kind: TargetPlayheadGrip}
	}
	if onSegment(ph.Line, x, y, tolerance) {
		return Target{Kind: TargetPlayheadLine}
	}
	if onSegment(g.EndMarker.Line, x, y, tolerance) {
		return Target{Kind: TargetEndMarker}
	}
	// Later clips draw on top of earlier ones.
	for i := len(g.Clips) - 1; i >= 0; i-- {
		c := g.Clips[i]
		if c.Rect.Contains(x, y) {
			return Target{Kind: TargetClip, ClipID: c.ClipID, TrackID: c.TrackID}
		}
	}
	if g.Ruler.Rect.Contains(x, y) {
		return Target{Kind: TargetRuler}
	}
	for _, l := range g.Lanes {
		if l.Rect.Contains(x, y) {
			return Target{Kind: TargetLane, TrackID: l.TrackID}
		}
	}
	return Target{}
}

func onSegment(s Segment, x, y, tolerance float64) bool {
	return y >= s.Y1 && y <= s.Y2 && math.Abs(x-s.X) <= tolerance
}
