package timeline

import (
	"math"

	"github.com/llehouerou/cutline/internal/theme"
)

// Mapper converts between time/track space and pixel space for one pair of
// zoom factors. X is content-space (time 0 at x 0); Y is scene-space.
// Values are never rounded.
type Mapper struct {
	basePixelsPerUnit float64
	laneHeight        float64
	trackSpacing      float64
	rulerHeight       float64
	hZoom             float64
	vZoom             float64
}

// NewMapper builds a mapper from layout metrics and zoom factors.
func NewMapper(m theme.Metrics, hZoom, vZoom float64) Mapper {
	return Mapper{
		basePixelsPerUnit: m.BasePixelsPerUnit,
		laneHeight:        m.LaneHeight,
		trackSpacing:      m.TrackSpacing,
		rulerHeight:       m.RulerHeight,
		hZoom:             hZoom,
		vZoom:             vZoom,
	}
}

// WithZoom returns a copy using different zoom factors.
func (m Mapper) WithZoom(hZoom, vZoom float64) Mapper {
	m.hZoom = hZoom
	m.vZoom = vZoom
	return m
}

// HZoom returns the horizontal zoom factor.
func (m Mapper) HZoom() float64 { return m.hZoom }

// VZoom returns the vertical zoom factor.
func (m Mapper) VZoom() float64 { return m.vZoom }

// PixelsPerUnit is the current horizontal scale.
func (m Mapper) PixelsPerUnit() float64 {
	return m.basePixelsPerUnit * m.hZoom
}

// LaneHeight is the zoomed height of one lane.
func (m Mapper) LaneHeight() float64 {
	return m.laneHeight * m.vZoom
}

// LanePitch is the distance between the tops of two adjacent lanes.
func (m Mapper) LanePitch() float64 {
	return m.LaneHeight() + m.trackSpacing
}

// TimeToX maps a time to a content-space x coordinate.
func (m Mapper) TimeToX(t float64) float64 {
	return t * m.PixelsPerUnit()
}

// XToTime is the inverse of TimeToX.
func (m Mapper) XToTime(x float64) float64 {
	return x / m.PixelsPerUnit()
}

// TrackToY maps a track index to the top of its lane.
func (m Mapper) TrackToY(i int) float64 {
	return m.rulerHeight + float64(i)*m.LanePitch()
}

// YToTrack maps a scene y to a track index. Points above the first lane
// give -1; points past the last lane give indexes the caller must
// range-check. A point in the spacing gap belongs to the lane above it.
func (m Mapper) YToTrack(y float64) int {
	if y < m.rulerHeight {
		return -1
	}
	return int(math.Floor((y - m.rulerHeight) / m.LanePitch()))
}

// DistancePx returns the absolute pixel distance between two times.
func (m Mapper) DistancePx(a, b float64) float64 {
	return math.Abs(m.TimeToX(a) - m.TimeToX(b))
}
