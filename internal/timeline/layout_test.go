package timeline

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/cutline/internal/theme"
	"github.com/llehouerou/cutline/internal/timecode"
)

func testOptions() LayoutOptions {
	return LayoutOptions{
		Metrics: theme.Default().Metrics,
		Labels:  timecode.New(timecode.Frames, timecode.DefaultFPS),
	}
}

func testSnapshot(h, v float64) Snapshot {
	return Snapshot{
		Tracks:   []TrackData{videoTrack(), {ID: "a1", Name: "Audio 1", Clips: []ClipData{{ID: "c", Start: 0, Duration: 30}}}},
		Playhead: 25,
		End:      111,
		HZoom:    h,
		VZoom:    v,
	}
}

func TestComputeLayout_Basic(t *testing.T) {
	g, err := ComputeLayout(testSnapshot(1, 1), testOptions())
	require.NoError(t, err)

	assert.Equal(t, Point{X: 150, Y: 0}, g.ContentOrigin)
	// ruler 30 + 2 lanes of 62 + bottom margin 20
	assert.InDelta(t, 30+2*62+20, g.SceneHeight, 1e-9)
	// max(x(end)=1110, x(lastEnd)=1100 + 40)
	assert.InDelta(t, 1140, g.ContentWidth, 1e-9)
	assert.InDelta(t, 150+1140, g.Bounds.W, 1e-9)

	require.Len(t, g.Headers, 2)
	require.Len(t, g.Lanes, 2)
	require.Len(t, g.Clips, 3)
	assert.Equal(t, "Video 1", g.Headers[0].Name)
	assert.False(t, g.Lanes[0].Alternate)
	assert.True(t, g.Lanes[1].Alternate)

	b := g.Clips[1]
	assert.Equal(t, "b", b.ClipID)
	assert.Equal(t, "v1", b.TrackID)
	assert.Equal(t, Rect{X: 700, Y: 30, W: 400, H: 60}, b.Rect)
	assert.Equal(t, "00:00:02:22", b.StartLabel) // 70 frames at 24 fps
	assert.Equal(t, "00:00:04:14", b.EndLabel)   // 110 frames

	c := g.Clips[2]
	assert.Equal(t, 1, c.TrackIndex)
	assert.InDelta(t, 92, c.Rect.Y, 1e-9)

	assert.Equal(t, "00:00:01:01", g.TimeText)
	assert.InDelta(t, 250, g.Playhead.X, 1e-9)
	assert.Equal(t, Segment{X: 250, Y1: 30, Y2: g.SceneHeight}, g.Playhead.Line)
	assert.Equal(t, Segment{X: 1110, Y1: 30, Y2: g.SceneHeight - 20}, g.EndMarker.Line)
}

func TestComputeLayout_EmptyTimeline(t *testing.T) {
	g, err := ComputeLayout(Snapshot{HZoom: 1, VZoom: 1}, testOptions())
	require.NoError(t, err)

	assert.Empty(t, g.Lanes)
	assert.Empty(t, g.Clips)
	assert.InDelta(t, 50, g.SceneHeight, 1e-9)
	assert.InDelta(t, 40, g.ContentWidth, 1e-9)
	assert.NotEmpty(t, g.Ruler.Ticks)
}

func TestComputeLayout_ZoomScalesPositionsNotStrokes(t *testing.T) {
	base, err := ComputeLayout(testSnapshot(1, 1), testOptions())
	require.NoError(t, err)
	zoomed, err := ComputeLayout(testSnapshot(2, 1), testOptions())
	require.NoError(t, err)

	for i := range base.Clips {
		assert.InDelta(t, 2*base.Clips[i].Rect.X, zoomed.Clips[i].Rect.X, 1e-9)
		assert.InDelta(t, 2*base.Clips[i].Rect.W, zoomed.Clips[i].Rect.W, 1e-9)
		assert.InDelta(t, base.Clips[i].Rect.Y, zoomed.Clips[i].Rect.Y, 1e-9)
		assert.InDelta(t, base.Clips[i].Rect.H, zoomed.Clips[i].Rect.H, 1e-9)
	}
	assert.InDelta(t, 2*base.Playhead.X, zoomed.Playhead.X, 1e-9)
	assert.InDelta(t, 2*base.EndMarker.X, zoomed.EndMarker.X, 1e-9)

	gripW := func(g Geometry) float64 { return g.Playhead.Grip[1].X - g.Playhead.Grip[0].X }
	assert.InDelta(t, gripW(base), gripW(zoomed), 1e-9)
	assert.Equal(t, base.Ruler.Rect.H, zoomed.Ruler.Rect.H)
	assert.Equal(t, base.TimeLabel, zoomed.TimeLabel)
	assert.Equal(t, base.Headers[0].Rect.W, zoomed.Headers[0].Rect.W)
}

func TestComputeLayout_VerticalZoom(t *testing.T) {
	g, err := ComputeLayout(testSnapshot(1, 2), testOptions())
	require.NoError(t, err)

	assert.InDelta(t, 120, g.Lanes[0].Rect.H, 1e-9)
	// spacing is not zoomed
	assert.InDelta(t, 30+120+2, g.Lanes[1].Rect.Y, 1e-9)
	assert.InDelta(t, 120, g.Headers[1].Rect.H, 1e-9)
}

func TestComputeLayout_Selection(t *testing.T) {
	s := testSnapshot(1, 1)
	s.Selected = "b"
	g, err := ComputeLayout(s, testOptions())
	require.NoError(t, err)

	assert.False(t, g.Clips[0].Selected)
	assert.True(t, g.Clips[1].Selected)
}

func TestComputeLayout_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Snapshot)
		field  string
	}{
		{"zero h zoom", func(s *Snapshot) { s.HZoom = 0 }, "horizontal zoom"},
		{"negative v zoom", func(s *Snapshot) { s.VZoom = -1 }, "vertical zoom"},
		{"negative duration", func(s *Snapshot) { s.Tracks[0].Clips[0].Duration = -5 }, "clip duration"},
		{"negative start", func(s *Snapshot) { s.Tracks[1].Clips[0].Start = -1 }, "clip start"},
		{"playhead past end", func(s *Snapshot) { s.Playhead = 200 }, "playhead"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSnapshot(1, 1)
			tt.modify(&s)
			_, err := ComputeLayout(s, testOptions())

			var invalidErr *InvalidDataError
			require.True(t, errors.As(err, &invalidErr))
			assert.Equal(t, tt.field, invalidErr.Field)
			assert.Equal(t, "layout", invalidErr.Op)
		})
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		name string
		ppu  float64
		unit timecode.Unit
		want float64
	}{
		{"frames at zoom 1", 10, timecode.Frames, 12},
		{"seconds at zoom 1", 10, timecode.Seconds, 15},
		{"seconds zoomed in", 1000, timecode.Seconds, 0.1},
		{"frames zoomed in", 1000, timecode.Frames, 1},
		{"frames at table end", 0.001, timecode.Frames, 86400},
		{"frames past table end", 0.0001, timecode.Frames, 691200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TickInterval(tt.ppu, tt.unit, 50, 150), 1e-9)
		})
	}
}

func TestRuler_Ticks(t *testing.T) {
	g, err := ComputeLayout(testSnapshot(1, 1), testOptions())
	require.NoError(t, err)
	r := g.Ruler

	assert.InDelta(t, 12, r.MajorInterval, 1e-9)
	assert.InDelta(t, 6, r.MinorInterval, 1e-9)

	require.NotEmpty(t, r.Ticks)
	assert.True(t, r.Ticks[0].Major)
	assert.Equal(t, "00:00:00:00", r.Ticks[0].Label)
	assert.False(t, r.Ticks[1].Major)
	assert.Empty(t, r.Ticks[1].Label)
	assert.InDelta(t, 60, r.Ticks[1].X, 1e-9)
	assert.True(t, r.Ticks[2].Major)
	assert.Equal(t, "00:00:00:12", r.Ticks[2].Label)

	last := r.Ticks[len(r.Ticks)-1]
	assert.LessOrEqual(t, last.X, g.ContentWidth)
	assert.Greater(t, last.X+r.MinorInterval*10, g.ContentWidth)
}

func TestRuler_TickCountBounded(t *testing.T) {
	tests := []struct {
		name string
		end  float64
		h    float64
	}{
		{"normal timeline", 111, 1},
		{"hour of frames", 86400, 1},
		{"huge end marker", 1e9, 0.535},
		{"huge end marker zoomed in", 1e9, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSnapshot(tt.h, 1)
			s.End = tt.end
			g, err := ComputeLayout(s, testOptions())
			require.NoError(t, err)
			r := g.Ruler

			require.NotEmpty(t, r.Ticks)
			assert.LessOrEqual(t, len(r.Ticks), maxRulerTicks+1)
			assert.True(t, r.Ticks[0].Major)
			assert.InDelta(t, 0, r.Ticks[0].X, 1e-9)

			last := r.Ticks[len(r.Ticks)-1]
			minorPx := r.MinorInterval * 10 * tt.h
			assert.LessOrEqual(t, last.X, g.ContentWidth*(1+1e-12))
			assert.Greater(t, last.X+minorPx, g.ContentWidth, "ticks span the content")
			assert.Zero(t, math.Mod(r.MinorInterval, 1), "frame ticks stay on whole frames")
		})
	}
}

func TestHitTest(t *testing.T) {
	g, err := ComputeLayout(testSnapshot(1, 1), testOptions())
	require.NoError(t, err)

	tests := []struct {
		name string
		x, y float64
		want Target
	}{
		{"grip", 252, 20, Target{Kind: TargetPlayheadGrip}},
		{"playhead line over clip", 251, 60, Target{Kind: TargetPlayheadLine}},
		{"end marker", 1112, 60, Target{Kind: TargetEndMarker}},
		{"clip", 800, 60, Target{Kind: TargetClip, ClipID: "b", TrackID: "v1"}},
		{"ruler", 600, 10, Target{Kind: TargetRuler}},
		{"lane", 650, 60, Target{Kind: TargetLane, TrackID: "v1"}},
		{"second lane", 650, 120, Target{Kind: TargetLane, TrackID: "a1"}},
		{"outside", 600, 500, Target{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HitTest(g, tt.x, tt.y, 4))
		})
	}
}
