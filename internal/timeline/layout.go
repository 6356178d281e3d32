package timeline

import (
	"math"

	"github.com/llehouerou/cutline/internal/theme"
	"github.com/llehouerou/cutline/internal/timecode"
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

// Right returns X + W.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns Y + H.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether (x, y) lies inside the rectangle, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Point is a 2D point.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Segment is a vertical line at X from Y1 to Y2.
type Segment struct {
	X  float64 `json:"x" yaml:"x"`
	Y1 float64 `json:"y1" yaml:"y1"`
	Y2 float64 `json:"y2" yaml:"y2"`
}

// Tick is one ruler graduation. Only major ticks carry a label.
type Tick struct {
	X     float64 `json:"x" yaml:"x"`
	Time  float64 `json:"time" yaml:"time"`
	Major bool    `json:"major" yaml:"major"`
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
}

// Ruler is the time ruler above the lanes.
type Ruler struct {
	Rect          Rect    `json:"rect" yaml:"rect"`
	MajorInterval float64 `json:"major_interval" yaml:"major_interval"`
	MinorInterval float64 `json:"minor_interval" yaml:"minor_interval"`
	Ticks         []Tick  `json:"ticks" yaml:"ticks"`
}

// TrackHeader is a track's name cell in the pinned header column.
type TrackHeader struct {
	TrackID string `json:"track_id" yaml:"track_id"`
	Name    string `json:"name" yaml:"name"`
	Index   int    `json:"index" yaml:"index"`
	Rect    Rect   `json:"rect" yaml:"rect"`
}

// Lane is a track's content row.
type Lane struct {
	TrackID   string `json:"track_id" yaml:"track_id"`
	Index     int    `json:"index" yaml:"index"`
	Rect      Rect   `json:"rect" yaml:"rect"`
	Alternate bool   `json:"alternate" yaml:"alternate"`
}

// ClipBox is the geometry of one clip.
type ClipBox struct {
	ClipID     string  `json:"clip_id" yaml:"clip_id"`
	TrackID    string  `json:"track_id" yaml:"track_id"`
	Name       string  `json:"name" yaml:"name"`
	TrackIndex int     `json:"track_index" yaml:"track_index"`
	ClipIndex  int     `json:"clip_index" yaml:"clip_index"`
	Start      float64 `json:"start" yaml:"start"`
	End        float64 `json:"end" yaml:"end"`
	Rect       Rect    `json:"rect" yaml:"rect"`
	StartLabel string  `json:"start_label" yaml:"start_label"`
	EndLabel   string  `json:"end_label" yaml:"end_label"`
	Selected   bool    `json:"selected" yaml:"selected"`
}

// PlayheadGeometry positions both playhead handles at one X.
type PlayheadGeometry struct {
	Time float64  `json:"time" yaml:"time"`
	X    float64  `json:"x" yaml:"x"`
	Line Segment  `json:"line" yaml:"line"`
	Grip [3]Point `json:"grip" yaml:"grip"`
}

// EndMarkerGeometry positions the end-of-timeline line.
type EndMarkerGeometry struct {
	Time float64 `json:"time" yaml:"time"`
	X    float64 `json:"x" yaml:"x"`
	Line Segment `json:"line" yaml:"line"`
}

// Geometry is the complete layout of the timeline scene.
//
// Content elements (ruler ticks, lanes, clips, playhead, end marker) use
// content-space X, measured from time 0; a renderer draws them at
// ContentOrigin.X + x minus its scroll offset. Headers and the time label use
// scene X. Every Y is scene Y.
type Geometry struct {
	HZoom         float64           `json:"h_zoom" yaml:"h_zoom"`
	VZoom         float64           `json:"v_zoom" yaml:"v_zoom"`
	ContentOrigin Point             `json:"content_origin" yaml:"content_origin"`
	ContentWidth  float64           `json:"content_width" yaml:"content_width"`
	SceneHeight   float64           `json:"scene_height" yaml:"scene_height"`
	Bounds        Rect              `json:"bounds" yaml:"bounds"`
	TimeLabel     Rect              `json:"time_label" yaml:"time_label"`
	TimeText      string            `json:"time_text" yaml:"time_text"`
	Ruler         Ruler             `json:"ruler" yaml:"ruler"`
	Headers       []TrackHeader     `json:"headers" yaml:"headers"`
	Lanes         []Lane            `json:"lanes" yaml:"lanes"`
	Clips         []ClipBox         `json:"clips" yaml:"clips"`
	Playhead      PlayheadGeometry  `json:"playhead" yaml:"playhead"`
	EndMarker     EndMarkerGeometry `json:"end_marker" yaml:"end_marker"`
}

// Snapshot is the time-domain input of a layout pass.
type Snapshot struct {
	Tracks   []TrackData
	Playhead float64
	End      float64
	HZoom    float64
	VZoom    float64
	Selected string // selected clip ID, if any
}

// LayoutOptions are the constants a layout pass reads.
type LayoutOptions struct {
	Metrics theme.Metrics
	Labels  timecode.Formatter
}

// ComputeLayout derives absolute geometry for every element from time-domain
// values and the current zoom. It is a pure function: nothing is cached and
// no scale transform is applied to an earlier result, so stroke and text
// metrics stay constant while positions and sizes follow the zoom.
func ComputeLayout(s Snapshot, opts LayoutOptions) (Geometry, error) {
	const op = "layout"
	if err := validateSnapshot(op, s); err != nil {
		return Geometry{}, err
	}

	met := opts.Metrics
	mp := NewMapper(met, s.HZoom, s.VZoom)

	// 1. scene extent
	sceneHeight := mp.TrackToY(len(s.Tracks)) + met.BottomMargin
	lastEnd, _ := lastClipEnd(s.Tracks)
	contentWidth := math.Max(mp.TimeToX(s.End), mp.TimeToX(lastEnd)+met.SceneMargin)

	g := Geometry{
		HZoom:         s.HZoom,
		VZoom:         s.VZoom,
		ContentOrigin: Point{X: met.HeaderWidth, Y: 0},
		ContentWidth:  contentWidth,
		SceneHeight:   sceneHeight,
		Bounds:        Rect{W: met.HeaderWidth + contentWidth, H: sceneHeight},
		TimeLabel:     Rect{W: met.HeaderWidth, H: met.RulerHeight},
		TimeText:      opts.Labels.Format(s.Playhead),
		Headers:       make([]TrackHeader, 0, len(s.Tracks)),
		Lanes:         make([]Lane, 0, len(s.Tracks)),
	}

	// 2-3. headers, lanes, clips
	for i, tr := range s.Tracks {
		y := mp.TrackToY(i)
		h := mp.LaneHeight()
		g.Headers = append(g.Headers, TrackHeader{
			TrackID: tr.ID,
			Name:    tr.Name,
			Index:   i,
			Rect:    Rect{X: 0, Y: y, W: met.HeaderWidth, H: h},
		})
		g.Lanes = append(g.Lanes, Lane{
			TrackID:   tr.ID,
			Index:     i,
			Rect:      Rect{X: 0, Y: y, W: contentWidth, H: h},
			Alternate: i%2 == 1,
		})
		for j, c := range tr.Clips {
			g.Clips = append(g.Clips, clipBox(mp, opts.Labels, tr.ID, c, i, j, s.Selected))
		}
	}

	// 4. ruler
	g.Ruler = layoutRuler(Rect{W: contentWidth, H: met.RulerHeight}, contentWidth, mp.PixelsPerUnit(), opts)

	// 5. playhead and end marker
	px := mp.TimeToX(s.Playhead)
	half := met.GripSize / 2
	g.Playhead = PlayheadGeometry{
		Time: s.Playhead,
		X:    px,
		Line: Segment{X: px, Y1: met.RulerHeight, Y2: sceneHeight},
		Grip: [3]Point{
			{X: px - half, Y: met.RulerHeight - met.GripSize},
			{X: px + half, Y: met.RulerHeight - met.GripSize},
			{X: px, Y: met.RulerHeight},
		},
	}
	ex := mp.TimeToX(s.End)
	g.EndMarker = EndMarkerGeometry{
		Time: s.End,
		X:    ex,
		Line: Segment{X: ex, Y1: met.RulerHeight, Y2: sceneHeight - met.BottomMargin},
	}

	return g, nil
}

// clipBox lays out a single clip inside its track's lane.
func clipBox(mp Mapper, labels timecode.Formatter, trackID string, c ClipData, ti, ci int, selected string) ClipBox {
	x := mp.TimeToX(c.Start)
	return ClipBox{
		ClipID:     c.ID,
		TrackID:    trackID,
		Name:       c.Name,
		TrackIndex: ti,
		ClipIndex:  ci,
		Start:      c.Start,
		End:        c.End(),
		Rect: Rect{
			X: x,
			Y: mp.TrackToY(ti),
			W: mp.TimeToX(c.End()) - x,
			H: mp.LaneHeight(),
		},
		StartLabel: labels.Format(c.Start),
		EndLabel:   labels.Format(c.End()),
		Selected:   selected != "" && c.ID == selected,
	}
}

func validateZoom(op string, h, v float64) error {
	if !finite(h) || h <= 0 {
		return invalid(op, "horizontal zoom", "must be a finite value > 0")
	}
	if !finite(v) || v <= 0 {
		return invalid(op, "vertical zoom", "must be a finite value > 0")
	}
	return nil
}

func validateSnapshot(op string, s Snapshot) error {
	if err := validateZoom(op, s.HZoom, s.VZoom); err != nil {
		return err
	}
	if !finite(s.End) || s.End < 0 {
		return invalid(op, "end marker", "must be a finite value >= 0")
	}
	if !finite(s.Playhead) || s.Playhead < 0 || s.Playhead > s.End {
		return invalid(op, "playhead", "must lie within [0, end marker]")
	}
	for _, tr := range s.Tracks {
		for _, c := range tr.Clips {
			if err := c.validate(op); err != nil {
				return err
			}
		}
	}
	return nil
}
