package theme

// Key names a recognized configuration entry.
type Key string

// Metric keys.
const (
	KeyHeaderWidth       Key = "header_width"
	KeyRulerHeight       Key = "ruler_height"
	KeyBottomMargin      Key = "bottom_margin"
	KeyTrackSpacing      Key = "track_spacing"
	KeyBasePixelsPerUnit Key = "base_pixels_per_unit"
	KeyLaneHeight        Key = "lane_height"
	KeySnapTolerance     Key = "snap_tolerance"
	KeySceneMargin       Key = "scene_margin"
	KeyRulerMinSpacing   Key = "ruler_min_spacing"
	KeyRulerMaxSpacing   Key = "ruler_max_spacing"
	KeyRulerMinorSpacing Key = "ruler_minor_spacing"
	KeyHandleTolerance   Key = "handle_tolerance"
	KeyGripSize          Key = "grip_size"
)

// Colour keys.
const (
	KeyTimeLabelBg       Key = "time_label_bg"
	KeyTimeLabelText     Key = "time_label_text"
	KeyRulerBg           Key = "ruler_bg"
	KeyRulerTickMajor    Key = "ruler_tick_major"
	KeyRulerTickMinor    Key = "ruler_tick_minor"
	KeyPlayheadColor     Key = "playhead_color"
	KeyTrackHeaderBg     Key = "track_header_bg"
	KeyTrackHeaderText   Key = "track_header_text"
	KeyTrackHeaderBorder Key = "track_header_border"
	KeyTrackLaneBg1      Key = "track_lane_bg1"
	KeyTrackLaneBg2      Key = "track_lane_bg2"
	KeyTrackLaneBorder   Key = "track_lane_border"
	KeyClipFill          Key = "clip_fill"
	KeyClipFillSelected  Key = "clip_fill_selected"
	KeyClipBorder        Key = "clip_border"
	KeyEndLineColor      Key = "end_line_color"
	KeyBackgroundColor   Key = "background_color"
)

// Keys returns every recognized key, metrics first.
func Keys() []Key {
	return []Key{
		KeyHeaderWidth, KeyRulerHeight, KeyBottomMargin, KeyTrackSpacing,
		KeyBasePixelsPerUnit, KeyLaneHeight, KeySnapTolerance, KeySceneMargin,
		KeyRulerMinSpacing, KeyRulerMaxSpacing, KeyRulerMinorSpacing,
		KeyHandleTolerance, KeyGripSize,
		KeyTimeLabelBg, KeyTimeLabelText, KeyRulerBg, KeyRulerTickMajor,
		KeyRulerTickMinor, KeyPlayheadColor, KeyTrackHeaderBg, KeyTrackHeaderText,
		KeyTrackHeaderBorder, KeyTrackLaneBg1, KeyTrackLaneBg2, KeyTrackLaneBorder,
		KeyClipFill, KeyClipFillSelected, KeyClipBorder, KeyEndLineColor,
		KeyBackgroundColor,
	}
}

func (m *Metrics) field(k Key) (*float64, bool) {
	switch k {
	case KeyHeaderWidth:
		return &m.HeaderWidth, true
	case KeyRulerHeight:
		return &m.RulerHeight, true
	case KeyBottomMargin:
		return &m.BottomMargin, true
	case KeyTrackSpacing:
		return &m.TrackSpacing, true
	case KeyBasePixelsPerUnit:
		return &m.BasePixelsPerUnit, true
	case KeyLaneHeight:
		return &m.LaneHeight, true
	case KeySnapTolerance:
		return &m.SnapTolerance, true
	case KeySceneMargin:
		return &m.SceneMargin, true
	case KeyRulerMinSpacing:
		return &m.RulerMinSpacing, true
	case KeyRulerMaxSpacing:
		return &m.RulerMaxSpacing, true
	case KeyRulerMinorSpacing:
		return &m.RulerMinorSpacing, true
	case KeyHandleTolerance:
		return &m.HandleTolerance, true
	case KeyGripSize:
		return &m.GripSize, true
	}
	return nil, false
}

func (c *Colors) field(k Key) (*string, bool) {
	switch k {
	case KeyTimeLabelBg:
		return &c.TimeLabelBg, true
	case KeyTimeLabelText:
		return &c.TimeLabelText, true
	case KeyRulerBg:
		return &c.RulerBg, true
	case KeyRulerTickMajor:
		return &c.RulerTickMajor, true
	case KeyRulerTickMinor:
		return &c.RulerTickMinor, true
	case KeyPlayheadColor:
		return &c.Playhead, true
	case KeyTrackHeaderBg:
		return &c.TrackHeaderBg, true
	case KeyTrackHeaderText:
		return &c.TrackHeaderText, true
	case KeyTrackHeaderBorder:
		return &c.TrackHeaderBorder, true
	case KeyTrackLaneBg1:
		return &c.TrackLaneBg1, true
	case KeyTrackLaneBg2:
		return &c.TrackLaneBg2, true
	case KeyTrackLaneBorder:
		return &c.TrackLaneBorder, true
	case KeyClipFill:
		return &c.ClipFill, true
	case KeyClipFillSelected:
		return &c.ClipFillSelected, true
	case KeyClipBorder:
		return &c.ClipBorder, true
	case KeyEndLineColor:
		return &c.EndLine, true
	case KeyBackgroundColor:
		return &c.Background, true
	}
	return nil, false
}
