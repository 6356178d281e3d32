// Package theme resolves the timeline's configuration object: a named preset
// ("dark" or "light") overlaid with caller-supplied keys.
package theme

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownKey is returned when an override names a key outside the
// enumerated set, or when a preset name is not recognized.
var ErrUnknownKey = errors.New("unknown theme key")

// Preset names.
const (
	Dark  = "dark"
	Light = "light"
)

// Metrics are the layout constants, in pixels unless noted.
type Metrics struct {
	HeaderWidth       float64 // pinned track-header column
	RulerHeight       float64
	BottomMargin      float64
	TrackSpacing      float64 // gap between lanes, not zoomed
	BasePixelsPerUnit float64 // pixels per time unit at hZoom 1
	LaneHeight        float64 // lane height at vZoom 1
	SnapTolerance     float64
	SceneMargin       float64 // extra width after the last clip
	RulerMinSpacing   float64
	RulerMaxSpacing   float64
	RulerMinorSpacing float64
	HandleTolerance   float64 // grab distance for line handles
	GripSize          float64 // playhead triangle width and height
}

// Colors are hex colour strings ("#rrggbb").
type Colors struct {
	TimeLabelBg       string
	TimeLabelText     string
	RulerBg           string
	RulerTickMajor    string
	RulerTickMinor    string
	Playhead          string
	TrackHeaderBg     string
	TrackHeaderText   string
	TrackHeaderBorder string
	TrackLaneBg1      string
	TrackLaneBg2      string
	TrackLaneBorder   string
	ClipFill          string
	ClipFillSelected  string
	ClipBorder        string
	EndLine           string
	Background        string
}

// Theme is a fully resolved configuration: every key has a value.
type Theme struct {
	Name    string
	Metrics Metrics
	Colors  Colors
}

var defaultMetrics = Metrics{
	HeaderWidth:       150,
	RulerHeight:       30,
	BottomMargin:      20,
	TrackSpacing:      2,
	BasePixelsPerUnit: 10,
	LaneHeight:        60,
	SnapTolerance:     8,
	SceneMargin:       40,
	RulerMinSpacing:   50,
	RulerMaxSpacing:   150,
	RulerMinorSpacing: 8,
	HandleTolerance:   4,
	GripSize:          15,
}

var presets = map[string]Colors{
	Dark: {
		TimeLabelBg:      "#141414",
		TimeLabelText:    "#ffffff",
		RulerBg:          "#1e1e1e",
		RulerTickMajor:   "#ffffff",
		RulerTickMinor:   "#808080",
		Playhead:         "#ffa500",
		TrackHeaderBg:    "#282828",
		TrackHeaderText:  "#ffffff",
		TrackLaneBg1:     "#323232",
		TrackLaneBg2:     "#3e3e3e",
		TrackLaneBorder:  "#505050",
		ClipFill:         "#6496c8",
		ClipFillSelected: "#96c8ff",
		ClipBorder:       "#000000",
		EndLine:          "#c83232",
		Background:       "#111111",
	},
	Light: {
		TimeLabelBg:      "#f0f0f0",
		TimeLabelText:    "#000000",
		RulerBg:          "#e0e0e0",
		RulerTickMajor:   "#000000",
		RulerTickMinor:   "#808080",
		Playhead:         "#ff8c00",
		TrackHeaderBg:    "#d0d0d0",
		TrackHeaderText:  "#000000",
		TrackLaneBg1:     "#e8e8e8",
		TrackLaneBg2:     "#f0f0f0",
		TrackLaneBorder:  "#a0a0a0",
		ClipFill:         "#90caf9",
		ClipFillSelected: "#64b5f6",
		ClipBorder:       "#000000",
		EndLine:          "#e53935",
		Background:       "#ffffff",
	},
}

// Presets returns the recognized preset names, sorted.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the dark preset.
func Default() Theme {
	t, _ := Preset(Dark)
	return t
}

// Preset returns the named preset with default metrics.
func Preset(name string) (Theme, error) {
	colors, ok := presets[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: preset %q", ErrUnknownKey, name)
	}
	if colors.TrackHeaderBorder == "" {
		colors.TrackHeaderBorder = colors.TrackLaneBorder
	}
	return Theme{Name: name, Metrics: defaultMetrics, Colors: colors}, nil
}

// Resolve starts from the named preset (dark when empty) and overlays the
// given keys. Metric values may be numbers or numeric strings; colour values
// must be hex strings. Any omitted key keeps the preset's value.
func Resolve(preset string, overrides map[string]any) (Theme, error) {
	if preset == "" {
		preset = Dark
	}
	t, err := Preset(preset)
	if err != nil {
		return Theme{}, err
	}

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// track_header_border follows track_lane_border unless set explicitly.
	explicitBorder := false
	for _, name := range keys {
		key := Key(strings.ToLower(name))
		if key == KeyTrackHeaderBorder {
			explicitBorder = true
		}
		if err := t.set(key, overrides[name]); err != nil {
			return Theme{}, err
		}
	}
	if !explicitBorder {
		t.Colors.TrackHeaderBorder = t.Colors.TrackLaneBorder
	}
	if err := t.Metrics.validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

func (t *Theme) set(key Key, value any) error {
	if f, ok := t.Metrics.field(key); ok {
		v, err := toFloat(value)
		if err != nil {
			return fmt.Errorf("theme key %q: %w", key, err)
		}
		*f = v
		return nil
	}
	if f, ok := t.Colors.field(key); ok {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("theme key %q: expected colour string, got %T", key, value)
		}
		c, err := colorful.Hex(normalizeHex(s))
		if err != nil {
			return fmt.Errorf("theme key %q: %w", key, err)
		}
		*f = c.Hex()
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

func (m Metrics) validate() error {
	positive := map[Key]float64{
		KeyBasePixelsPerUnit: m.BasePixelsPerUnit,
		KeyLaneHeight:        m.LaneHeight,
		KeyRulerMinSpacing:   m.RulerMinSpacing,
		KeyRulerMaxSpacing:   m.RulerMaxSpacing,
	}
	for k, v := range positive {
		if v <= 0 {
			return fmt.Errorf("theme key %q must be positive, got %v", k, v)
		}
	}
	nonNegative := map[Key]float64{
		KeyHeaderWidth:       m.HeaderWidth,
		KeyRulerHeight:       m.RulerHeight,
		KeyBottomMargin:      m.BottomMargin,
		KeyTrackSpacing:      m.TrackSpacing,
		KeySnapTolerance:     m.SnapTolerance,
		KeySceneMargin:       m.SceneMargin,
		KeyRulerMinorSpacing: m.RulerMinorSpacing,
		KeyHandleTolerance:   m.HandleTolerance,
		KeyGripSize:          m.GripSize,
	}
	for k, v := range nonNegative {
		if v < 0 {
			return fmt.Errorf("theme key %q must not be negative, got %v", k, v)
		}
	}
	if m.RulerMaxSpacing < m.RulerMinSpacing {
		return fmt.Errorf("theme key %q (%v) is below %q (%v)",
			KeyRulerMaxSpacing, m.RulerMaxSpacing, KeyRulerMinSpacing, m.RulerMinSpacing)
	}
	return nil
}

func toFloat(value any) (float64, error) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, err
		}
		f = parsed
	default:
		return 0, fmt.Errorf("expected number, got %T", value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("expected finite number, got %v", f)
	}
	return f, nil
}

// normalizeHex accepts "#RGB", "#RRGGBB" and the same without '#'.
func normalizeHex(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	return "#" + strings.ToLower(s)
}
