package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreset(t *testing.T) {
	tests := []struct {
		name     string
		preset   string
		clipFill string
		wantErr  bool
	}{
		{name: "dark", preset: Dark, clipFill: "#6496c8"},
		{name: "light", preset: Light, clipFill: "#90caf9"},
		{name: "unknown", preset: "solarized", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th, err := Preset(tt.preset)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.preset, th.Name)
			assert.Equal(t, tt.clipFill, th.Colors.ClipFill)
			assert.InDelta(t, 150.0, th.Metrics.HeaderWidth, 0)
			assert.Equal(t, th.Colors.TrackLaneBorder, th.Colors.TrackHeaderBorder)
		})
	}
}

func TestResolve_EmptyPresetIsDark(t *testing.T) {
	th, err := Resolve("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), th)
}

func TestResolve_OverlaysKeys(t *testing.T) {
	th, err := Resolve(Light, map[string]any{
		"lane_height":    80,
		"snap_tolerance": "12.5",
		"clip_fill":      "#ABC",
		"Ruler_BG":       "102030",
	})
	require.NoError(t, err)

	assert.Equal(t, Light, th.Name)
	assert.InDelta(t, 80.0, th.Metrics.LaneHeight, 0)
	assert.InDelta(t, 12.5, th.Metrics.SnapTolerance, 0)
	assert.Equal(t, "#aabbcc", th.Colors.ClipFill)
	assert.Equal(t, "#102030", th.Colors.RulerBg)
	// omitted keys keep the light preset values
	assert.Equal(t, "#ff8c00", th.Colors.Playhead)
	assert.InDelta(t, 30.0, th.Metrics.RulerHeight, 0)
}

func TestResolve_HeaderBorderFollowsLaneBorder(t *testing.T) {
	th, err := Resolve(Dark, map[string]any{"track_lane_border": "#010203"})
	require.NoError(t, err)
	assert.Equal(t, "#010203", th.Colors.TrackHeaderBorder)

	th, err = Resolve(Dark, map[string]any{
		"track_lane_border":   "#010203",
		"track_header_border": "#ff0000",
	})
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", th.Colors.TrackHeaderBorder)
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
		unknown   bool
	}{
		{name: "unknown key", overrides: map[string]any{"toolbar_height": 10}, unknown: true},
		{name: "colour not a string", overrides: map[string]any{"clip_fill": 12}},
		{name: "bad colour", overrides: map[string]any{"clip_fill": "#zzzzzz"}},
		{name: "metric not a number", overrides: map[string]any{"lane_height": true}},
		{name: "metric bad string", overrides: map[string]any{"lane_height": "tall"}},
		{name: "zero lane height", overrides: map[string]any{"lane_height": 0}},
		{name: "negative spacing", overrides: map[string]any{"track_spacing": -1}},
		{name: "inverted ruler window", overrides: map[string]any{"ruler_min_spacing": 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(Dark, tt.overrides)
			require.Error(t, err)
			assert.Equal(t, tt.unknown, errors.Is(err, ErrUnknownKey))
		})
	}
}

func TestKeys_AllSettable(t *testing.T) {
	th := Default()
	for _, k := range Keys() {
		_, metric := th.Metrics.field(k)
		_, colour := th.Colors.field(k)
		assert.True(t, metric != colour, "key %q must be exactly one of metric or colour", k)
	}
	assert.Equal(t, []string{Dark, Light}, Presets())
}
