//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"

	"github.com/llehouerou/cutline/internal/theme"
	"github.com/llehouerou/cutline/internal/timeline"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/logs/cutline.log",
			expected: filepath.Join(home, "logs", "cutline.log"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/log/cutline.log",
			expected: "/var/log/cutline.log",
		},
		{
			name:     "relative path unchanged",
			input:    "logs/cutline.log",
			expected: "logs/cutline.log",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}

	expectedFirst := filepath.Join(xdg.ConfigHome, "cutline", "config.toml")
	if paths[0] != expectedFirst {
		t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
	}

	// Last path should be local config.toml
	if paths[1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "config.toml")
	}
}

func TestGetTimelineConfig_Defaults(t *testing.T) {
	cfg := Config{}
	tc := cfg.GetTimelineConfig()

	if tc.Unit != "frames" {
		t.Errorf("Unit = %q, want %q", tc.Unit, "frames")
	}
	if tc.FPS != 24 {
		t.Errorf("FPS = %d, want 24", tc.FPS)
	}
	if tc.EmptyEnd != 0 {
		t.Errorf("EmptyEnd = %f, want 0", tc.EmptyEnd)
	}
	if tc.EndPadding == nil || *tc.EndPadding != timeline.DefaultEndPadding {
		t.Errorf("EndPadding = %v, want %v", tc.EndPadding, timeline.DefaultEndPadding)
	}
	if tc.Loop == nil || !*tc.Loop {
		t.Errorf("Loop = %v, want true", tc.Loop)
	}
}

func TestGetTimelineConfig_InvalidValues(t *testing.T) {
	negative := -3.0
	cfg := Config{
		Timeline: TimelineConfig{
			FPS:        -5,        // should become 24
			EmptyEnd:   -10,       // should become 0
			EndPadding: &negative, // should become 1
		},
	}

	tc := cfg.GetTimelineConfig()

	if tc.FPS != 24 {
		t.Errorf("FPS with invalid value = %d, want 24", tc.FPS)
	}
	if tc.EmptyEnd != 0 {
		t.Errorf("EmptyEnd with invalid value = %f, want 0", tc.EmptyEnd)
	}
	if *tc.EndPadding != 1 {
		t.Errorf("EndPadding with invalid value = %f, want 1", *tc.EndPadding)
	}
}

func TestGetTimelineConfig_ExplicitZeroPadding(t *testing.T) {
	zero := 0.0
	off := false
	cfg := Config{Timeline: TimelineConfig{EndPadding: &zero, Loop: &off}}

	tc := cfg.GetTimelineConfig()

	if *tc.EndPadding != 0 {
		t.Errorf("EndPadding = %f, want 0", *tc.EndPadding)
	}
	if *tc.Loop {
		t.Error("Loop = true, want false")
	}
}

func TestTimelineOptions(t *testing.T) {
	padding := 5.0
	cfg := Config{Timeline: TimelineConfig{Unit: "seconds", FPS: 30, EmptyEnd: 60, EndPadding: &padding}}

	opts, err := cfg.TimelineOptions()
	if err != nil {
		t.Fatalf("TimelineOptions() error = %v", err)
	}

	e := timeline.New(theme.Default(), opts...)
	if e.EndMarkerTime() != 60 {
		t.Errorf("EndMarkerTime() = %f, want 60", e.EndMarkerTime())
	}
	if got := e.Labels().Format(1.5); got != "00:00:01:15" {
		t.Errorf("Labels().Format(1.5) = %q, want %q", got, "00:00:01:15")
	}
	if _, err := e.AddTrack(timeline.TrackData{Clips: []timeline.ClipData{{Start: 0, Duration: 70}}}); err != nil {
		t.Fatalf("AddTrack() error = %v", err)
	}
	if e.EndMarkerTime() != 75 {
		t.Errorf("EndMarkerTime() after clip = %f, want 75", e.EndMarkerTime())
	}

	cfg.Timeline.Unit = "fortnights"
	if _, err := cfg.TimelineOptions(); err == nil {
		t.Error("TimelineOptions() expected error for unknown unit, got nil")
	}
}

func TestLoadFrom_EmptyConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "dark")
	}
	if cfg.HasTracks() {
		t.Error("HasTracks() = true for empty config")
	}
}

func TestLoadFrom_MissingFileSkipped(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "dark")
	}
}

func TestLoadFrom_BasicConfig(t *testing.T) {
	configContent := `
theme = "Light"

[theme_overrides]
clip_fill = "#ff8800"
snap_tolerance = 12

[timeline]
unit = "seconds"
fps = 25
end_padding = 2.5

[log]
level = "debug"
file = "~/cutline/debug.log"

[[tracks]]
id = "v1"
name = "Video 1"

  [[tracks.clips]]
  id = "a"
  name = "intro"
  start = 10
  duration = 50

  [[tracks.clips]]
  name = "scene"
  start = 70.5
  duration = 40

[[tracks]]
name = "Audio 1"
`
	path := writeConfig(t, t.TempDir(), configContent)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "light")
	}

	th, err := cfg.ResolveTheme()
	if err != nil {
		t.Fatalf("ResolveTheme() error = %v", err)
	}
	if th.Colors.ClipFill != "#ff8800" {
		t.Errorf("ClipFill = %q, want %q", th.Colors.ClipFill, "#ff8800")
	}
	if th.Metrics.SnapTolerance != 12 {
		t.Errorf("SnapTolerance = %f, want 12", th.Metrics.SnapTolerance)
	}

	tc := cfg.GetTimelineConfig()
	if tc.Unit != "seconds" || tc.FPS != 25 || *tc.EndPadding != 2.5 {
		t.Errorf("timeline = %+v, want seconds/25/2.5", tc)
	}

	home, _ := os.UserHomeDir()
	if expected := filepath.Join(home, "cutline", "debug.log"); cfg.Log.File != expected {
		t.Errorf("Log.File = %q, want %q", cfg.Log.File, expected)
	}
	if lc := cfg.LoggingConfig(); lc.Level != "debug" {
		t.Errorf("LoggingConfig().Level = %q, want %q", lc.Level, "debug")
	}

	tracks := cfg.SeedTracks()
	if len(tracks) != 2 {
		t.Fatalf("SeedTracks() length = %d, want 2", len(tracks))
	}
	if tracks[0].ID != "v1" || tracks[0].Name != "Video 1" {
		t.Errorf("tracks[0] = %+v", tracks[0])
	}
	if len(tracks[0].Clips) != 2 {
		t.Fatalf("tracks[0].Clips length = %d, want 2", len(tracks[0].Clips))
	}
	if c := tracks[0].Clips[1]; c.ID != "" || c.Start != 70.5 || c.Duration != 40 {
		t.Errorf("tracks[0].Clips[1] = %+v", c)
	}
	if tracks[1].Name != "Audio 1" || len(tracks[1].Clips) != 0 {
		t.Errorf("tracks[1] = %+v", tracks[1])
	}
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	first := writeConfig(t, t.TempDir(), "theme = \"light\"\n[timeline]\nfps = 30\n")
	second := writeConfig(t, t.TempDir(), "theme = \"dark\"\n")

	cfg, err := LoadFrom(first, second)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "dark")
	}
	if cfg.Timeline.FPS != 30 {
		t.Errorf("Timeline.FPS = %d, want 30 from the first file", cfg.Timeline.FPS)
	}
}

func TestLoadFrom_InvalidToml(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "invalid = [[[")

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() expected error for invalid TOML, got nil")
	}
}

func TestResolveTheme_UnknownOverride(t *testing.T) {
	cfg := Config{Theme: "dark", ThemeOverrides: map[string]any{"sparkle": "#fff"}}

	if _, err := cfg.ResolveTheme(); err == nil {
		t.Error("ResolveTheme() expected error for unknown key, got nil")
	}
}

func TestLoad_WorkingDirectoryConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	writeConfig(t, tmpDir, "[timeline]\nfps = 50\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// ./config.toml has the highest priority
	if cfg.Timeline.FPS != 50 {
		t.Errorf("Timeline.FPS = %d, want 50", cfg.Timeline.FPS)
	}
}
