package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/cutline/internal/logging"
	"github.com/llehouerou/cutline/internal/theme"
	"github.com/llehouerou/cutline/internal/timecode"
	"github.com/llehouerou/cutline/internal/timeline"
)

type Config struct {
	Theme          string         `koanf:"theme"`           // "dark" or "light"
	ThemeOverrides map[string]any `koanf:"theme_overrides"` // colour and metric keys over the preset

	Timeline TimelineConfig `koanf:"timeline"`
	Log      LogConfig      `koanf:"log"`

	// Tracks seed the timeline at startup.
	Tracks []TrackConfig `koanf:"tracks"`
}

// TimelineConfig holds time unit and end-marker settings.
type TimelineConfig struct {
	Unit       string   `koanf:"unit"`        // "frames" or "seconds" (default: frames)
	FPS        int      `koanf:"fps"`         // label frame rate and playback rate (default: 24)
	EmptyEnd   float64  `koanf:"empty_end"`   // end marker with no clips (default: 0)
	EndPadding *float64 `koanf:"end_padding"` // gap after the last clip (default: 1)
	Loop       *bool    `koanf:"loop"`        // wrap playback at the end marker (default: true)
}

// LogConfig holds log file settings.
type LogConfig struct {
	Level      string `koanf:"level"`
	File       string `koanf:"file"` // default: $XDG_STATE_HOME/cutline/cutline.log
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
	Compress   bool   `koanf:"compress"`
}

// TrackConfig is a seeded track.
type TrackConfig struct {
	ID    string       `koanf:"id"`
	Name  string       `koanf:"name"`
	Clips []ClipConfig `koanf:"clips"`
}

// ClipConfig is a seeded clip.
type ClipConfig struct {
	ID       string  `koanf:"id"`
	Name     string  `koanf:"name"`
	Start    float64 `koanf:"start"`
	Duration float64 `koanf:"duration"`
}

// Load reads the config files in priority order.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given files in order, later files overriding earlier
// ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Theme: theme.Dark, // empty file means the dark preset
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	cfg.Timeline.Unit = strings.ToLower(strings.TrimSpace(cfg.Timeline.Unit))

	// Expand ~ in log file
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/cutline/config.toml
		filepath.Join(xdg.ConfigHome, "cutline", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ResolveTheme applies the overrides to the selected preset.
func (c *Config) ResolveTheme() (theme.Theme, error) {
	return theme.Resolve(c.Theme, c.ThemeOverrides)
}

// GetTimelineConfig returns the timeline configuration with defaults applied.
func (c *Config) GetTimelineConfig() TimelineConfig {
	cfg := c.Timeline

	// Apply defaults
	if cfg.Unit == "" {
		cfg.Unit = timecode.Frames.String()
	}
	if cfg.FPS <= 0 {
		cfg.FPS = timecode.DefaultFPS
	}
	if cfg.EmptyEnd < 0 || math.IsNaN(cfg.EmptyEnd) {
		cfg.EmptyEnd = 0
	}
	if cfg.EndPadding == nil || *cfg.EndPadding < 0 {
		p := timeline.DefaultEndPadding
		cfg.EndPadding = &p
	}
	if cfg.Loop == nil {
		loop := true
		cfg.Loop = &loop
	}

	return cfg
}

// TimelineOptions converts the timeline section into engine options.
func (c *Config) TimelineOptions() ([]timeline.Option, error) {
	tc := c.GetTimelineConfig()
	unit, err := timecode.ParseUnit(tc.Unit)
	if err != nil {
		return nil, err
	}
	return []timeline.Option{
		timeline.WithTimeUnit(unit, tc.FPS),
		timeline.WithEmptyEnd(tc.EmptyEnd),
		timeline.WithEndPadding(*tc.EndPadding),
	}, nil
}

// LoggingConfig converts the log section for the logging package.
func (c *Config) LoggingConfig() logging.Config {
	return logging.Config{
		Level:      c.Log.Level,
		File:       c.Log.File,
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAgeDays: c.Log.MaxAgeDays,
		Compress:   c.Log.Compress,
	}
}

// SeedTracks returns the configured tracks as engine input.
func (c *Config) SeedTracks() []timeline.TrackData {
	out := make([]timeline.TrackData, 0, len(c.Tracks))
	for _, t := range c.Tracks {
		td := timeline.TrackData{ID: t.ID, Name: t.Name}
		for _, cl := range t.Clips {
			td.Clips = append(td.Clips, timeline.ClipData{
				ID:       cl.ID,
				Name:     cl.Name,
				Start:    cl.Start,
				Duration: cl.Duration,
			})
		}
		out = append(out, td)
	}
	return out
}

// HasTracks returns true if the config seeds at least one track.
func (c *Config) HasTracks() bool {
	return len(c.Tracks) > 0
}
