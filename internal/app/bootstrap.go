package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/llehouerou/cutline/internal/config"
	"github.com/llehouerou/cutline/internal/errmsg"
	"github.com/llehouerou/cutline/internal/timeline"
	"github.com/llehouerou/cutline/internal/transport"
	"github.com/llehouerou/cutline/internal/ui/styles"
)

// NewEngine builds the timeline engine from configuration at the initial
// slider zoom and seeds the configured tracks.
func NewEngine(cfg *config.Config, log *zap.Logger) (*timeline.Engine, error) {
	th, err := cfg.ResolveTheme()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errmsg.OpThemeLoad, err)
	}
	opts, err := cfg.TimelineOptions()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errmsg.OpConfigLoad, err)
	}
	opts = append([]timeline.Option{timeline.WithZoom(timeline.DefaultZoom())}, opts...)
	e := timeline.New(th, append(opts, timeline.WithLogger(log))...)
	for _, t := range cfg.SeedTracks() {
		if _, err := e.AddTrack(t); err != nil {
			return nil, fmt.Errorf("%s: %w", errmsg.OpSeed, err)
		}
	}
	return e, nil
}

// FromConfig creates the application model from configuration. It also
// installs the configured theme for the UI styles.
func FromConfig(cfg *config.Config, log *zap.Logger) (Model, error) {
	e, err := NewEngine(cfg, log)
	if err != nil {
		return Model{}, err
	}
	styles.Use(styles.FromTheme(e.Theme()))

	tr := transport.New(e,
		transport.WithLoop(*cfg.GetTimelineConfig().Loop),
		transport.WithLogger(log),
	)
	log.Info("timeline loaded",
		zap.Int("tracks", e.TrackCount()),
		zap.Int("clips", e.ClipCount()),
		zap.String("theme", e.Theme().Name),
	)
	return New(e, tr, log), nil
}
