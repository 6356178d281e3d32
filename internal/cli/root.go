// Package cli defines the cutline command line.
package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/cutline/internal/app"
	"github.com/llehouerou/cutline/internal/config"
	"github.com/llehouerou/cutline/internal/errmsg"
	"github.com/llehouerou/cutline/internal/logging"
)

// NewRootCmd builds the command tree. Without a subcommand it opens the
// timeline editor.
func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "cutline",
		Short:         "cutline is a terminal timeline editor.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runEditor(cfg)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: XDG config dir, then ./config.toml)")

	root.AddCommand(newLayoutCmd(&configPath))
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		if _, statErr := os.Stat(path); statErr != nil {
			return nil, fmt.Errorf("%s: %w", errmsg.OpConfigLoad, statErr)
		}
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errmsg.OpConfigLoad, err)
	}
	return cfg, nil
}

func runEditor(cfg *config.Config) error {
	log, err := logging.New(cfg.LoggingConfig())
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}
	defer func() { _ = log.Sync() }()

	if !cfg.HasTracks() {
		log.Info("no tracks configured, starting with an empty timeline")
	}

	m, err := app.FromConfig(cfg, log)
	if err != nil {
		log.Error("startup failed", zap.Error(err))
		return fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if fm, ok := final.(app.Model); ok {
		fm.Close()
	} else {
		m.Close()
	}
	if err != nil {
		log.Error("program exited with error", zap.Error(err))
		return err
	}
	log.Info("bye")
	return nil
}
