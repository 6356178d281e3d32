package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/llehouerou/cutline/internal/app"
	"github.com/llehouerou/cutline/internal/errmsg"
	"github.com/llehouerou/cutline/internal/logging"
	"github.com/llehouerou/cutline/internal/timeline"
)

type layoutOptions struct {
	format string
	hZoom  float64
	vZoom  float64
}

func newLayoutCmd(configPath *string) *cobra.Command {
	opts := layoutOptions{format: "json"}

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the geometry of the configured timeline",
		Long: `Lays out the tracks from the configuration at the given zoom and
prints every rectangle the editor would draw, in content-space pixels.
Without zoom flags the editor's initial slider zoom is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			e, err := app.NewEngine(cfg, logging.Nop())
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.SetZoom(opts.hZoom, opts.vZoom); err != nil {
				return fmt.Errorf("%s: %w", errmsg.OpZoom, err)
			}
			g, err := e.Layout()
			if err != nil {
				return fmt.Errorf("%s: %w", errmsg.OpLayout, err)
			}
			return writeGeometry(cmd.OutOrStdout(), opts.format, g)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "f", opts.format, "output format: json or yaml")
	f.Float64Var(&opts.hZoom, "hzoom", 0, "horizontal zoom factor (0 keeps the initial zoom)")
	f.Float64Var(&opts.vZoom, "vzoom", 0, "vertical zoom factor (0 keeps the initial zoom)")
	return cmd
}

func writeGeometry(w io.Writer, format string, g timeline.Geometry) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(g); err != nil {
			return fmt.Errorf("%s: %w", errmsg.OpExportLayout, err)
		}
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(g); err != nil {
			return fmt.Errorf("%s: %w", errmsg.OpExportLayout, err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("%s: %w", errmsg.OpExportLayout, err)
		}
	default:
		return fmt.Errorf("%s: unknown format %q (want json or yaml)", errmsg.OpExportLayout, format)
	}
	return nil
}
