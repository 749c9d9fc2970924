package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/skygrid-lab/skygrid/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Overlay holds the path of the overlay engine configuration file
type Overlay struct {
	Path string
}

// Flags returns CLI flags for overlay configuration
func (o *Overlay) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to the overlay configuration file (YAML)",
			Category:    "Overlay",
			Required:    true,
			Sources:     cli.EnvVars("SKYGRID_CONFIG_FILE"),
			Destination: &o.Path,
		},
	}
}

// Configure loads and validates the overlay configuration. A missing
// temperature_bands section falls back to the built-in band table.
func (o *Overlay) Configure() (*model.OverlayConfig, error) {
	data, err := os.ReadFile(o.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read overlay configuration", goerr.V("path", o.Path))
	}

	var cfg model.OverlayConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse overlay configuration", goerr.V("path", o.Path))
	}
	if len(cfg.TemperatureBands) == 0 {
		cfg.TemperatureBands = model.DefaultTemperatureBands()
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid overlay configuration", goerr.V("path", o.Path))
	}
	return &cfg, nil
}

// LogValue returns structured log value
func (o Overlay) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", o.Path),
	)
}
