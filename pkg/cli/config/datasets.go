package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/skygrid-lab/skygrid/pkg/domain/interfaces"
	"github.com/skygrid-lab/skygrid/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Datasets holds the paths of the input dataset files
type Datasets struct {
	ActivityPath string
	WeatherPath  string
}

// Flags returns CLI flags for dataset configuration
func (d *Datasets) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "activity",
			Usage:       "Path to the aircraft activity dataset (JSON)",
			Category:    "Datasets",
			Required:    true,
			Sources:     cli.EnvVars("SKYGRID_ACTIVITY_FILE"),
			Destination: &d.ActivityPath,
		},
		&cli.StringFlag{
			Name:        "weather",
			Usage:       "Path to the weather observation dataset (JSON)",
			Category:    "Datasets",
			Required:    true,
			Sources:     cli.EnvVars("SKYGRID_WEATHER_FILE"),
			Destination: &d.WeatherPath,
		},
	}
}

// Configure creates an in-memory repository and loads both datasets into it
func (d *Datasets) Configure(ctx context.Context) (interfaces.Repository, error) {
	repo := repository.NewMemory()

	tails, err := repository.LoadActivityFile(ctx, repo, d.ActivityPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load activity dataset")
	}
	observations, err := repository.LoadWeatherFile(ctx, repo, d.WeatherPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load weather dataset")
	}

	ctxlog.From(ctx).Info("datasets loaded",
		slog.Int("tails", tails),
		slog.Int("observations", observations),
	)
	return repo, nil
}

// LogValue returns structured log value
func (d Datasets) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("activity", d.ActivityPath),
		slog.String("weather", d.WeatherPath),
	)
}
