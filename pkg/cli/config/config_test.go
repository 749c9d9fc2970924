package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/skygrid-lab/skygrid/pkg/cli/config"
	"github.com/skygrid-lab/skygrid/pkg/domain/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

const validOverlayYAML = `
range_start: "2025-01-13"
range_end: "2025-01-19"
px_per_hour: 4
fallback_color: "#999999"
tail_colors:
  N123AB: "#1f77b4"
category_colors:
  VFR: "#00a000"
  MVFR: "#0000d0"
  IFR: "#d00000"
  LIFR: "#c000c0"
`

func TestOverlayConfigure(t *testing.T) {
	t.Run("valid config with default bands", func(t *testing.T) {
		overlay := config.Overlay{Path: writeFile(t, "overlay.yml", validOverlayYAML)}
		cfg, err := overlay.Configure()
		gt.NoError(t, err).Required()
		gt.Equal(t, cfg.PxPerHour, 4.0)
		gt.Equal(t, cfg.TailColors["N123AB"], "#1f77b4")
		gt.A(t, cfg.TemperatureBands).Longer(1)
	})

	t.Run("explicit bands are kept", func(t *testing.T) {
		content := validOverlayYAML + `
temperature_bands:
  - max_c: 0
    color: "#0000ff"
  - color: "#ff0000"
`
		overlay := config.Overlay{Path: writeFile(t, "overlay.yml", content)}
		cfg, err := overlay.Configure()
		gt.NoError(t, err).Required()
		gt.A(t, cfg.TemperatureBands).Length(2)
		gt.Equal(t, cfg.TemperatureColor(-5), "#0000ff")
		gt.Equal(t, cfg.TemperatureColor(5), "#ff0000")
	})

	t.Run("missing file", func(t *testing.T) {
		overlay := config.Overlay{Path: filepath.Join(t.TempDir(), "nope.yml")}
		_, err := overlay.Configure()
		gt.Error(t, err)
	})

	t.Run("invalid config is rejected", func(t *testing.T) {
		content := `
range_start: "2025-01-19"
range_end: "2025-01-13"
px_per_hour: 4
fallback_color: "#999999"
category_colors:
  VFR: "#00a000"
  MVFR: "#0000d0"
  IFR: "#d00000"
  LIFR: "#c000c0"
`
		overlay := config.Overlay{Path: writeFile(t, "overlay.yml", content)}
		_, err := overlay.Configure()
		gt.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		overlay := config.Overlay{Path: writeFile(t, "overlay.yml", "{not yaml")}
		_, err := overlay.Configure()
		gt.Error(t, err)
	})
}

func TestDatasetsConfigure(t *testing.T) {
	ctx := context.Background()

	t.Run("loads both datasets", func(t *testing.T) {
		datasets := config.Datasets{
			ActivityPath: writeFile(t, "activity.json",
				`{"N123AB":{"2025-01-15":[["0930","1130"]]}}`),
			WeatherPath: writeFile(t, "weather.json",
				`[{"time":"2025-01-15T09:53","flight_category":"VFR","temp_c":-3.5}]`),
		}
		repo, err := datasets.Configure(ctx)
		gt.NoError(t, err).Required()

		tails, err := repo.ListTails(ctx)
		gt.NoError(t, err).Required()
		gt.A(t, tails).Length(1)
		gt.Equal(t, tails[0], types.TailNumber("N123AB"))
	})

	t.Run("missing activity file", func(t *testing.T) {
		datasets := config.Datasets{
			ActivityPath: filepath.Join(t.TempDir(), "nope.json"),
			WeatherPath:  writeFile(t, "weather.json", `[]`),
		}
		_, err := datasets.Configure(ctx)
		gt.Error(t, err)
	})
}

func TestLoggerConfigure(t *testing.T) {
	t.Run("valid formats", func(t *testing.T) {
		for _, format := range []string{"console", "json", "auto", ""} {
			logger := config.Logger{Level: "info", Format: format}
			_, err := logger.Configure()
			gt.NoError(t, err)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		logger := config.Logger{Level: "info", Format: "xml"}
		_, err := logger.Configure()
		gt.Error(t, err)
	})
}
