package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/skygrid-lab/skygrid/pkg/cli/config"
	"github.com/skygrid-lab/skygrid/pkg/domain/model"
	"github.com/skygrid-lab/skygrid/pkg/domain/types"
	"github.com/skygrid-lab/skygrid/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRender() *cli.Command {
	var (
		datasetsCfg config.Datasets
		overlayCfg  config.Overlay
		weekOf      string
		asJSON      bool
	)

	flags := joinFlags(
		datasetsCfg.Flags(),
		overlayCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "week-of",
				Usage:       "Render the week containing this date (default: first week of the range)",
				Category:    "Render",
				Sources:     cli.EnvVars("SKYGRID_WEEK_OF"),
				Destination: &weekOf,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "Emit the overlays as JSON instead of text",
				Category:    "Render",
				Destination: &asJSON,
			},
		},
	)

	return &cli.Command{
		Name:  "render",
		Usage: "Evaluate one week of overlays and print it to stdout",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			cfg, err := overlayCfg.Configure()
			if err != nil {
				return err
			}
			repo, err := datasetsCfg.Configure(ctx)
			if err != nil {
				return err
			}

			overlayUC, err := usecase.NewOverlay(ctx, repo, cfg, nil)
			if err != nil {
				return goerr.Wrap(err, "failed to create overlay use case")
			}

			weeks := overlayUC.Weeks()
			if len(weeks) == 0 {
				return goerr.New("configured date range contains no weeks")
			}

			week := weeks[0]
			if weekOf != "" {
				found, ok := overlayUC.WeekContaining(types.Date(weekOf))
				if !ok {
					return goerr.New("date is outside the configured range",
						goerr.V("date", weekOf))
				}
				week = found
			}

			filter, err := overlayUC.DefaultFilter(ctx)
			if err != nil {
				return err
			}
			overlays, err := overlayUC.WeekOverlays(ctx, week, filter)
			if err != nil {
				return err
			}

			logger.Debug("week rendered",
				slog.Any("monday", week.Monday()),
				slog.Bool("json", asJSON),
			)

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(overlays)
			}
			printWeek(os.Stdout, overlays)
			return nil
		},
	}
}

// printWeek writes a plain text dump of one week, one block per day
func printWeek(w *os.File, overlays []*model.DayOverlay) {
	for _, day := range overlays {
		fmt.Fprintf(w, "%s\n", day.Date)
		for _, seg := range day.Activities {
			marker := ""
			if seg.CrossesMidnight {
				marker = " (+1d)"
			}
			fmt.Fprintf(w, "  %-8s %s-%s%s  [%.1fpx @ %.1fpx]\n",
				seg.Tail, seg.Start, seg.End, marker, seg.WidthPx, seg.OffsetPx)
		}
		for _, seg := range day.Weather {
			fmt.Fprintf(w, "  wx %02d:00 %-4s %s\n", seg.Hour, seg.Category, seg.Color)
		}
		for _, seg := range day.Temperature {
			fmt.Fprintf(w, "  tc %02d:00 %+.1fC band=%d %s\n", seg.Hour, seg.TempC, seg.Band, seg.Color)
		}
	}
}
