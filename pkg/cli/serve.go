package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/skygrid-lab/skygrid/pkg/cli/config"
	controller "github.com/skygrid-lab/skygrid/pkg/controller/http"
	"github.com/skygrid-lab/skygrid/pkg/usecase"
	"github.com/skygrid-lab/skygrid/pkg/utils/metrics"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg   config.Server
		datasetsCfg config.Datasets
		overlayCfg  config.Overlay
	)

	flags := joinFlags(
		serverCfg.Flags(),
		datasetsCfg.Flags(),
		overlayCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting skygrid server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("datasets", datasetsCfg),
				slog.Any("overlay", overlayCfg),
			)

			cfg, err := overlayCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := datasetsCfg.Configure(ctx)
			if err != nil {
				return err
			}

			collector := metrics.NewCollector("skygrid")

			overlayUC, err := usecase.NewOverlay(ctx, repo, cfg, collector)
			if err != nil {
				return goerr.Wrap(err, "failed to create overlay use case")
			}

			server := controller.NewServer(ctx, serverCfg.Addr, overlayUC, collector)

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
