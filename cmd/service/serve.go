package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotations-service/internal/adapters/http"
	"github.com/jsamuelsen/quotations-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotations-service/internal/platform/config"
	"github.com/jsamuelsen/quotations-service/internal/platform/telemetry"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), opts.cfg, opts.logger)
		},
	}
}

// serve runs the API until ctx is cancelled or the server fails.
func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		if shutdownErr := telProvider.Shutdown(flushCtx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	deps, err := openDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := deps.Close(); closeErr != nil {
			logger.Error("closing dependencies", slog.Any("error", closeErr))
		}
	}()

	if cfg.Seed.OnStart {
		if _, err := deps.seeder().Seed(ctx); err != nil {
			return fmt.Errorf("seeding demo catalog: %w", err)
		}
	}

	review, catalog, err := deps.services(cfg, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	serviceName := cfg.Telemetry.ServiceName
	if serviceName == "" {
		serviceName = cfg.App.Name
	}

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.RouterConfig{
		ServiceName: serviceName,
		AuthConfig:  &cfg.Auth,
		HealthHandler: handlers.NewHealthHandler(deps.health,
			handlers.NewBuildInfo(Version, Commit, BuildTime), prometheus.DefaultGatherer),
		Handlers: []http.RouteRegistrar{
			handlers.NewQuotationHandler(catalog),
			handlers.NewSubmissionHandler(review, catalog),
			handlers.NewReviewHandler(review, catalog),
			handlers.NewCatalogHandler(catalog),
		},
		Timeout: cfg.Server.RequestTimeout,
	})

	serverErr, err := server.Start()
	if err != nil {
		return err
	}

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until ctx is cancelled by a signal or the server fails, then
// drains in-flight requests.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
