// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/shelfwise/internal/api"
	"github.com/tomtom215/shelfwise/internal/cache"
	"github.com/tomtom215/shelfwise/internal/config"
	"github.com/tomtom215/shelfwise/internal/logging"
	"github.com/tomtom215/shelfwise/internal/recommend"
	"github.com/tomtom215/shelfwise/internal/supervisor"
	"github.com/tomtom215/shelfwise/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Str("version", api.Version).Msg("Starting Shelfwise with supervisor tree")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initial snapshot. Serving requests without one is pointless.
	builder := newSnapshotBuilder(cfg, logging.WithComponent("recommend"))
	buildCtx, cancelBuild := context.WithTimeout(ctx, cfg.Reload.BuildTimeout)
	engine, err := buildInitialSnapshot(buildCtx, builder)
	cancelBuild()
	if err != nil {
		logging.Fatal().Err(err).Str("data_dir", cfg.Data.Dir).Msg("Failed to build recommendation engine")
	}
	holder := recommend.NewHolder(engine)

	handler := api.NewHandler(holder, cfg)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.NewChiMiddlewareConfig(&cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       120 * time.Second,
	}

	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), treeCfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))

	if c := handler.Cache(); c != nil {
		tree.AddEngineService(cache.NewJanitor("responses", c, cfg.Cache.TTL))
	}

	if cfg.Reload.Enabled {
		reload, err := services.NewReloadService(builder, holder, services.ReloadServiceConfig{
			Schedule:           cfg.Reload.Schedule,
			BuildTimeout:       cfg.Reload.BuildTimeout,
			BreakerMaxFailures: cfg.Reload.BreakerMaxFailures,
			BreakerTimeout:     cfg.Reload.BreakerTimeout,
		}, logging.Logger())
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to create snapshot reload service")
		}
		tree.AddEngineService(reload)
		logging.Info().Str("schedule", cfg.Reload.Schedule).Msg("Scheduled snapshot reload enabled")
	}

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
		stop()
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
