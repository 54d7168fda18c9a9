// Assetwatch - Asset Tracking Map View Coordinator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/assetwatch

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/assetwatch/internal/api"
	"github.com/tomtom215/assetwatch/internal/backend"
	"github.com/tomtom215/assetwatch/internal/config"
	"github.com/tomtom215/assetwatch/internal/coordinator"
	"github.com/tomtom215/assetwatch/internal/filter"
	"github.com/tomtom215/assetwatch/internal/logging"
	"github.com/tomtom215/assetwatch/internal/metrics"
	"github.com/tomtom215/assetwatch/internal/render"
	"github.com/tomtom215/assetwatch/internal/supervisor"
	"github.com/tomtom215/assetwatch/internal/supervisor/services"
	"github.com/tomtom215/assetwatch/internal/view"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	logging.Info().
		Str("version", version).
		Str("backend_url", cfg.Backend.BaseURL).
		Bool("ordered_responses", cfg.Sync.OrderedResponses).
		Bool("circuit_breaker", cfg.Backend.CircuitBreaker.Enabled).
		Dur("poll_interval", cfg.Sync.PollInterval).
		Msg("Starting assetwatch")

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	client := backend.New(&cfg.Backend)

	filters := filter.NewState()
	state := view.New(cfg.Sync.OrderedResponses)
	coord := coordinator.New(client, filters, state, coordinator.Options{
		PositionsLimit: cfg.Backend.PositionsLimit,
		CrossingsLimit: cfg.Backend.CrossingsLimit,
		RefreshRate:    cfg.Sync.RefreshRate,
		RefreshBurst:   cfg.Sync.RefreshBurst,
	})

	handler := api.NewHandler(api.HandlerDeps{
		Coordinator: coord,
		Filters:     filters,
		View:        state,
		Writer:      client,
		Render:      renderOptions(&cfg.Map),
		Version:     version,
	})
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	// sutureslog needs an slog.Logger; the adapter routes it into zerolog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddSyncService(services.NewCoordinatorService(coord))
	if cfg.Sync.PollInterval > 0 {
		tree.AddSyncService(services.NewPollerService(coordinator.NewPoller(coord, cfg.Sync.PollInterval)))
	} else {
		logging.Info().Msg("Positions polling disabled")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	err = <-errCh
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		logging.Info().Msg("Supervisor tree stopped")
	default:
		logging.Error().Err(err).Msg("Supervisor tree stopped with error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop within timeout")
		}
		os.Exit(1)
	}

	logging.Info().Msg("Shutdown complete")
}

func renderOptions(m *config.MapConfig) render.Options {
	opts := render.DefaultOptions()
	opts.DefaultCenter = render.LatLng{m.CenterLatitude, m.CenterLongitude}
	if m.Zoom > 0 {
		opts.DefaultZoom = m.Zoom
	}
	if m.SelectZoom > 0 {
		opts.SelectZoom = m.SelectZoom
	}
	opts.Location = m.Location()
	return opts
}
