// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/debatelive/docs" // Import generated swagger docs
	"github.com/tomtom215/debatelive/internal/api"
	"github.com/tomtom215/debatelive/internal/command"
	"github.com/tomtom215/debatelive/internal/config"
	"github.com/tomtom215/debatelive/internal/eventprocessor"
	"github.com/tomtom215/debatelive/internal/logging"
	"github.com/tomtom215/debatelive/internal/state"
	"github.com/tomtom215/debatelive/internal/supervisor"
	"github.com/tomtom215/debatelive/internal/supervisor/services"
	ws "github.com/tomtom215/debatelive/internal/websocket"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("environment", cfg.Server.Environment).
		Int("ballot_unit", cfg.Store.BallotUnit).
		Str("provisioning", cfg.Store.Provisioning).
		Bool("nats_enabled", cfg.NATS.Enabled).
		Msg("Starting DebateLive with supervisor tree")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// === CHANGE SINKS ===

	wsHub := ws.NewHub(hubConfigFrom(cfg.WebSocket))
	sinks := []state.ChangeSink{wsHub}

	var mirror *eventprocessor.Mirror
	if cfg.NATS.Enabled {
		mirror = eventprocessor.NewMirror(eventprocessor.MirrorConfigFromNATS(cfg.NATS))
		sinks = append(sinks, mirror)
	}

	// === STATE AND COMMANDS ===

	storeOpts := storeOptions(cfg.Store, state.Tee(sinks...))
	store := state.NewStore(storeOpts)
	processor := command.NewProcessor(store, defaultsFrom(cfg.Store))
	logging.Info().Int("events", len(storeOpts.Seeds)).Msg("State store initialized")

	// === HTTP ===

	handler := api.NewHandler(store, processor, wsHub, cfg)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	// === ADD SERVICES TO SUPERVISOR TREE ===

	if cfg.Reset.Enabled {
		tree.AddStoreService(services.NewResetService(store, storeOpts.Seeds, cfg.Reset.Interval))
		logging.Info().Dur("interval", cfg.Reset.Interval).Msg("Store reset service added")
	}

	tree.AddMessagingService(services.NewHubService(wsHub))
	if mirror != nil {
		tree.AddMessagingService(services.NewMirrorService(mirror, cfg.Server.ShutdownTimeout))
		logging.Info().Str("subject_prefix", cfg.NATS.SubjectPrefix).Msg("Change-feed mirror service added")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	// === START SUPERVISOR TREE ===

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Err(err).Msg("Supervisor shutdown error")
		}
	}

	// The hub service may be restarted by suture, so the hub itself is only
	// closed once the whole tree has stopped.
	wsHub.Close()

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
