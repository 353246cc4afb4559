// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

/*
Package supervisor provides process supervision using suture v4.

The tree organizes long-running services into three layers:

	RootSupervisor ("debatelive")
	├── StoreSupervisor ("store-layer")
	│   └── ResetService (if reset.enabled)
	├── MessagingSupervisor ("messaging-layer")
	│   ├── HubService
	│   └── MirrorService (if nats.enabled, build tag: nats)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with suture's backoff. Supervisor events are logged
through log/slog via sutureslog; main passes a logger built with
logging.NewSlogLogger so they land in the zerolog stream.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    logging.Fatal().Err(err).Msg("supervisor tree")
	}
	tree.AddMessagingService(services.NewHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	errCh := tree.ServeBackground(ctx)
*/
package supervisor
