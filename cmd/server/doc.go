// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

/*
Package main is the entry point for the DebateLive server.

DebateLive keeps per-event vote tallies and comment threads in memory and
pushes every committed change to the WebSocket viewers subscribed to that
event.

# Application Architecture

The server runs under a Suture v4 supervision tree:

	RootSupervisor ("debatelive")
	├── StoreSupervisor ("store-layer")
	│   └── Store reset ticker (optional, RESET_ENABLED=true)
	├── MessagingSupervisor ("messaging-layer")
	│   ├── Broadcast hub
	│   └── Change-feed mirror (optional, NATS_ENABLED=true, -tags nats)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Broadcast hub and optional change-feed mirror
 4. State store, with the hub and mirror as change sinks
 5. Command processor
 6. Chi router and HTTP server
 7. Supervisor tree

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	# Server
	HTTP_PORT=8000
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Store
	BALLOT_UNIT=100              # left + right of every vote must equal this
	STORE_PROVISIONING=explicit  # explicit or on_write
	SEED_EVENTS=stream-1,stream-2
	RESET_ENABLED=false
	RESET_INTERVAL=5m

	# Push
	WS_PATH=/ws
	WS_MAX_CONNECTIONS=1000

	# Change feed (requires -tags nats)
	NATS_ENABLED=false
	NATS_EMBEDDED=true
	NATS_SUBJECT_PREFIX=debate

A config file is read from CONFIG_PATH, ./config.yaml or
/etc/debatelive/config.yaml. Debate topics are only configurable there:

	store:
	  topics:
	    - stream_id: stream-1
	      title: Should AI be conscious?
	      left_side: "Yes"
	      right_side: "No"

# Build Tags

	go build ./cmd/server               # Standard build
	go build -tags nats ./cmd/server    # With the NATS change-feed mirror

Starting with NATS_ENABLED=true on a build without the tag makes the mirror
service fail with an explicit error; suture keeps retrying it with backoff
while the rest of the server runs normally.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains in-flight
requests, the mirror flushes its buffer, and the hub closes every viewer
connection.
*/
package main
