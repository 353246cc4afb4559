// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package eventprocessor

import "errors"

var (
	// ErrNATSNotEnabled is returned by Start in builds without -tags=nats.
	ErrNATSNotEnabled = errors.New("NATS change-feed mirror not available: build with -tags=nats")

	// ErrMirrorRunning is returned by Start when the mirror is already running.
	ErrMirrorRunning = errors.New("change-feed mirror already running")

	// ErrPublisherClosed is returned when publishing on a closed publisher.
	ErrPublisherClosed = errors.New("publisher is closed")
)
