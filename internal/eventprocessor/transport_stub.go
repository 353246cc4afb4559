// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

//go:build !nats

package eventprocessor

// openTransport always fails without NATS support compiled in.
// Build with -tags=nats to enable the change-feed mirror.
func openTransport(MirrorConfig) (transport, error) {
	return nil, ErrNATSNotEnabled
}
