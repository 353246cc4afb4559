// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

// Package services adapts the long-running parts of the server to
// suture.Service: the HTTP server, the broadcast hub loop, the periodic
// store reset and the optional change-feed mirror. Each depends on a small
// interface so tests can substitute doubles.
package services
