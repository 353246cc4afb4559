// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

// Package eventprocessor mirrors committed store changes onto NATS.
//
// The Mirror is a state.ChangeSink. Every change the store commits (votes,
// comments, topics and live status) is queued into a bounded buffer and
// published asynchronously through a Watermill NATS publisher on the subject
//
//	<prefix>.<eventId>.<eventType>
//
// The feed is outbound only. Nothing in the process consumes it, and it plays
// no part in keeping the in-memory state consistent.
//
// # Build Tags
//
// The NATS transport (embedded server, Watermill publisher) is compiled only
// with -tags=nats. Without the tag the Mirror still queues changes, but Start
// returns ErrNATSNotEnabled.
//
// # Back-pressure
//
// Publish never blocks the committing mutation. When the buffer is full the
// change is dropped and counted in
// debatelive_mirror_published_total{result="dropped"}. While the circuit
// breaker is open, publishes fail fast and are counted with result="rejected".
//
// # Message Format
//
// Each message body is a JSON ChangeRecord:
//
//	{
//	  "id": "7c1e...",
//	  "eventId": "debate-1",
//	  "type": "vote_update",
//	  "payload": {"streamId": "debate-1", "leftVotes": 160, ...},
//	  "publishedAt": "2026-01-01T00:00:00Z"
//	}
//
// The record id doubles as the Watermill message UUID.
package eventprocessor
