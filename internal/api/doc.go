// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

/*
Package api is the HTTP boundary of the debate backend.

It decodes requests, hands them to the command processors or the store, and
encodes the result in the models.Response envelope. It owns no state.

Routes (see Router.SetupChi):

	GET    /api/v1/votes?stream_id=          current totals for a stream
	POST   /api/v1/user-vote                 submit a vote
	GET    /api/v1/comments?content_id=      comments in insertion order
	POST   /api/comment                      add a comment
	POST   /api/like                         like a comment
	DELETE /api/comment/{commentId}          remove a comment
	GET    /api/v1/admin/votes/statistics    vote statistics
	GET    /api/v1/admin/streams             known streams with totals
	GET    /ws                               WebSocket push channel
	GET    /health, /api/v1/health/{live,ready}
	GET    /metrics                          Prometheus scrape endpoint

Error mapping:

	validation  -> 400 with the validation message
	not found   -> 404 with the not-found message
	anything    -> 500 "internal server error" (cause logged, never returned)

Command routes are rate limited per client IP with go-chi/httprate. The
WebSocket route is mounted outside the Prometheus middleware because the
instrumented ResponseWriter cannot be hijacked.
*/
package api
