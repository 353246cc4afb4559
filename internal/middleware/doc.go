// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

/*
Package middleware provides HTTP middleware shared by the API router.

Key Components:

  - RequestID: per-request id (upstream X-Request-ID or a new UUID) placed in
    the response header and the logging context with a correlation id
  - PrometheusMetrics: request count, latency and in-flight instrumentation
    labeled by chi route pattern

Both have the chi signature func(http.Handler) http.Handler:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Group(func(r chi.Router) {
	    r.Use(middleware.PrometheusMetrics)
	    r.Get("/api/v1/votes", handler.GetVotes)
	})
*/
package middleware
