// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Store command metrics
	VotesApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "debatelive_votes_applied_total",
			Help: "Total number of vote submissions by result",
		},
		[]string{"result"}, // "ok", "validation", "not_found", "internal"
	)

	CommentOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "debatelive_comment_ops_total",
			Help: "Total number of comment operations by operation and result",
		},
		[]string{"op", "result"}, // op: "add", "like", "remove"
	)

	StoreResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "debatelive_store_resets_total",
			Help: "Total number of wholesale store replacements",
		},
	)

	// Broadcast metrics
	BroadcastPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "debatelive_broadcast_published_total",
			Help: "Total number of change notifications accepted by the broadcast hub",
		},
		[]string{"event_type"},
	)

	BroadcastDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "debatelive_broadcast_deliveries_total",
			Help: "Per-connection delivery attempts by result",
		},
		[]string{"result"}, // "sent", "dropped", "closed"
	)

	BroadcastFanoutDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "debatelive_broadcast_fanout_seconds",
			Help:    "Time to serialize and enqueue one notification to every subscriber",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	Subscriptions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "debatelive_subscriptions",
			Help: "Current number of (connection, event) subscriptions",
		},
	)

	Topics = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "debatelive_topics",
			Help: "Current number of per-event broadcast topics",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of active WebSocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Total number of WebSocket messages written to connections",
		},
	)

	WSMessagesReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_received_total",
			Help: "Total number of WebSocket messages received",
		},
	)

	WSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_errors_total",
			Help: "Total number of WebSocket errors",
		},
		[]string{"error_type"}, // "decode", "rate_limited", "write", "rejected"
	)

	// Change-feed mirror metrics
	MirrorPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "debatelive_mirror_published_total",
			Help: "Change-feed mirror publishes by result",
		},
		[]string{"result"}, // "ok", "error", "dropped", "rejected"
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordVote counts a vote submission outcome.
func RecordVote(result string) {
	VotesApplied.WithLabelValues(result).Inc()
}

// RecordCommentOp counts a comment operation outcome.
func RecordCommentOp(op, result string) {
	CommentOps.WithLabelValues(op, result).Inc()
}

// RecordFanout records one topic fan-out.
func RecordFanout(sent, dropped, closed int, duration time.Duration) {
	if sent > 0 {
		BroadcastDeliveries.WithLabelValues("sent").Add(float64(sent))
	}
	if dropped > 0 {
		BroadcastDeliveries.WithLabelValues("dropped").Add(float64(dropped))
	}
	if closed > 0 {
		BroadcastDeliveries.WithLabelValues("closed").Add(float64(closed))
	}
	BroadcastFanoutDuration.Observe(duration.Seconds())
}
