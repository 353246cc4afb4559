// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package models

import (
	"time"

	"github.com/tomtom215/debatelive/internal/state"
)

// StreamSummary is one row of the admin stream listing.
type StreamSummary struct {
	StreamID      string                  `json:"streamId"`
	Votes         state.AggregateSnapshot `json:"votes"`
	CommentCount  int                     `json:"commentCount"`
	Subscriptions int                     `json:"subscriptions"`
}

// StreamList is the admin stream listing.
type StreamList struct {
	Streams []StreamSummary `json:"streams"`
	Total   int             `json:"total"`
}

// HealthStatus reports process liveness and hub occupancy.
type HealthStatus struct {
	Status           string    `json:"status"`
	Version          string    `json:"version"`
	Uptime           float64   `json:"uptime"`
	Timestamp        time.Time `json:"timestamp"`
	ConnectedClients int       `json:"connectedClients"`
	Subscriptions    int       `json:"subscriptions"`
	Topics           int       `json:"topics"`
	Streams          int       `json:"streams"`
}
