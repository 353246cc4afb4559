// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package services

import (
	"context"
)

// ContextHub is satisfied by *websocket.Hub. RunWithContext may be called
// again after it returns, which makes the hub restartable.
type ContextHub interface {
	RunWithContext(ctx context.Context) error
}

// HubService runs the broadcast hub's connection loop under suture.
// Per-event topic goroutines live outside this loop and keep delivering
// while the loop restarts.
type HubService struct {
	hub  ContextHub
	name string
}

// NewHubService creates the service.
func NewHubService(hub ContextHub) *HubService {
	return &HubService{hub: hub, name: "broadcast-hub"}
}

// Serve implements suture.Service.
func (s *HubService) Serve(ctx context.Context) error {
	return s.hub.RunWithContext(ctx)
}

func (s *HubService) String() string {
	return s.name
}
