// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package services

import (
	"context"
	"time"

	"github.com/tomtom215/debatelive/internal/logging"
	"github.com/tomtom215/debatelive/internal/metrics"
	"github.com/tomtom215/debatelive/internal/state"
)

// Replacer is satisfied by *state.Store.
type Replacer interface {
	Replace(seeds []state.Seed)
}

// ResetService replaces the whole store with its seeds on every tick. Each
// replacement is a single atomic swap; readers see either the old table or
// the new one.
type ResetService struct {
	store    Replacer
	seeds    []state.Seed
	interval time.Duration
	name     string
}

// NewResetService creates the service. A non-positive interval means 5m.
func NewResetService(store Replacer, seeds []state.Seed, interval time.Duration) *ResetService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &ResetService{
		store:    store,
		seeds:    append([]state.Seed(nil), seeds...),
		interval: interval,
		name:     "store-reset",
	}
}

// Serve implements suture.Service.
func (s *ResetService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logging.Info().Dur("interval", s.interval).Int("seeds", len(s.seeds)).Msg("store reset scheduled")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.store.Replace(s.seeds)
			metrics.StoreResets.Inc()
			logging.Info().Int("events", len(s.seeds)).Msg("store reset to seed state")
		}
	}
}

func (s *ResetService) String() string {
	return s.name
}
