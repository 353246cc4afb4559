// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package services

import (
	"context"
	"fmt"
	"time"
)

// MirrorRunner is satisfied by *eventprocessor.Mirror.
type MirrorRunner interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context)
}

// MirrorService adapts the change-feed mirror's Start/Shutdown lifecycle to
// suture: Start, block until canceled, then Shutdown on a fresh deadline.
type MirrorService struct {
	mirror          MirrorRunner
	shutdownTimeout time.Duration
	name            string
}

// NewMirrorService creates the service. A non-positive timeout means 10s.
func NewMirrorService(mirror MirrorRunner, shutdownTimeout time.Duration) *MirrorService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &MirrorService{
		mirror:          mirror,
		shutdownTimeout: shutdownTimeout,
		name:            "change-feed-mirror",
	}
}

// Serve implements suture.Service. A Start failure is returned so that
// suture retries with backoff.
func (s *MirrorService) Serve(ctx context.Context) error {
	if err := s.mirror.Start(ctx); err != nil {
		return fmt.Errorf("change-feed mirror start failed: %w", err)
	}

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	s.mirror.Shutdown(shutdownCtx)

	return ctx.Err()
}

func (s *MirrorService) String() string {
	return s.name
}
