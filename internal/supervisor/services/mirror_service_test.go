// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type mockMirror struct {
	startErr  error
	starts    atomic.Int32
	shutdowns atomic.Int32
	started   chan struct{}
}

func (m *mockMirror) Start(ctx context.Context) error {
	m.starts.Add(1)
	if m.started != nil {
		close(m.started)
	}
	return m.startErr
}

func (m *mockMirror) Shutdown(ctx context.Context) {
	m.shutdowns.Add(1)
}

func TestMirrorService_StartThenShutdown(t *testing.T) {
	mirror := &mockMirror{started: make(chan struct{})}
	svc := NewMirrorService(mirror, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	<-mirror.started
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return")
	}
	if mirror.shutdowns.Load() != 1 {
		t.Errorf("shutdowns = %d, want 1", mirror.shutdowns.Load())
	}
}

func TestMirrorService_StartFailure(t *testing.T) {
	want := errors.New("nats unavailable")
	mirror := &mockMirror{startErr: want}

	err := NewMirrorService(mirror, 0).Serve(context.Background())
	if !errors.Is(err, want) {
		t.Errorf("expected %v, got %v", want, err)
	}
	if mirror.shutdowns.Load() != 0 {
		t.Error("Shutdown called after failed Start")
	}
}
