// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/debatelive/internal/websocket"
)

type failingHub struct{ err error }

func (f failingHub) RunWithContext(context.Context) error { return f.err }

func TestHubService_PropagatesHubError(t *testing.T) {
	want := errors.New("hub failed")
	if err := NewHubService(failingHub{want}).Serve(context.Background()); !errors.Is(err, want) {
		t.Errorf("expected %v, got %v", want, err)
	}
}

func TestHubService_RealHubUnderSupervisor(t *testing.T) {
	hub := websocket.NewHub(websocket.DefaultHubConfig())
	defer hub.Close()

	sup := suture.New("test-sup", suture.Spec{
		FailureThreshold: 3,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          time.Second,
	})
	sup.Add(NewHubService(hub))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)

	// Attach only succeeds while the loop is running.
	client := websocket.NewClient(hub, nil)
	attachCtx, attachCancel := context.WithTimeout(context.Background(), time.Second)
	defer attachCancel()
	if err := hub.Attach(attachCtx, client); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	cancel()
	select {
	case <-errCh:
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not stop")
	}
	if n := hub.GetClientCount(); n != 0 {
		t.Errorf("clients after shutdown = %d, want 0", n)
	}
}
