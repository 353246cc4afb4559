// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

//go:build !nats

package eventprocessor

import (
	"context"
	"errors"
	"testing"
)

func TestMirror_StartWithoutNATSBuild(t *testing.T) {
	m := NewMirror(DefaultMirrorConfig("nats://127.0.0.1:4222"))

	err := m.Start(context.Background())
	if !errors.Is(err, ErrNATSNotEnabled) {
		t.Fatalf("Start() error = %v, want ErrNATSNotEnabled", err)
	}

	// Changes still queue so a misconfigured mirror never stalls the store.
	m.Publish("e", "vote_update", nil)
	if m.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", m.Pending())
	}
}
