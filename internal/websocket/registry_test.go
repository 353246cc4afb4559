// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package websocket

import (
	"sync"
	"testing"
)

func collect(r *SubscriptionRegistry, eventID string) []*Client {
	var out []*Client
	for c := range r.ConnectionsFor(eventID) {
		out = append(out, c)
	}
	return out
}

func TestRegistry_SubscribeAndConnectionsFor(t *testing.T) {
	hub := NewHub(HubConfig{})
	r := hub.Registry()
	a, b := createTestClient(hub, 4), createTestClient(hub, 4)

	r.Subscribe(a, "stream-1")
	r.Subscribe(b, "stream-1")
	r.Subscribe(a, "content-1")
	r.Subscribe(a, "stream-1") // duplicate

	if r.Count() != 3 {
		t.Errorf("Count() = %d, want 3", r.Count())
	}
	got := collect(r, "stream-1")
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("ConnectionsFor(stream-1) = %v, want [a b] in connection order", got)
	}
	if len(collect(r, "stream-2")) != 0 {
		t.Error("expected no subscribers for stream-2")
	}
	if n := r.SubscriberCount("stream-1"); n != 2 {
		t.Errorf("SubscriberCount(stream-1) = %d, want 2", n)
	}
	if events := r.EventsFor(a); len(events) != 2 || events[0] != "content-1" {
		t.Errorf("EventsFor(a) = %v", events)
	}
}

func TestRegistry_UnsubscribeIdempotent(t *testing.T) {
	hub := NewHub(HubConfig{})
	r := hub.Registry()
	a, b := createTestClient(hub, 4), createTestClient(hub, 4)

	subA := r.Subscribe(a, "stream-1")
	r.Subscribe(b, "stream-1")

	r.Unsubscribe(subA)
	r.Unsubscribe(subA)

	got := collect(r, "stream-1")
	if len(got) != 1 || got[0] != b {
		t.Errorf("ConnectionsFor after double unsubscribe = %v, want [b]", got)
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
	// Zero-value handle is also a no-op.
	r.Unsubscribe(Subscription{})
}

func TestRegistry_SnapshotAtCallTime(t *testing.T) {
	hub := NewHub(HubConfig{})
	r := hub.Registry()
	a, b := createTestClient(hub, 4), createTestClient(hub, 4)
	r.Subscribe(a, "stream-1")

	seq := r.ConnectionsFor("stream-1")
	r.Subscribe(b, "stream-1")
	r.Purge(a)

	var got []*Client
	for c := range seq {
		got = append(got, c)
	}
	if len(got) != 1 || got[0] != a {
		t.Errorf("sequence should reflect subscribers at call time, got %v", got)
	}
}

func TestRegistry_Purge(t *testing.T) {
	hub := NewHub(HubConfig{})
	r := hub.Registry()
	a := createTestClient(hub, 4)
	for _, id := range []string{"stream-1", "stream-2", "content-1"} {
		r.Subscribe(a, id)
	}

	if n := r.Purge(a); n != 3 {
		t.Errorf("Purge() = %d, want 3", n)
	}
	if r.Count() != 0 || len(r.EventsFor(a)) != 0 {
		t.Error("expected registry to be empty after purge")
	}
	if n := r.Purge(a); n != 0 {
		t.Errorf("second Purge() = %d, want 0", n)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	hub := NewHub(HubConfig{})
	r := hub.Registry()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := createTestClient(hub, 4)
			for j := 0; j < 50; j++ {
				sub := r.Subscribe(c, "stream-1")
				for range r.ConnectionsFor("stream-1") {
				}
				r.Unsubscribe(sub)
			}
			r.Purge(c)
		}()
	}
	wg.Wait()

	if r.Count() != 0 {
		t.Errorf("Count() = %d, want 0", r.Count())
	}
}
