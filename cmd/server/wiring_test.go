// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package main

import (
	"testing"
	"time"

	"github.com/tomtom215/debatelive/internal/config"
	"github.com/tomtom215/debatelive/internal/state"
)

func TestSeedsFrom(t *testing.T) {
	seeds := seedsFrom(config.StoreConfig{
		SeedEvents:     []string{"stream-1", " stream-2 ", "", "stream-1"},
		SeedLeftVotes:  100,
		SeedRightVotes: 80,
	})

	if len(seeds) != 2 {
		t.Fatalf("len(seeds) = %d, want 2: %+v", len(seeds), seeds)
	}
	if seeds[0].ID != "stream-1" || seeds[1].ID != "stream-2" {
		t.Errorf("ids = %q, %q", seeds[0].ID, seeds[1].ID)
	}
	if seeds[1].LeftVotes != 100 || seeds[1].RightVotes != 80 {
		t.Errorf("seed totals = %d/%d, want 100/80", seeds[1].LeftVotes, seeds[1].RightVotes)
	}
}

func TestSeedsFrom_AttachesTopics(t *testing.T) {
	seeds := seedsFrom(config.StoreConfig{
		SeedEvents: []string{"stream-1", "content-1"},
		Topics: []config.TopicConfig{
			{StreamID: "stream-1", Title: "Press it?", LeftSide: "Yes", RightSide: "No"},
			{StreamID: "stream-9", Title: "Unseeded", LeftSide: "a", RightSide: "b"},
		},
	})

	if len(seeds) != 2 {
		t.Fatalf("len(seeds) = %d, want 2", len(seeds))
	}
	if seeds[0].Topic == nil || seeds[0].Topic.Title != "Press it?" || seeds[0].Topic.RightSide != "No" {
		t.Errorf("stream-1 topic = %+v", seeds[0].Topic)
	}
	if seeds[1].Topic != nil {
		t.Errorf("content-1 should have no topic, got %+v", seeds[1].Topic)
	}

	store := state.NewStore(state.Options{Seeds: seeds})
	if topic, err := store.Topic(""); err != nil || topic.StreamID != "stream-1" {
		t.Errorf("default topic = %+v, %v", topic, err)
	}
}

func TestStoreOptions(t *testing.T) {
	cfg := config.StoreConfig{
		BallotUnit:   50,
		Provisioning: config.ProvisionOnWrite,
		HistoryLimit: 10,
		SeedEvents:   []string{"a"},
	}
	opts := storeOptions(cfg, nil)

	if opts.BallotUnit != 50 || opts.HistoryLimit != 10 {
		t.Errorf("opts = %+v", opts)
	}
	if opts.Provisioning != state.ProvisionOnWrite {
		t.Errorf("Provisioning = %v, want ProvisionOnWrite", opts.Provisioning)
	}
	if provisioningFrom(config.ProvisionExplicit) != state.ProvisionExplicit {
		t.Error("explicit mode not mapped to ProvisionExplicit")
	}

	store := state.NewStore(opts)
	if ids := store.EventIDs(); len(ids) != 1 || ids[0] != "a" {
		t.Errorf("EventIDs() = %v, want [a]", ids)
	}
}

func TestHubConfigAndDefaults(t *testing.T) {
	hc := hubConfigFrom(config.WebSocketConfig{
		SendBuffer:     8,
		WriteWait:      time.Second,
		PongWait:       2 * time.Second,
		MaxMessageSize: 512,
		MaxConnections: 3,
		ClientRate:     1.5,
		ClientBurst:    4,

		MaxSubscriptions: 5,
	})
	if hc.SendBuffer != 8 || hc.MaxConnections != 3 || hc.ClientRate != 1.5 || hc.ClientBurst != 4 {
		t.Errorf("hub config = %+v", hc)
	}
	if hc.MaxSubscriptions != 5 {
		t.Errorf("hub config = %+v", hc)
	}

	d := defaultsFrom(config.StoreConfig{AnonymousUser: "guest", AnonymousAuthor: "anon", AnonymousAvatar: "A"})
	if d.User != "guest" || d.Author != "anon" || d.Avatar != "A" {
		t.Errorf("defaults = %+v", d)
	}
}
