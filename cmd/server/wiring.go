// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package main

import (
	"strings"

	"github.com/tomtom215/debatelive/internal/command"
	"github.com/tomtom215/debatelive/internal/config"
	"github.com/tomtom215/debatelive/internal/state"
	ws "github.com/tomtom215/debatelive/internal/websocket"
)

// seedsFrom builds the initial event table. Blank and repeated ids are
// skipped. Configured topics are attached by stream id.
func seedsFrom(cfg config.StoreConfig) []state.Seed {
	topics := make(map[string]*state.TopicInput, len(cfg.Topics))
	for _, t := range cfg.Topics {
		topics[strings.TrimSpace(t.StreamID)] = &state.TopicInput{
			Title:       t.Title,
			Description: t.Description,
			LeftSide:    t.LeftSide,
			RightSide:   t.RightSide,
		}
	}

	seen := make(map[string]struct{}, len(cfg.SeedEvents))
	seeds := make([]state.Seed, 0, len(cfg.SeedEvents))
	for _, id := range cfg.SeedEvents {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		seeds = append(seeds, state.Seed{
			ID:         id,
			LeftVotes:  cfg.SeedLeftVotes,
			RightVotes: cfg.SeedRightVotes,
			Topic:      topics[id],
		})
	}
	return seeds
}

func provisioningFrom(mode string) state.Provisioning {
	if mode == config.ProvisionOnWrite {
		return state.ProvisionOnWrite
	}
	return state.ProvisionExplicit
}

func storeOptions(cfg config.StoreConfig, sink state.ChangeSink) state.Options {
	return state.Options{
		BallotUnit:   cfg.BallotUnit,
		Provisioning: provisioningFrom(cfg.Provisioning),
		HistoryLimit: cfg.HistoryLimit,
		Seeds:        seedsFrom(cfg),
		Sink:         sink,
	}
}

func hubConfigFrom(cfg config.WebSocketConfig) ws.HubConfig {
	return ws.HubConfig{
		SendBuffer:     cfg.SendBuffer,
		WriteWait:      cfg.WriteWait,
		PongWait:       cfg.PongWait,
		MaxMessageSize: cfg.MaxMessageSize,
		MaxConnections: cfg.MaxConnections,
		ClientRate:     cfg.ClientRate,
		ClientBurst:    cfg.ClientBurst,

		MaxSubscriptions: cfg.MaxSubscriptions,
	}
}

func defaultsFrom(cfg config.StoreConfig) command.Defaults {
	return command.Defaults{
		User:   cfg.AnonymousUser,
		Author: cfg.AnonymousAuthor,
		Avatar: cfg.AnonymousAvatar,
	}
}
