// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/debatelive/internal/logging"
)

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateStore(); err != nil {
		return err
	}
	if err := c.validateWebSocket(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if c.Reset.Enabled && c.Reset.Interval <= 0 {
		return fmt.Errorf("RESET_INTERVAL must be positive when RESET_ENABLED=true")
	}
	if err := c.validateNATS(); err != nil {
		return err
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateStore() error {
	s := c.Store
	if s.BallotUnit <= 0 {
		return fmt.Errorf("BALLOT_UNIT must be positive, got %d", s.BallotUnit)
	}
	if s.Provisioning != ProvisionExplicit && s.Provisioning != ProvisionOnWrite {
		return fmt.Errorf("STORE_PROVISIONING must be %q or %q, got %q",
			ProvisionExplicit, ProvisionOnWrite, s.Provisioning)
	}
	if s.HistoryLimit < 0 {
		return fmt.Errorf("VOTE_HISTORY_LIMIT must not be negative")
	}
	if s.SeedLeftVotes < 0 || s.SeedRightVotes < 0 {
		return fmt.Errorf("seed vote counts must not be negative")
	}

	seen := make(map[string]struct{}, len(s.SeedEvents))
	for _, id := range s.SeedEvents {
		if id == "" {
			return fmt.Errorf("SEED_EVENTS contains an empty id")
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("SEED_EVENTS contains duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
	if s.Provisioning == ProvisionExplicit && len(s.SeedEvents) == 0 {
		return fmt.Errorf("SEED_EVENTS must not be empty when STORE_PROVISIONING=%s", ProvisionExplicit)
	}

	topics := make(map[string]struct{}, len(s.Topics))
	for i, t := range s.Topics {
		if strings.TrimSpace(t.StreamID) == "" || strings.TrimSpace(t.Title) == "" ||
			strings.TrimSpace(t.LeftSide) == "" || strings.TrimSpace(t.RightSide) == "" {
			return fmt.Errorf("store.topics[%d] needs stream_id, title, left_side and right_side", i)
		}
		if _, dup := topics[t.StreamID]; dup {
			return fmt.Errorf("store.topics contains duplicate stream_id %q", t.StreamID)
		}
		topics[t.StreamID] = struct{}{}
	}
	return nil
}

func (c *Config) validateWebSocket() error {
	w := c.WebSocket
	if w.Path == "" || w.Path[0] != '/' {
		return fmt.Errorf("WS_PATH must start with '/', got %q", w.Path)
	}
	if w.SendBuffer <= 0 {
		return fmt.Errorf("WS_SEND_BUFFER must be positive")
	}
	if w.WriteWait <= 0 || w.PongWait <= 0 {
		return fmt.Errorf("WS_WRITE_WAIT and WS_PONG_WAIT must be positive")
	}
	if w.MaxMessageSize <= 0 {
		return fmt.Errorf("WS_MAX_MESSAGE_SIZE must be positive")
	}
	if w.MaxConnections < 0 {
		return fmt.Errorf("WS_MAX_CONNECTIONS must not be negative")
	}
	if w.ClientRate <= 0 || w.ClientBurst <= 0 {
		return fmt.Errorf("WS_CLIENT_RATE and WS_CLIENT_BURST must be positive")
	}
	if w.MaxSubscriptions <= 0 {
		return fmt.Errorf("WS_MAX_SUBSCRIPTIONS must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateNATS() error {
	if !c.NATS.Enabled {
		return nil
	}
	if !c.NATS.EmbeddedServer && c.NATS.URL == "" {
		return fmt.Errorf("NATS_URL is required when NATS_ENABLED=true and NATS_EMBEDDED=false")
	}
	if c.NATS.SubjectPrefix == "" {
		return fmt.Errorf("NATS_SUBJECT_PREFIX must not be empty")
	}
	if c.NATS.Buffer <= 0 {
		return fmt.Errorf("NATS_BUFFER must be positive")
	}
	return nil
}
