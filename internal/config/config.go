// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

// Package config loads DebateLive configuration from built-in defaults, an
// optional YAML file and environment variables, in that order of precedence.
package config

import "time"

// Provisioning modes for events that have not been seeded.
const (
	// ProvisionExplicit rejects writes to unknown events with a not-found error.
	ProvisionExplicit = "explicit"

	// ProvisionOnWrite creates an empty event on the first vote or comment.
	ProvisionOnWrite = "on_write"
)

// Config holds the full application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Store     StoreConfig     `koanf:"store"`
	Reset     ResetConfig     `koanf:"reset"`
	WebSocket WebSocketConfig `koanf:"websocket"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	NATS      NATSConfig      `koanf:"nats"` // Optional: change-feed mirror, requires -tags nats
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development or production
}

// StoreConfig controls the in-memory event store.
type StoreConfig struct {
	// BallotUnit is the exact sum every vote submission's left+right must reach.
	BallotUnit int `koanf:"ballot_unit"`

	// Provisioning is ProvisionExplicit or ProvisionOnWrite. Reads of unknown
	// events are not-found in both modes.
	Provisioning string `koanf:"provisioning"`

	// HistoryLimit caps voteHistory per event; the oldest entries are dropped.
	HistoryLimit int `koanf:"history_limit"`

	SeedEvents     []string `koanf:"seed_events"`
	SeedLeftVotes  int      `koanf:"seed_left_votes"`
	SeedRightVotes int      `koanf:"seed_right_votes"`

	AnonymousUser   string `koanf:"anonymous_user"`   // vote userId fallback
	AnonymousAuthor string `koanf:"anonymous_author"` // comment user fallback
	AnonymousAvatar string `koanf:"anonymous_avatar"` // comment avatar fallback

	// Topics are attached to seeded events by stream id. Topics for events
	// that are not seeded are ignored.
	Topics []TopicConfig `koanf:"topics"`
}

// TopicConfig is a debate topic loaded at startup and after every reset.
type TopicConfig struct {
	StreamID    string `koanf:"stream_id"`
	Title       string `koanf:"title"`
	Description string `koanf:"description"`
	LeftSide    string `koanf:"left_side"`
	RightSide   string `koanf:"right_side"`
}

// ResetConfig controls the periodic wholesale store reset.
type ResetConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Interval time.Duration `koanf:"interval"`
}

// WebSocketConfig holds push-connection tuning.
type WebSocketConfig struct {
	Path           string        `koanf:"path"`
	SendBuffer     int           `koanf:"send_buffer"`
	WriteWait      time.Duration `koanf:"write_wait"`
	PongWait       time.Duration `koanf:"pong_wait"`
	MaxMessageSize int64         `koanf:"max_message_size"`
	MaxConnections int           `koanf:"max_connections"`
	ClientRate     float64       `koanf:"client_rate"`  // inbound frames per second
	ClientBurst    int           `koanf:"client_burst"` // inbound burst size

	MaxSubscriptions int `koanf:"max_subscriptions"` // events one connection may follow
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// NATSConfig holds the optional change-feed mirror settings.
type NATSConfig struct {
	Enabled        bool   `koanf:"enabled"`
	URL            string `koanf:"url"`
	EmbeddedServer bool   `koanf:"embedded_server"`
	Host           string `koanf:"host"`
	Port           int    `koanf:"port"`
	SubjectPrefix  string `koanf:"subject_prefix"`
	Buffer         int    `koanf:"buffer"`

	BreakerMaxRequests uint32        `koanf:"breaker_max_requests"`
	BreakerInterval    time.Duration `koanf:"breaker_interval"`
	BreakerTimeout     time.Duration `koanf:"breaker_timeout"`
	BreakerTrips       uint32        `koanf:"breaker_trips"` // consecutive failures before opening
}

// Addr returns host:port for the HTTP listener.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}

// PingPeriod must be shorter than PongWait so the peer answers before the
// read deadline expires.
func (w WebSocketConfig) PingPeriod() time.Duration {
	return (w.PongWait * 9) / 10
}
