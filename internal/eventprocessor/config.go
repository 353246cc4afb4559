// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package eventprocessor

import (
	"time"

	"github.com/tomtom215/debatelive/internal/config"
)

// ServerConfig holds embedded NATS server settings.
type ServerConfig struct {
	Host       string
	Port       int
	MaxPayload int32
}

// PublisherConfig holds NATS publisher connection settings.
type PublisherConfig struct {
	URL             string
	MaxReconnects   int
	ReconnectWait   time.Duration
	ReconnectBuffer int
}

// DefaultPublisherConfig returns production defaults for publisher.
func DefaultPublisherConfig(url string) PublisherConfig {
	return PublisherConfig{
		URL:             url,
		MaxReconnects:   -1, // Unlimited
		ReconnectWait:   2 * time.Second,
		ReconnectBuffer: 8 * 1024 * 1024, // 8MB
	}
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	Name             string
	MaxRequests      uint32        // Allowed in half-open state
	Interval         time.Duration // Reset interval for counts
	Timeout          time.Duration // Time to stay open
	FailureThreshold uint32        // Failures before opening
}

// DefaultCircuitBreakerConfig returns production defaults.
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:             name,
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// MirrorConfig configures a Mirror.
type MirrorConfig struct {
	// Embedded starts an in-process NATS server and publishes to it instead
	// of Publisher.URL.
	Embedded bool
	Server   ServerConfig

	Publisher PublisherConfig
	Breaker   CircuitBreakerConfig

	SubjectPrefix string

	// Buffer is the number of changes queued before new ones are dropped.
	Buffer int

	// PublishTimeout bounds a single publish attempt.
	PublishTimeout time.Duration
}

// DefaultMirrorConfig returns defaults for a mirror publishing to url.
func DefaultMirrorConfig(url string) MirrorConfig {
	return MirrorConfig{
		Server: ServerConfig{
			Host:       "127.0.0.1",
			Port:       4222,
			MaxPayload: 1 << 20,
		},
		Publisher:      DefaultPublisherConfig(url),
		Breaker:        DefaultCircuitBreakerConfig("nats-mirror"),
		SubjectPrefix:  "debate",
		Buffer:         1024,
		PublishTimeout: 5 * time.Second,
	}
}

// MirrorConfigFromNATS maps the application's NATS settings onto a
// MirrorConfig. Zero breaker settings keep their defaults.
func MirrorConfigFromNATS(cfg config.NATSConfig) MirrorConfig {
	mc := DefaultMirrorConfig(cfg.URL)
	mc.Embedded = cfg.EmbeddedServer
	if cfg.Host != "" {
		mc.Server.Host = cfg.Host
	}
	if cfg.Port > 0 {
		mc.Server.Port = cfg.Port
	}
	if cfg.SubjectPrefix != "" {
		mc.SubjectPrefix = cfg.SubjectPrefix
	}
	if cfg.Buffer > 0 {
		mc.Buffer = cfg.Buffer
	}
	if cfg.BreakerMaxRequests > 0 {
		mc.Breaker.MaxRequests = cfg.BreakerMaxRequests
	}
	if cfg.BreakerInterval > 0 {
		mc.Breaker.Interval = cfg.BreakerInterval
	}
	if cfg.BreakerTimeout > 0 {
		mc.Breaker.Timeout = cfg.BreakerTimeout
	}
	if cfg.BreakerTrips > 0 {
		mc.Breaker.FailureThreshold = cfg.BreakerTrips
	}
	return mc
}
