// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config files searched in order of priority.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/debatelive/config.yaml",
	"/etc/debatelive/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Store: StoreConfig{
			BallotUnit:      100,
			Provisioning:    ProvisionExplicit,
			HistoryLimit:    500,
			SeedEvents:      []string{"stream-1", "stream-2", "stream-3", "content-1", "content-2", "content-3"},
			SeedLeftVotes:   100,
			SeedRightVotes:  100,
			AnonymousUser:   "guest",
			AnonymousAuthor: "匿名用户",
			AnonymousAvatar: "👤",
			Topics: []TopicConfig{
				{
					StreamID:    "stream-1",
					Title:       "如果有一个能一键消除痛苦的按钮，你会按吗？",
					Description: "这是一个关于痛苦、成长与人性选择的深度辩论。探讨人类面对痛苦时的选择，以及这种选择对个人和社会的影响。",
					LeftSide:    "会按",
					RightSide:   "不会按",
				},
				{
					StreamID:    "stream-2",
					Title:       "人工智能应该拥有自主意识吗？",
					Description: "随着AI技术的快速发展，我们需要思考机器是否应该拥有自主意识，以及这将如何影响人类社会。",
					LeftSide:    "应该",
					RightSide:   "不应该",
				},
				{
					StreamID:    "stream-3",
					Title:       "社交媒体促进了还是阻碍了人际关系？",
					Description: "社交媒体的普及改变了人们沟通的方式，我们需要探讨它对真实人际关系的影响。",
					LeftSide:    "促进了",
					RightSide:   "阻碍了",
				},
			},
		},
		Reset: ResetConfig{
			Enabled:  false,
			Interval: 5 * time.Minute,
		},
		WebSocket: WebSocketConfig{
			Path:           "/ws",
			SendBuffer:     256,
			WriteWait:      10 * time.Second,
			PongWait:       60 * time.Second,
			MaxMessageSize: 4096,
			MaxConnections: 1000,
			ClientRate:     10,
			ClientBurst:    20,

			MaxSubscriptions: 32,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: 15 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		NATS: NATSConfig{
			Enabled:            false,
			URL:                "nats://127.0.0.1:4222",
			EmbeddedServer:     true,
			Host:               "127.0.0.1",
			Port:               4222,
			SubjectPrefix:      "debate",
			Buffer:             1024,
			BreakerMaxRequests: 3,
			BreakerInterval:    time.Minute,
			BreakerTimeout:     30 * time.Second,
			BreakerTrips:       5,
		},
	}
}

// Load builds the configuration from three layers:
//  1. built-in defaults
//  2. an optional YAML file (CONFIG_PATH or DefaultConfigPaths)
//  3. environment variables (see envTransformFunc)
//
// The result is validated before it is returned.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// sliceConfigPaths are split on commas when they arrive as a single string
// from the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"store.seed_events",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		s, ok := k.Get(path).(string)
		if !ok || s == "" {
			continue
		}
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if err := k.Set(path, out); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	"http_host":        "server.host",
	"http_port":        "server.port",
	"port":             "server.port",
	"read_timeout":     "server.read_timeout",
	"write_timeout":    "server.write_timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	"ballot_unit":        "store.ballot_unit",
	"store_provisioning": "store.provisioning",
	"vote_history_limit": "store.history_limit",
	"seed_events":        "store.seed_events",
	"seed_left_votes":    "store.seed_left_votes",
	"seed_right_votes":   "store.seed_right_votes",
	"anonymous_user":     "store.anonymous_user",
	"anonymous_author":   "store.anonymous_author",
	"anonymous_avatar":   "store.anonymous_avatar",

	"reset_enabled":  "reset.enabled",
	"reset_interval": "reset.interval",

	"ws_path":              "websocket.path",
	"ws_send_buffer":       "websocket.send_buffer",
	"ws_write_wait":        "websocket.write_wait",
	"ws_pong_wait":         "websocket.pong_wait",
	"ws_max_message_size":  "websocket.max_message_size",
	"ws_max_connections":   "websocket.max_connections",
	"ws_client_rate":       "websocket.client_rate",
	"ws_client_burst":      "websocket.client_burst",
	"ws_max_subscriptions": "websocket.max_subscriptions",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_requests",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"nats_enabled":        "nats.enabled",
	"nats_url":            "nats.url",
	"nats_embedded":       "nats.embedded_server",
	"nats_host":           "nats.host",
	"nats_port":           "nats.port",
	"nats_subject_prefix": "nats.subject_prefix",
	"nats_buffer":         "nats.buffer",

	"nats_breaker_max_requests": "nats.breaker_max_requests",
	"nats_breaker_interval":     "nats.breaker_interval",
	"nats_breaker_timeout":      "nats.breaker_timeout",
	"nats_breaker_trips":        "nats.breaker_trips",
}

// envTransformFunc turns e.g. BALLOT_UNIT into store.ballot_unit.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
