// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package api

import (
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/debatelive/internal/command"
	"github.com/tomtom215/debatelive/internal/config"
	"github.com/tomtom215/debatelive/internal/logging"
	"github.com/tomtom215/debatelive/internal/state"
	ws "github.com/tomtom215/debatelive/internal/websocket"
)

// Version is reported by the health endpoints. Overridden at build time with
// -ldflags "-X github.com/tomtom215/debatelive/internal/api.Version=...".
var Version = "dev"

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, upgrader (this file)
//   - handlers_helpers.go: response and request helpers
//   - handlers_votes.go: vote endpoints
//   - handlers_comments.go: comment endpoints
//   - handlers_admin.go: statistics and stream listing
//   - handlers_live.go: debate topic, live status and dashboard
//   - handlers_health.go: health checks
//   - handlers_websocket.go: WebSocket upgrade
type Handler struct {
	store     *state.Store
	processor *command.Processor
	wsHub     *ws.Hub
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler := api.NewHandler(store, processor, hub, cfg)
//	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security)))
//	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
func NewHandler(store *state.Store, processor *command.Processor, hub *ws.Hub, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		processor: processor,
		wsHub:     hub,
		config:    cfg,
		startTime: time.Now(),
	}
}

// getUpgrader creates a WebSocket upgrader with origin checking and a
// handshake timeout.
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin validates WebSocket connection origins against the
// configured CORS origins. A "*" entry accepts every origin, including
// non-browser clients that send none.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	if h.config == nil {
		return true
	}
	origins := h.config.Security.CORSOrigins
	if slices.Contains(origins, "*") {
		return true
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		logging.Warn().Msg("WebSocket connection rejected: missing Origin header")
		return false
	}
	if slices.Contains(origins, origin) {
		return true
	}
	logging.Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket connection rejected: origin not allowed")
	return false
}
