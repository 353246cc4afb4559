// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/debatelive/internal/logging"
	"github.com/tomtom215/debatelive/internal/metrics"
	"github.com/tomtom215/debatelive/internal/models"
	ws "github.com/tomtom215/debatelive/internal/websocket"
)

// WebSocket upgrades the request and joins the hub. The stream_id and
// content_id query parameters, when present, are subscribed before the
// first broadcast can reach the connection. Capacity is checked before the
// upgrade and enforced again when the client takes its hub slot.
//
// @Summary Open a WebSocket connection
// @Description Upgrades to WebSocket. Pushes vote_update, new_comment, comment_liked, comment_removed, debate_topic_update and live_status frames for subscribed events.
// @Tags Realtime
// @Param stream_id query string false "Stream to subscribe on open"
// @Param content_id query string false "Content to subscribe on open"
// @Success 101 "Switching Protocols"
// @Failure 503 {object} models.Response "Hub at capacity"
// @Router /ws [get]
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		logging.Warn().Msg("WebSocket connection rejected: hub not initialized")
		respondJSON(w, http.StatusServiceUnavailable, models.Fail("websocket service unavailable"))
		return
	}
	if h.wsHub.Full() {
		metrics.WSErrors.WithLabelValues("capacity").Inc()
		logging.Warn().Int("clients", h.wsHub.GetClientCount()).Msg("WebSocket connection rejected: at capacity")
		respondJSON(w, http.StatusServiceUnavailable, models.Fail("too many connections"))
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		metrics.WSErrors.WithLabelValues("upgrade").Inc()
		logging.Error().Err(err).Msg("WebSocket upgrade error")
		return
	}

	streamID := queryParam(r, "stream_id", "streamId")
	contentID := queryParam(r, "content_id", "contentId")
	client, err := h.wsHub.Connect(r.Context(), conn, streamID, contentID)
	if errors.Is(err, ws.ErrHubFull) {
		logging.Warn().Int("clients", h.wsHub.GetClientCount()).Msg("WebSocket connection closed: at capacity")
		return
	}
	if err != nil {
		logging.Warn().Err(err).Msg("WebSocket connection dropped before registration")
		return
	}
	logging.Ctx(r.Context()).Debug().
		Uint64("client_id", client.ID()).
		Str("stream_id", streamID).
		Str("content_id", contentID).
		Msg("WebSocket client connected")
}
