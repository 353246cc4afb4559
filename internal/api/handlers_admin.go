// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package api

import (
	"net/http"

	"github.com/tomtom215/debatelive/internal/models"
)

// VoteStatistics returns statistics for one stream, or summed over every
// stream when stream_id is absent.
//
// @Summary Vote statistics
// @Tags Admin
// @Produce json
// @Param stream_id query string false "Stream id"
// @Success 200 {object} models.Response{data=state.Statistics} "Statistics"
// @Failure 404 {object} models.Response "Unknown stream"
// @Router /api/v1/admin/votes/statistics [get]
func (h *Handler) VoteStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Statistics(queryParam(r, "stream_id", "streamId"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, stats, "")
}

// Streams lists every known stream with its totals.
//
// @Summary List streams
// @Tags Admin
// @Produce json
// @Success 200 {object} models.Response{data=models.StreamList} "Known streams"
// @Router /api/v1/admin/streams [get]
func (h *Handler) Streams(w http.ResponseWriter, r *http.Request) {
	ids := h.store.EventIDs()
	list := models.StreamList{Streams: make([]models.StreamSummary, 0, len(ids))}

	for _, id := range ids {
		snap, err := h.store.Snapshot(id)
		if err != nil {
			// Replaced since EventIDs.
			continue
		}
		comments, err := h.store.Comments(id)
		if err != nil {
			continue
		}
		summary := models.StreamSummary{
			StreamID:     id,
			Votes:        snap,
			CommentCount: len(comments),
		}
		if h.wsHub != nil {
			summary.Subscriptions = h.wsHub.Registry().SubscriberCount(id)
		}
		list.Streams = append(list.Streams, summary)
	}
	list.Total = len(list.Streams)
	respondOK(w, list, "")
}
