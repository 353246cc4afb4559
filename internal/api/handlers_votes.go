// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package api

import (
	"net/http"

	"github.com/tomtom215/debatelive/internal/command"
	"github.com/tomtom215/debatelive/internal/state"
)

// GetVotes returns the current totals of one stream.
//
// @Summary Get vote totals
// @Description Returns the current left, right and total votes of one stream
// @Tags Votes
// @Produce json
// @Param stream_id query string true "Stream id"
// @Success 200 {object} models.Response{data=state.AggregateSnapshot} "Current totals"
// @Failure 400 {object} models.Response "stream_id missing"
// @Failure 404 {object} models.Response "Unknown stream"
// @Router /api/v1/votes [get]
func (h *Handler) GetVotes(w http.ResponseWriter, r *http.Request) {
	streamID := queryParam(r, "stream_id", "streamId")
	if streamID == "" {
		respondError(w, r, state.Validationf("stream_id is required"))
		return
	}

	snap, err := h.store.Snapshot(streamID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, snap, "")
}

// SubmitVote applies one viewer's ballot.
//
// The body may also be wrapped as {"request": {...}} and accepts stream_id
// and user_id aliases.
//
// @Summary Submit a vote
// @Description leftVotes + rightVotes must equal the configured ballot unit. The new totals are pushed to the stream's subscribers.
// @Tags Votes
// @Accept json
// @Produce json
// @Param request body command.VoteCommand true "Ballot"
// @Success 200 {object} models.Response{data=command.VoteReceipt} "Vote accepted"
// @Failure 400 {object} models.Response "Invalid ballot"
// @Failure 404 {object} models.Response "Unknown stream"
// @Failure 429 {object} models.Response "Rate limited"
// @Router /api/v1/user-vote [post]
func (h *Handler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	cmd, err := command.DecodeVote(body)
	if err != nil {
		respondError(w, r, err)
		return
	}

	receipt, err := h.processor.SubmitVote(r.Context(), cmd)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, receipt, "vote accepted")
}
