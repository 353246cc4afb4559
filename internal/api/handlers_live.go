// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package api

import (
	"net/http"

	"github.com/tomtom215/debatelive/internal/command"
)

// GetDebateTopic returns a stream's debate topic, or the first configured
// topic when stream_id is absent.
//
// @Summary Get debate topic
// @Description Returns the motion and side labels of one stream
// @Tags Live
// @Produce json
// @Param stream_id query string false "Stream id"
// @Success 200 {object} models.Response{data=state.Topic}
// @Failure 404 {object} models.Response
// @Router /api/v1/debate-topic [get]
func (h *Handler) GetDebateTopic(w http.ResponseWriter, r *http.Request) {
	topic, err := h.store.Topic(queryParam(r, "stream_id", "streamId"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, topic, "")
}

// SetDebateTopic creates or replaces a stream's debate topic and notifies
// its subscribers.
//
// @Summary Set debate topic
// @Tags Live
// @Accept json
// @Produce json
// @Param request body command.TopicCommand true "Topic"
// @Success 200 {object} models.Response{data=state.Topic}
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /api/admin/debate-topic [put]
func (h *Handler) SetDebateTopic(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	cmd, err := command.DecodeTopic(body)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if cmd.StreamID == "" {
		cmd.StreamID = queryParam(r, "stream_id", "streamId")
	}

	topic, err := h.processor.SetTopic(r.Context(), cmd)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, topic, "debate topic updated")
}

// LiveStatus reports whether the broadcast is on air.
//
// @Summary Live status
// @Tags Live
// @Produce json
// @Success 200 {object} models.Response{data=state.LiveStatus}
// @Router /api/admin/live/status [get]
func (h *Handler) LiveStatus(w http.ResponseWriter, r *http.Request) {
	respondOK(w, h.store.LiveStatus(), "")
}

// LiveControl starts or stops the broadcast.
//
// @Summary Start or stop the broadcast
// @Tags Live
// @Accept json
// @Produce json
// @Param request body command.LiveCommand true "Action"
// @Success 200 {object} models.Response{data=state.LiveStatus}
// @Failure 400 {object} models.Response
// @Failure 404 {object} models.Response
// @Router /api/live/control [post]
func (h *Handler) LiveControl(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		respondError(w, r, err)
		return
	}
	cmd, err := command.DecodeLive(body)
	if err != nil {
		respondError(w, r, err)
		return
	}

	status, err := h.processor.ControlLive(r.Context(), cmd)
	if err != nil {
		respondError(w, r, err)
		return
	}
	msg := "live stopped"
	if status.IsLive {
		msg = "live started"
	}
	respondOK(w, status, msg)
}

// Dashboard returns the operator overview. With stream_id the vote figures
// describe that stream alone.
//
// @Summary Operator dashboard
// @Tags Admin
// @Produce json
// @Param stream_id query string false "Stream id"
// @Success 200 {object} models.Response{data=state.Dashboard}
// @Failure 404 {object} models.Response
// @Router /api/admin/dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.store.Dashboard(queryParam(r, "stream_id", "streamId"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	if h.wsHub != nil {
		d.ActiveUsers = h.wsHub.GetClientCount()
	}
	respondOK(w, d, "")
}
