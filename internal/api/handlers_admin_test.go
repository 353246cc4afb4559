// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomtom215/debatelive/internal/models"
	"github.com/tomtom215/debatelive/internal/state"
)

func TestVoteStatistics(t *testing.T) {
	env := setupTestEnv(t, nil)
	if _, err := env.store.ApplyVote("stream-1", 70, 30); err != nil {
		t.Fatal(err)
	}

	_, body := env.do(t, http.MethodGet, "/api/v1/admin/votes/statistics?stream_id=stream-1", "")
	one := decodeData[state.Statistics](t, body)
	if one.LeftVotes != 170 || len(one.VoteTrend) != 1 || one.VoteTrend[0].LeftVotes != 170 {
		t.Errorf("stream stats = %+v", one)
	}

	_, body = env.do(t, http.MethodGet, "/api/v1/admin/votes/statistics", "")
	all := decodeData[state.Statistics](t, body)
	if all.TotalVotes != 500 || len(all.StreamStats) != 3 {
		t.Errorf("all stats = %+v", all)
	}

	rec, _ := env.do(t, http.MethodGet, "/api/v1/admin/votes/statistics?stream_id=nope", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown stream: %d", rec.Code)
	}
}

func TestStreams(t *testing.T) {
	env := setupTestEnv(t, nil)
	if _, err := env.store.AddComment("content-1", state.CommentInput{Text: "hi"}); err != nil {
		t.Fatal(err)
	}

	_, body := env.do(t, http.MethodGet, "/api/v1/admin/streams", "")
	list := decodeData[models.StreamList](t, body)
	if list.Total != 3 || len(list.Streams) != 3 {
		t.Fatalf("list = %+v", list)
	}
	if list.Streams[0].StreamID != "content-1" || list.Streams[0].CommentCount != 1 {
		t.Errorf("first = %+v", list.Streams[0])
	}
	if list.Streams[1].Votes.TotalVotes != 200 {
		t.Errorf("stream-1 = %+v", list.Streams[1])
	}
}

func TestRespondError_HidesInternalCause(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(rec, req, errors.New("disk on fire"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "disk") || !strings.Contains(rec.Body.String(), "internal server error") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{state.Validationf("bad"), http.StatusBadRequest},
		{state.NotFoundf("gone"), http.StatusNotFound},
		{state.Internal(errors.New("x"), "boom"), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	env := setupTestEnv(t, nil)
	rec, body := env.do(t, http.MethodGet, "/api/v1/nope", "")
	if rec.Code != http.StatusNotFound || body.Success {
		t.Errorf("status = %d, body = %+v", rec.Code, body)
	}
}
