// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tomtom215/debatelive/internal/state"
)

func TestSetTopic(t *testing.T) {
	p, store := setupProcessor(t)

	got, err := p.SetTopic(context.Background(), TopicCommand{
		StreamID:  " stream-1 ",
		Title:     "Should AI be conscious?",
		LeftSide:  "Yes",
		RightSide: "No",
	})
	if err != nil {
		t.Fatalf("SetTopic: %v", err)
	}
	if got.StreamID != "stream-1" || got.LeftPosition != "Yes" {
		t.Errorf("topic = %+v", got)
	}
	stored, err := store.Topic("stream-1")
	if err != nil || stored != got {
		t.Errorf("stored = %+v, %v", stored, err)
	}
}

func TestSetTopic_Rejections(t *testing.T) {
	p, _ := setupProcessor(t)

	tests := []struct {
		name    string
		cmd     TopicCommand
		target  error
		message string
	}{
		{"blank title", TopicCommand{StreamID: "stream-1", Title: " ", LeftSide: "a", RightSide: "b"}, state.ErrValidation, "title"},
		{"missing side", TopicCommand{StreamID: "stream-1", Title: "t", LeftSide: "a"}, state.ErrValidation, "rightSide"},
		{"long side", TopicCommand{StreamID: "stream-1", Title: "t", LeftSide: strings.Repeat("a", 65), RightSide: "b"}, state.ErrValidation, "leftSide"},
		{"unknown stream", TopicCommand{StreamID: "stream-9", Title: "t", LeftSide: "a", RightSide: "b"}, state.ErrNotFound, "not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.SetTopic(context.Background(), tt.cmd)
			if !errors.Is(err, tt.target) {
				t.Fatalf("err = %v, want %v", err, tt.target)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("message %q does not mention %q", err.Error(), tt.message)
			}
		})
	}
}

func TestControlLive(t *testing.T) {
	p, store := setupProcessor(t)
	ctx := context.Background()

	st, err := p.ControlLive(ctx, LiveCommand{Action: " Start ", StreamID: "stream-1"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !st.IsLive || st.CurrentStreamID != "stream-1" {
		t.Errorf("after start = %+v", st)
	}

	if _, err := p.ControlLive(ctx, LiveCommand{Action: "pause"}); !errors.Is(err, state.ErrValidation) {
		t.Errorf("bad action: err = %v", err)
	}
	if _, err := p.ControlLive(ctx, LiveCommand{}); !errors.Is(err, state.ErrValidation) {
		t.Errorf("missing action: err = %v", err)
	}
	if !store.LiveStatus().IsLive {
		t.Error("rejected commands must not stop the broadcast")
	}

	st, err = p.ControlLive(ctx, LiveCommand{Action: "stop"})
	if err != nil || st.IsLive {
		t.Errorf("stop = %+v, %v", st, err)
	}
}

func TestDecodeTopic(t *testing.T) {
	got, err := DecodeTopic([]byte(`{"request":{"stream_id":"stream-2","title":"T","left_side":"L","rightSide":"R"}}`))
	if err != nil {
		t.Fatalf("DecodeTopic: %v", err)
	}
	want := TopicCommand{StreamID: "stream-2", Title: "T", LeftSide: "L", RightSide: "R"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	if _, err := DecodeTopic([]byte(`[1]`)); !errors.Is(err, state.ErrValidation) {
		t.Errorf("array body: err = %v", err)
	}
}

func TestDecodeLive(t *testing.T) {
	got, err := DecodeLive([]byte(`{"action":"start","stream_id":"stream-1"}`))
	if err != nil {
		t.Fatalf("DecodeLive: %v", err)
	}
	if got != (LiveCommand{Action: "start", StreamID: "stream-1"}) {
		t.Errorf("got %+v", got)
	}

	if _, err := DecodeLive(nil); !errors.Is(err, state.ErrValidation) {
		t.Errorf("empty body: err = %v", err)
	}
}
