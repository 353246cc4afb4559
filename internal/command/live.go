// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package command

import (
	"bytes"
	"context"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/debatelive/internal/logging"
	"github.com/tomtom215/debatelive/internal/state"
)

// TopicCommand sets the debate topic of one stream.
type TopicCommand struct {
	StreamID    string `json:"streamId" validate:"notblank"`
	Title       string `json:"title" validate:"notblank,max=200"`
	Description string `json:"description" validate:"max=2000"`
	LeftSide    string `json:"leftSide" validate:"notblank,max=64"`
	RightSide   string `json:"rightSide" validate:"notblank,max=64"`
}

// LiveCommand starts or stops the broadcast.
type LiveCommand struct {
	Action   string `json:"action" validate:"oneof=start stop"`
	StreamID string `json:"streamId"`
}

// SetTopic validates cmd and stores it as the stream's topic.
func (p *Processor) SetTopic(ctx context.Context, cmd TopicCommand) (state.Topic, error) {
	cmd.StreamID = strings.TrimSpace(cmd.StreamID)

	var t state.Topic
	err := validate(&cmd)
	if err == nil {
		t, err = p.store.SetTopic(cmd.StreamID, state.TopicInput{
			Title:       cmd.Title,
			Description: cmd.Description,
			LeftSide:    cmd.LeftSide,
			RightSide:   cmd.RightSide,
		})
	}
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("stream_id", cmd.StreamID).Msg("topic rejected")
		return state.Topic{}, err
	}
	logging.Ctx(ctx).Info().Str("stream_id", t.StreamID).Str("topic_id", t.ID).Msg("debate topic set")
	return t, nil
}

// ControlLive validates cmd and applies it to the live status.
func (p *Processor) ControlLive(ctx context.Context, cmd LiveCommand) (state.LiveStatus, error) {
	cmd.Action = strings.ToLower(strings.TrimSpace(cmd.Action))
	cmd.StreamID = strings.TrimSpace(cmd.StreamID)

	var st state.LiveStatus
	err := validate(&cmd)
	if err == nil {
		st, err = p.store.ControlLive(cmd.Action, cmd.StreamID)
	}
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("action", cmd.Action).Msg("live control rejected")
		return state.LiveStatus{}, err
	}
	logging.Ctx(ctx).Info().
		Str("action", cmd.Action).
		Str("stream_id", st.CurrentStreamID).
		Bool("is_live", st.IsLive).
		Msg("live status changed")
	return st, nil
}

type topicWire struct {
	StreamID     string `json:"streamId"`
	StreamIDAlt  string `json:"stream_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	LeftSide     string `json:"leftSide"`
	LeftSideAlt  string `json:"left_side"`
	RightSide    string `json:"rightSide"`
	RightSideAlt string `json:"right_side"`
}

// DecodeTopic parses a topic body. The stream id may instead come from the
// URL, so it is allowed to be missing here.
func DecodeTopic(body []byte) (TopicCommand, error) {
	inner, err := unwrap(body)
	if err != nil {
		return TopicCommand{}, err
	}
	var w topicWire
	if err := json.Unmarshal(inner, &w); err != nil {
		return TopicCommand{}, state.Validationf("request body must be a JSON object")
	}
	return TopicCommand{
		StreamID:    firstNonEmpty(w.StreamID, w.StreamIDAlt),
		Title:       w.Title,
		Description: w.Description,
		LeftSide:    firstNonEmpty(w.LeftSide, w.LeftSideAlt),
		RightSide:   firstNonEmpty(w.RightSide, w.RightSideAlt),
	}, nil
}

type liveWire struct {
	Action      string `json:"action"`
	StreamID    string `json:"streamId"`
	StreamIDAlt string `json:"stream_id"`
}

// DecodeLive parses {action, streamId}.
func DecodeLive(body []byte) (LiveCommand, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return LiveCommand{}, state.Validationf("action must be start or stop")
	}
	inner, err := unwrap(body)
	if err != nil {
		return LiveCommand{}, err
	}
	var w liveWire
	if err := json.Unmarshal(inner, &w); err != nil {
		return LiveCommand{}, state.Validationf("request body must be a JSON object")
	}
	return LiveCommand{
		Action:   w.Action,
		StreamID: firstNonEmpty(w.StreamID, w.StreamIDAlt),
	}, nil
}
