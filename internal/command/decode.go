// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package command

import (
	"bytes"

	"github.com/goccy/go-json"

	"github.com/tomtom215/debatelive/internal/state"
)

// unwrap returns the object under "request" when the body is wrapped as
// {"request": {...}}, otherwise the body itself.
func unwrap(body []byte) ([]byte, error) {
	var env struct {
		Request json.RawMessage `json:"request"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, state.Validationf("request body must be a JSON object")
	}
	if trimmed := bytes.TrimSpace(env.Request); len(trimmed) > 0 && trimmed[0] == '{' {
		return trimmed, nil
	}
	return body, nil
}

// firstNonEmpty picks the camelCase value, falling back to the snake_case alias.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// decodeInt accepts only JSON integers. A null literal would otherwise
// unmarshal into 0 without error.
func decodeInt(raw json.RawMessage) (int, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0, false
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	return n, true
}

type voteWire struct {
	StreamID    string          `json:"streamId"`
	StreamIDAlt string          `json:"stream_id"`
	UserID      string          `json:"userId"`
	UserIDAlt   string          `json:"user_id"`
	LeftVotes   json.RawMessage `json:"leftVotes"`
	RightVotes  json.RawMessage `json:"rightVotes"`
}

// DecodeVote parses a vote submission body. Both camelCase and snake_case
// identifiers are accepted and the body may be wrapped in "request".
func DecodeVote(body []byte) (VoteCommand, error) {
	inner, err := unwrap(body)
	if err != nil {
		return VoteCommand{}, err
	}
	var w voteWire
	if err := json.Unmarshal(inner, &w); err != nil {
		return VoteCommand{}, state.Validationf("leftVotes and rightVotes must be integers")
	}

	left, okLeft := decodeInt(w.LeftVotes)
	right, okRight := decodeInt(w.RightVotes)
	if !okLeft || !okRight {
		return VoteCommand{}, state.Validationf("leftVotes and rightVotes must be integers")
	}

	return VoteCommand{
		StreamID:   firstNonEmpty(w.StreamID, w.StreamIDAlt),
		UserID:     firstNonEmpty(w.UserID, w.UserIDAlt),
		LeftVotes:  left,
		RightVotes: right,
	}, nil
}

type commentWire struct {
	ContentID    string `json:"contentId"`
	ContentIDAlt string `json:"content_id"`
	CommentID    string `json:"commentId"`
	CommentIDAlt string `json:"comment_id"`
	Text         string `json:"text"`
	User         string `json:"user"`
	Avatar       string `json:"avatar"`
}

func decodeCommentWire(body []byte) (commentWire, error) {
	var w commentWire
	if len(bytes.TrimSpace(body)) == 0 {
		return w, nil
	}
	inner, err := unwrap(body)
	if err != nil {
		return w, err
	}
	if err := json.Unmarshal(inner, &w); err != nil {
		return w, state.Validationf("request body must be a JSON object")
	}
	return w, nil
}

// DecodeComment parses a comment submission body.
func DecodeComment(body []byte) (CommentCommand, error) {
	w, err := decodeCommentWire(body)
	if err != nil {
		return CommentCommand{}, err
	}
	return CommentCommand{
		ContentID: firstNonEmpty(w.ContentID, w.ContentIDAlt),
		Text:      w.Text,
		User:      w.User,
		Avatar:    w.Avatar,
	}, nil
}

// DecodeCommentRef parses {contentId, commentId}. An empty body yields an
// empty ref so callers can fill it from the URL.
func DecodeCommentRef(body []byte) (CommentRef, error) {
	w, err := decodeCommentWire(body)
	if err != nil {
		return CommentRef{}, err
	}
	return CommentRef{
		ContentID: firstNonEmpty(w.ContentID, w.ContentIDAlt),
		CommentID: firstNonEmpty(w.CommentID, w.CommentIDAlt),
	}, nil
}
