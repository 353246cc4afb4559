// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package command

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/debatelive/internal/logging"
	"github.com/tomtom215/debatelive/internal/state"
)

func TestMain(m *testing.M) {
	logging.SetLogger(logging.NewTestLogger(io.Discard))
	os.Exit(m.Run())
}

func setupProcessor(t *testing.T) (*Processor, *state.Store) {
	t.Helper()
	store := state.NewStore(state.Options{
		BallotUnit: 100,
		Seeds: []state.Seed{
			{ID: "stream-1", LeftVotes: 100, RightVotes: 100},
			{ID: "content-1"},
		},
	})
	p := NewProcessor(store, Defaults{User: "guest", Author: "匿名用户", Avatar: "👤"})
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p.now = func() time.Time { return fixed }
	return p, store
}

func TestSubmitVote_Receipt(t *testing.T) {
	p, _ := setupProcessor(t)

	r, err := p.SubmitVote(context.Background(), VoteCommand{StreamID: " stream-1 ", LeftVotes: 70, RightVotes: 30})
	if err != nil {
		t.Fatalf("SubmitVote: %v", err)
	}
	if r.StreamID != "stream-1" || r.UserID != "guest" {
		t.Errorf("ids = %q/%q", r.StreamID, r.UserID)
	}
	if r.LeftVotes != 70 || r.RightVotes != 30 || r.TotalVotes != 100 {
		t.Errorf("deltas = %d/%d/%d", r.LeftVotes, r.RightVotes, r.TotalVotes)
	}
	if r.Current.LeftVotes != 170 || r.Current.RightVotes != 130 || r.Current.TotalVotes != 300 {
		t.Errorf("current = %+v", r.Current)
	}
	if !r.Timestamp.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Errorf("timestamp = %v", r.Timestamp)
	}
}

func TestSubmitVote_Rejections(t *testing.T) {
	p, store := setupProcessor(t)

	tests := []struct {
		name    string
		cmd     VoteCommand
		target  error
		message string
	}{
		{"blank stream", VoteCommand{StreamID: "  ", LeftVotes: 50, RightVotes: 50}, state.ErrValidation, "streamId"},
		{"negative", VoteCommand{StreamID: "stream-1", LeftVotes: -10, RightVotes: 110}, state.ErrValidation, "leftVotes must not be negative"},
		{"wrong sum", VoteCommand{StreamID: "stream-1", LeftVotes: 50, RightVotes: 49}, state.ErrValidation, "must equal 100"},
		{"unknown stream", VoteCommand{StreamID: "stream-9", LeftVotes: 50, RightVotes: 50}, state.ErrNotFound, "not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.SubmitVote(context.Background(), tt.cmd)
			if !errors.Is(err, tt.target) {
				t.Fatalf("err = %v, want %v", err, tt.target)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("message %q does not mention %q", err.Error(), tt.message)
			}
		})
	}

	snap, _ := store.Snapshot("stream-1")
	if snap.TotalVotes != 200 {
		t.Errorf("rejected votes changed totals: %+v", snap)
	}
}

func TestAddComment_Defaults(t *testing.T) {
	p, _ := setupProcessor(t)

	c, err := p.AddComment(context.Background(), CommentCommand{ContentID: "content-1", Text: "  great point  "})
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if c.User != "匿名用户" || c.Avatar != "👤" {
		t.Errorf("defaults not applied: %+v", c)
	}
	if c.Text != "great point" {
		t.Errorf("text = %q", c.Text)
	}
	if c.ID == "" || c.Likes != 0 {
		t.Errorf("comment = %+v", c)
	}
}

func TestAddComment_Rejections(t *testing.T) {
	p, _ := setupProcessor(t)

	if _, err := p.AddComment(context.Background(), CommentCommand{ContentID: "content-1", Text: "   "}); !errors.Is(err, state.ErrValidation) {
		t.Errorf("blank text: err = %v", err)
	}
	if _, err := p.AddComment(context.Background(), CommentCommand{Text: "hi"}); !errors.Is(err, state.ErrValidation) {
		t.Errorf("missing content: err = %v", err)
	}
	if _, err := p.AddComment(context.Background(), CommentCommand{ContentID: "nope", Text: "hi"}); !errors.Is(err, state.ErrNotFound) {
		t.Errorf("unknown content: err = %v", err)
	}
}

func TestLikeAndRemoveComment(t *testing.T) {
	p, store := setupProcessor(t)
	ctx := context.Background()

	c, err := p.AddComment(ctx, CommentCommand{ContentID: "content-1", Text: "hi"})
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	ref := CommentRef{ContentID: "content-1", CommentID: c.ID}

	for i := 1; i <= 3; i++ {
		liked, err := p.LikeComment(ctx, ref)
		if err != nil {
			t.Fatalf("LikeComment: %v", err)
		}
		if liked.Likes != i {
			t.Errorf("likes = %d, want %d", liked.Likes, i)
		}
	}

	if err := p.RemoveComment(ctx, ref); err != nil {
		t.Fatalf("RemoveComment: %v", err)
	}
	if err := p.RemoveComment(ctx, ref); !errors.Is(err, state.ErrNotFound) {
		t.Errorf("second remove: err = %v", err)
	}
	if _, err := p.LikeComment(ctx, ref); !errors.Is(err, state.ErrNotFound) {
		t.Errorf("like removed: err = %v", err)
	}
	if err := p.RemoveComment(ctx, CommentRef{ContentID: "content-1"}); !errors.Is(err, state.ErrValidation) {
		t.Errorf("missing id: err = %v", err)
	}

	comments, _ := store.Comments("content-1")
	if len(comments) != 0 {
		t.Errorf("comments = %d, want 0", len(comments))
	}
}
