// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

// Package command validates and normalizes viewer submissions before they
// reach the store.
package command

import (
	"context"
	"strings"
	"time"

	"github.com/tomtom215/debatelive/internal/logging"
	"github.com/tomtom215/debatelive/internal/metrics"
	"github.com/tomtom215/debatelive/internal/state"
	"github.com/tomtom215/debatelive/internal/validation"
)

// Store is the subset of *state.Store the processor needs.
type Store interface {
	BallotUnit() int
	ApplyVote(eventID string, leftDelta, rightDelta int) (state.AggregateSnapshot, error)
	AddComment(eventID string, in state.CommentInput) (state.Comment, error)
	LikeComment(eventID, commentID string) (state.Comment, error)
	RemoveComment(eventID, commentID string) error
	SetTopic(eventID string, in state.TopicInput) (state.Topic, error)
	ControlLive(action, streamID string) (state.LiveStatus, error)
}

// Defaults are the anonymous placeholders applied to missing identities.
type Defaults struct {
	User   string // vote userId
	Author string // comment user
	Avatar string // comment avatar
}

// VoteCommand is a vote submission.
type VoteCommand struct {
	StreamID   string `json:"streamId" validate:"notblank"`
	UserID     string `json:"userId"`
	LeftVotes  int    `json:"leftVotes" validate:"min=0"`
	RightVotes int    `json:"rightVotes" validate:"min=0"`
}

// VoteReceipt echoes an accepted vote together with the resulting totals.
type VoteReceipt struct {
	StreamID   string                  `json:"streamId"`
	UserID     string                  `json:"userId"`
	LeftVotes  int                     `json:"leftVotes"`
	RightVotes int                     `json:"rightVotes"`
	TotalVotes int                     `json:"totalVotes"`
	Timestamp  time.Time               `json:"timestamp"`
	Current    state.AggregateSnapshot `json:"current"`
}

// CommentCommand is a comment submission.
type CommentCommand struct {
	ContentID string `json:"contentId" validate:"notblank"`
	Text      string `json:"text" validate:"notblank,max=2000"`
	User      string `json:"user" validate:"max=64"`
	Avatar    string `json:"avatar" validate:"max=64"`
}

// CommentRef addresses one comment.
type CommentRef struct {
	ContentID string `json:"contentId" validate:"notblank"`
	CommentID string `json:"commentId" validate:"notblank"`
}

// Processor runs commands against a Store.
type Processor struct {
	store    Store
	defaults Defaults
	now      func() time.Time
}

// NewProcessor creates a Processor.
func NewProcessor(store Store, defaults Defaults) *Processor {
	return &Processor{
		store:    store,
		defaults: defaults,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func validate(v any) error {
	if verr := validation.ValidateStruct(v); verr != nil {
		return &state.Error{Kind: state.KindValidation, Err: verr}
	}
	return nil
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return state.KindOf(err).String()
}

// SubmitVote validates cmd and applies it.
func (p *Processor) SubmitVote(ctx context.Context, cmd VoteCommand) (VoteReceipt, error) {
	cmd.StreamID = strings.TrimSpace(cmd.StreamID)
	cmd.UserID = strings.TrimSpace(cmd.UserID)
	if cmd.UserID == "" {
		cmd.UserID = p.defaults.User
	}

	receipt, err := p.submitVote(cmd)
	metrics.RecordVote(resultLabel(err))
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).
			Str("stream_id", cmd.StreamID).
			Str("kind", state.KindOf(err).String()).
			Msg("vote rejected")
		return VoteReceipt{}, err
	}

	logging.Ctx(ctx).Debug().
		Str("stream_id", cmd.StreamID).
		Str("user_id", cmd.UserID).
		Int("left_votes", receipt.Current.LeftVotes).
		Int("right_votes", receipt.Current.RightVotes).
		Msg("vote applied")
	return receipt, nil
}

func (p *Processor) submitVote(cmd VoteCommand) (VoteReceipt, error) {
	if err := validate(&cmd); err != nil {
		return VoteReceipt{}, err
	}
	if ballot := p.store.BallotUnit(); cmd.LeftVotes+cmd.RightVotes != ballot {
		return VoteReceipt{}, state.Validationf("leftVotes + rightVotes must equal %d", ballot)
	}

	snap, err := p.store.ApplyVote(cmd.StreamID, cmd.LeftVotes, cmd.RightVotes)
	if err != nil {
		return VoteReceipt{}, err
	}
	return VoteReceipt{
		StreamID:   cmd.StreamID,
		UserID:     cmd.UserID,
		LeftVotes:  cmd.LeftVotes,
		RightVotes: cmd.RightVotes,
		TotalVotes: cmd.LeftVotes + cmd.RightVotes,
		Timestamp:  p.now(),
		Current:    snap,
	}, nil
}

// AddComment validates cmd, applies the anonymous defaults and stores it.
func (p *Processor) AddComment(ctx context.Context, cmd CommentCommand) (state.Comment, error) {
	cmd.ContentID = strings.TrimSpace(cmd.ContentID)
	cmd.User = strings.TrimSpace(cmd.User)
	cmd.Avatar = strings.TrimSpace(cmd.Avatar)
	if cmd.User == "" {
		cmd.User = p.defaults.Author
	}
	if cmd.Avatar == "" {
		cmd.Avatar = p.defaults.Avatar
	}

	var c state.Comment
	err := validate(&cmd)
	if err == nil {
		c, err = p.store.AddComment(cmd.ContentID, state.CommentInput{Author: cmd.User, Avatar: cmd.Avatar, Text: cmd.Text})
	}
	metrics.RecordCommentOp("add", resultLabel(err))
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("content_id", cmd.ContentID).Msg("comment rejected")
		return state.Comment{}, err
	}
	logging.Ctx(ctx).Debug().Str("content_id", c.ContentID).Str("comment_id", c.ID).Msg("comment added")
	return c, nil
}

// LikeComment adds one like to the referenced comment.
func (p *Processor) LikeComment(ctx context.Context, ref CommentRef) (state.Comment, error) {
	ref = trimRef(ref)
	var c state.Comment
	err := validate(&ref)
	if err == nil {
		c, err = p.store.LikeComment(ref.ContentID, ref.CommentID)
	}
	metrics.RecordCommentOp("like", resultLabel(err))
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("content_id", ref.ContentID).Str("comment_id", ref.CommentID).Msg("like rejected")
		return state.Comment{}, err
	}
	return c, nil
}

// RemoveComment deletes the referenced comment.
func (p *Processor) RemoveComment(ctx context.Context, ref CommentRef) error {
	ref = trimRef(ref)
	err := validate(&ref)
	if err == nil {
		err = p.store.RemoveComment(ref.ContentID, ref.CommentID)
	}
	metrics.RecordCommentOp("remove", resultLabel(err))
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("content_id", ref.ContentID).Str("comment_id", ref.CommentID).Msg("remove rejected")
		return err
	}
	logging.Ctx(ctx).Info().Str("content_id", ref.ContentID).Str("comment_id", ref.CommentID).Msg("comment removed")
	return nil
}

func trimRef(ref CommentRef) CommentRef {
	return CommentRef{
		ContentID: strings.TrimSpace(ref.ContentID),
		CommentID: strings.TrimSpace(ref.CommentID),
	}
}
