// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package state

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// AggregateSnapshot is an immutable point-in-time read of an event's vote
// totals. It is also the payload of a vote_update notification.
type AggregateSnapshot struct {
	EventID     string    `json:"streamId"`
	LeftVotes   int       `json:"leftVotes"`
	RightVotes  int       `json:"rightVotes"`
	TotalVotes  int       `json:"totalVotes"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// HistoryEntry records the totals right after one applied vote.
type HistoryEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	LeftVotes  int       `json:"leftVotes"`
	RightVotes int       `json:"rightVotes"`
	TotalVotes int       `json:"totalVotes"`
}

// Comment is a stored comment. It is also the payload of new_comment and
// comment_liked notifications.
type Comment struct {
	ID        string    `json:"id"`
	ContentID string    `json:"contentId"`
	Text      string    `json:"text"`
	User      string    `json:"user"`
	Avatar    string    `json:"avatar"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
	IsLiked   bool      `json:"isLiked"`
}

// CommentRemoved is the payload of a comment_removed notification.
type CommentRemoved struct {
	ContentID string `json:"contentId"`
	CommentID string `json:"commentId"`
}

// eventState is the mutable record for one event. Every field below mu is
// guarded by mu; snap may be loaded without it.
type eventState struct {
	id string

	mu       sync.Mutex
	left     int
	right    int
	updated  time.Time
	history  []HistoryEntry
	comments []Comment
	topic    *Topic

	snap atomic.Pointer[AggregateSnapshot]
}

func newEventState(id string, left, right int, now time.Time) *eventState {
	ev := &eventState{id: id, left: left, right: right, updated: now}
	ev.publishSnapshot()
	return ev
}

// publishSnapshot stores a fresh immutable snapshot. Caller holds mu, or owns
// ev exclusively.
func (ev *eventState) publishSnapshot() *AggregateSnapshot {
	s := &AggregateSnapshot{
		EventID:     ev.id,
		LeftVotes:   ev.left,
		RightVotes:  ev.right,
		TotalVotes:  ev.left + ev.right,
		LastUpdated: ev.updated,
	}
	ev.snap.Store(s)
	return s
}

// applyVote adds the deltas and appends the new totals to the history. Caller
// holds mu.
func (ev *eventState) applyVote(left, right int, now time.Time, historyLimit int) *AggregateSnapshot {
	ev.left += left
	ev.right += right
	ev.updated = now

	ev.history = append(ev.history, HistoryEntry{
		Timestamp:  now,
		LeftVotes:  ev.left,
		RightVotes: ev.right,
		TotalVotes: ev.left + ev.right,
	})
	if historyLimit > 0 && len(ev.history) > historyLimit {
		// Drop the oldest entries, reusing the backing array.
		n := copy(ev.history, ev.history[len(ev.history)-historyLimit:])
		clear(ev.history[n:])
		ev.history = ev.history[:n]
	}
	return ev.publishSnapshot()
}

func (ev *eventState) commentIndex(commentID string) int {
	return slices.IndexFunc(ev.comments, func(c Comment) bool { return c.ID == commentID })
}

// removeComment deletes the comment keeping the relative order of the rest.
// Caller holds mu.
func (ev *eventState) removeComment(commentID string) bool {
	i := ev.commentIndex(commentID)
	if i < 0 {
		return false
	}
	ev.comments = slices.Delete(ev.comments, i, i+1)
	return true
}

// likeComment increments the like counter by one. Caller holds mu.
func (ev *eventState) likeComment(commentID string) (Comment, bool) {
	i := ev.commentIndex(commentID)
	if i < 0 {
		return Comment{}, false
	}
	ev.comments[i].Likes++
	ev.comments[i].IsLiked = true
	return ev.comments[i], true
}
