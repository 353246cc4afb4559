// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package state

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Notification types handed to a ChangeSink.
const (
	EventVoteUpdate     = "vote_update"
	EventNewComment     = "new_comment"
	EventCommentRemoved = "comment_removed"
	EventCommentLiked   = "comment_liked"
	EventTopicUpdate    = "debate_topic_update"
	EventLiveStatus     = "live_status"
)

// ChangeSink receives committed changes. Publish is called while the event's
// lock is held and must return without blocking.
type ChangeSink interface {
	Publish(eventID, eventType string, payload any)
}

// Provisioning decides what a write to an unknown event does.
type Provisioning int

const (
	// ProvisionExplicit answers writes to unknown events with ErrNotFound.
	ProvisionExplicit Provisioning = iota
	// ProvisionOnWrite creates an empty event on first write.
	ProvisionOnWrite
)

// Seed describes one event created by NewStore or Replace.
type Seed struct {
	ID         string
	LeftVotes  int
	RightVotes int
	Topic      *TopicInput // optional
}

// Options configures a Store.
type Options struct {
	BallotUnit   int
	Provisioning Provisioning
	HistoryLimit int
	Seeds        []Seed

	// Sink receives committed changes. Nil discards them.
	Sink ChangeSink

	// Now and NewID are replaceable for tests.
	Now   func() time.Time
	NewID func() string
}

// CommentInput is a normalized comment submission.
type CommentInput struct {
	Author string
	Avatar string
	Text   string
}

// Store maps event ids to their state and owns every mutation.
type Store struct {
	mu     sync.RWMutex
	events map[string]*eventState

	ballot       int
	provisioning Provisioning
	historyLimit int
	sink         ChangeSink
	now          func() time.Time
	newID        func() string

	// live is store-wide and survives Replace.
	liveMu sync.Mutex
	live   LiveStatus
}

type discardSink struct{}

func (discardSink) Publish(string, string, any) {}

type teeSink []ChangeSink

func (t teeSink) Publish(eventID, eventType string, payload any) {
	for _, s := range t {
		s.Publish(eventID, eventType, payload)
	}
}

// Tee returns a ChangeSink that hands every change to each non-nil sink in
// order.
func Tee(sinks ...ChangeSink) ChangeSink {
	out := make(teeSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// NewStore creates a Store holding opts.Seeds.
func NewStore(opts Options) *Store {
	s := &Store{
		ballot:       opts.BallotUnit,
		provisioning: opts.Provisioning,
		historyLimit: opts.HistoryLimit,
		sink:         opts.Sink,
		now:          opts.Now,
		newID:        opts.NewID,
	}
	if s.ballot <= 0 {
		s.ballot = 100
	}
	if s.sink == nil {
		s.sink = discardSink{}
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.New().String() }
	}
	s.events = s.buildTable(opts.Seeds)
	s.live = LiveStatus{Status: LiveStopped}
	return s
}

// BallotUnit returns the exact sum a vote's deltas must reach.
func (s *Store) BallotUnit() int {
	return s.ballot
}

func (s *Store) buildTable(seeds []Seed) map[string]*eventState {
	now := s.now()
	table := make(map[string]*eventState, len(seeds))
	for _, sd := range seeds {
		ev := newEventState(sd.ID, max(sd.LeftVotes, 0), max(sd.RightVotes, 0), now)
		if sd.Topic != nil {
			t := newTopic(s.newID(), sd.ID, sd.Topic.normalize(), now)
			ev.topic = &t
		}
		table[sd.ID] = ev
	}
	return table
}

// withEvent runs fn under the event's lock, provisioning the event first when
// the store is configured to do so.
func (s *Store) withEvent(eventID string, fn func(ev *eventState) error) error {
	for {
		if done, err := s.tryWithEvent(eventID, fn); done {
			return err
		}
		if s.provisioning != ProvisionOnWrite {
			return NotFoundf("event %q not found", eventID)
		}
		s.provision(eventID)
	}
}

func (s *Store) tryWithEvent(eventID string, fn func(ev *eventState) error) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ev, ok := s.events[eventID]
	if !ok {
		return false, nil
	}
	ev.mu.Lock()
	defer ev.mu.Unlock()
	return true, fn(ev)
}

func (s *Store) provision(eventID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[eventID]; !ok {
		s.events[eventID] = newEventState(eventID, 0, 0, s.now())
	}
}

func (s *Store) lookup(eventID string) (*eventState, error) {
	s.mu.RLock()
	ev, ok := s.events[eventID]
	s.mu.RUnlock()
	if !ok {
		return nil, NotFoundf("event %q not found", eventID)
	}
	return ev, nil
}

// ApplyVote adds leftDelta and rightDelta to the event's totals and records
// the new totals in its history, as one atomic step.
func (s *Store) ApplyVote(eventID string, leftDelta, rightDelta int) (AggregateSnapshot, error) {
	if eventID == "" {
		return AggregateSnapshot{}, Validationf("streamId is required")
	}
	if leftDelta < 0 || rightDelta < 0 {
		return AggregateSnapshot{}, Validationf("leftVotes and rightVotes must not be negative")
	}
	if leftDelta+rightDelta != s.ballot {
		return AggregateSnapshot{}, Validationf("leftVotes + rightVotes must equal %d", s.ballot)
	}

	var snap AggregateSnapshot
	err := s.withEvent(eventID, func(ev *eventState) error {
		snap = *ev.applyVote(leftDelta, rightDelta, s.now(), s.historyLimit)
		s.sink.Publish(eventID, EventVoteUpdate, snap)
		return nil
	})
	return snap, err
}

// AddComment trims in.Text and appends a new comment to the event.
func (s *Store) AddComment(eventID string, in CommentInput) (Comment, error) {
	text := strings.TrimSpace(in.Text)
	if eventID == "" {
		return Comment{}, Validationf("contentId is required")
	}
	if text == "" {
		return Comment{}, Validationf("text must not be empty")
	}

	var c Comment
	err := s.withEvent(eventID, func(ev *eventState) error {
		c = Comment{
			ID:        s.newID(),
			ContentID: eventID,
			Text:      text,
			User:      in.Author,
			Avatar:    in.Avatar,
			CreatedAt: s.now(),
		}
		ev.comments = append(ev.comments, c)
		s.sink.Publish(eventID, EventNewComment, c)
		return nil
	})
	return c, err
}

// RemoveComment deletes a comment. Other comments keep their order.
func (s *Store) RemoveComment(eventID, commentID string) error {
	if eventID == "" || commentID == "" {
		return Validationf("contentId and commentId are required")
	}
	return s.withExisting(eventID, func(ev *eventState) error {
		if !ev.removeComment(commentID) {
			return NotFoundf("comment %q not found", commentID)
		}
		s.sink.Publish(eventID, EventCommentRemoved, CommentRemoved{ContentID: eventID, CommentID: commentID})
		return nil
	})
}

// LikeComment adds one like. Repeated calls keep adding; there is no
// per-viewer deduplication.
func (s *Store) LikeComment(eventID, commentID string) (Comment, error) {
	if eventID == "" || commentID == "" {
		return Comment{}, Validationf("contentId and commentId are required")
	}
	var c Comment
	err := s.withExisting(eventID, func(ev *eventState) error {
		liked, ok := ev.likeComment(commentID)
		if !ok {
			return NotFoundf("comment %q not found", commentID)
		}
		c = liked
		s.sink.Publish(eventID, EventCommentLiked, c)
		return nil
	})
	return c, err
}

// withExisting is withEvent without provisioning: a comment can only exist
// on an event that already exists.
func (s *Store) withExisting(eventID string, fn func(ev *eventState) error) error {
	if done, err := s.tryWithEvent(eventID, fn); done {
		return err
	}
	return NotFoundf("event %q not found", eventID)
}

// Snapshot returns the current totals. It never waits on writers of the event.
func (s *Store) Snapshot(eventID string) (AggregateSnapshot, error) {
	ev, err := s.lookup(eventID)
	if err != nil {
		return AggregateSnapshot{}, err
	}
	return *ev.snap.Load(), nil
}

// Comments returns a copy of the event's comments in insertion order.
func (s *Store) Comments(eventID string) ([]Comment, error) {
	ev, err := s.lookup(eventID)
	if err != nil {
		return nil, err
	}
	ev.mu.Lock()
	defer ev.mu.Unlock()
	return append(make([]Comment, 0, len(ev.comments)), ev.comments...), nil
}

// History returns a copy of the event's vote history, oldest first.
func (s *Store) History(eventID string) ([]HistoryEntry, error) {
	ev, err := s.lookup(eventID)
	if err != nil {
		return nil, err
	}
	ev.mu.Lock()
	defer ev.mu.Unlock()
	return append(make([]HistoryEntry, 0, len(ev.history)), ev.history...), nil
}

// EventIDs returns the known event ids, sorted.
func (s *Store) EventIDs() []string {
	s.mu.RLock()
	ids := make([]string, 0, len(s.events))
	for id := range s.events {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// Replace swaps the whole table for one built from seeds. Concurrent readers
// observe either the previous table or the new one. A vote_update carrying
// the fresh totals is published for every new event, followed by a
// debate_topic_update when the seed has a topic. The live status is kept.
func (s *Store) Replace(seeds []Seed) {
	table := s.buildTable(seeds)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = table

	for _, sd := range seeds {
		ev := table[sd.ID]
		s.sink.Publish(sd.ID, EventVoteUpdate, *ev.snap.Load())
		if ev.topic != nil {
			s.sink.Publish(sd.ID, EventTopicUpdate, *ev.topic)
		}
	}
}
