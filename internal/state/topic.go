// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package state

import (
	"strings"
	"time"
)

// Topic is the motion debated on an event. It is also the payload of a
// debate_topic_update notification. LeftPosition and RightPosition repeat
// the side labels for older clients.
type Topic struct {
	ID            string    `json:"id"`
	StreamID      string    `json:"streamId"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	LeftSide      string    `json:"leftSide"`
	RightSide     string    `json:"rightSide"`
	LeftPosition  string    `json:"leftPosition"`
	RightPosition string    `json:"rightPosition"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TopicInput is a topic submission.
type TopicInput struct {
	Title       string
	Description string
	LeftSide    string
	RightSide   string
}

func (in TopicInput) normalize() TopicInput {
	return TopicInput{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		LeftSide:    strings.TrimSpace(in.LeftSide),
		RightSide:   strings.TrimSpace(in.RightSide),
	}
}

func newTopic(id, eventID string, in TopicInput, now time.Time) Topic {
	return Topic{
		ID:            id,
		StreamID:      eventID,
		Title:         in.Title,
		Description:   in.Description,
		LeftSide:      in.LeftSide,
		RightSide:     in.RightSide,
		LeftPosition:  in.LeftSide,
		RightPosition: in.RightSide,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// SetTopic creates or replaces the event's topic. A replaced topic keeps its
// id and creation time.
func (s *Store) SetTopic(eventID string, in TopicInput) (Topic, error) {
	in = in.normalize()
	if eventID == "" {
		return Topic{}, Validationf("streamId is required")
	}
	if in.Title == "" || in.LeftSide == "" || in.RightSide == "" {
		return Topic{}, Validationf("title, leftSide and rightSide must not be empty")
	}

	var t Topic
	err := s.withEvent(eventID, func(ev *eventState) error {
		now := s.now()
		if ev.topic == nil {
			t = newTopic(s.newID(), eventID, in, now)
		} else {
			t = newTopic(ev.topic.ID, eventID, in, now)
			t.CreatedAt = ev.topic.CreatedAt
		}
		ev.topic = &t
		s.sink.Publish(eventID, EventTopicUpdate, t)
		return nil
	})
	return t, err
}

// Topic returns the event's topic. An empty eventID picks the first event,
// in id order, that has one.
func (s *Store) Topic(eventID string) (Topic, error) {
	if eventID != "" {
		t, ok, err := s.topicOf(eventID)
		if err != nil {
			return Topic{}, err
		}
		if !ok {
			return Topic{}, NotFoundf("no debate topic for event %q", eventID)
		}
		return t, nil
	}

	for _, id := range s.EventIDs() {
		if t, ok, _ := s.topicOf(id); ok {
			return t, nil
		}
	}
	return Topic{}, NotFoundf("no debate topic configured")
}

func (s *Store) topicOf(eventID string) (Topic, bool, error) {
	ev, err := s.lookup(eventID)
	if err != nil {
		return Topic{}, false, err
	}
	ev.mu.Lock()
	defer ev.mu.Unlock()
	if ev.topic == nil {
		return Topic{}, false, nil
	}
	return *ev.topic, true, nil
}
