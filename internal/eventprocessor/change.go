// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package eventprocessor

import (
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// ChangeRecord is one mirrored store change.
type ChangeRecord struct {
	ID          string    `json:"id"`
	EventID     string    `json:"eventId"`
	Type        string    `json:"type"`
	Payload     any       `json:"payload"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Marshal encodes the record as a message body.
func (r ChangeRecord) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// Subject returns prefix.eventID.eventType. The prefix may span several
// tokens; eventID and eventType are each forced into a single token.
func Subject(prefix, eventID, eventType string) string {
	prefix = strings.Trim(prefix, ".")
	if prefix == "" {
		prefix = "_"
	}
	return prefix + "." + subjectToken(eventID) + "." + subjectToken(eventType)
}

// subjectToken replaces the characters NATS treats as separators or
// wildcards. An empty token becomes "_".
func subjectToken(s string) string {
	if s == "" {
		return "_"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '*', '>', ' ', '\t', '\r', '\n':
			return '_'
		}
		return r
	}, s)
}
