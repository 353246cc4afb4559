// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package websocket

import (
	"time"

	"github.com/goccy/go-json"
)

// Message types for WebSocket communication
const (
	MessageTypeWelcome      = "welcome"
	MessageTypePing         = "ping"
	MessageTypePong         = "pong"
	MessageTypeSubscribe    = "subscribe"
	MessageTypeUnsubscribe  = "unsubscribe"
	MessageTypeSubscribed   = "subscribed"
	MessageTypeUnsubscribed = "unsubscribed"
	MessageTypeError        = "error"
)

const welcomeText = "connected to the live debate server"

// Message is an outbound frame.
type Message struct {
	Type      string `json:"type"`
	Message   string `json:"message,omitempty"`
	Data      any    `json:"data,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// inbound is a frame sent by a viewer.
type inbound struct {
	Type string `json:"type"`
	Data struct {
		StreamID  string `json:"streamId"`
		ContentID string `json:"contentId"`
	} `json:"data"`
}

// eventID returns whichever identifier the viewer supplied.
func (in *inbound) eventID() string {
	if in.Data.StreamID != "" {
		return in.Data.StreamID
	}
	return in.Data.ContentID
}

type subscriptionAck struct {
	StreamID string `json:"streamId"`
}

// MarshalMessage converts a message to JSON.
func MarshalMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
