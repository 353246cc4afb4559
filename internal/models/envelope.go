// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package models

// Response is the envelope every HTTP endpoint answers with.
//
// Example success:
//
//	{"success": true, "message": "vote accepted", "data": {...}}
//
// Example failure:
//
//	{"success": false, "message": "leftVotes + rightVotes must equal 100"}
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(data any, message string) *Response {
	return &Response{Success: true, Message: message, Data: data}
}

// Fail builds a failed envelope carrying message.
func Fail(message string) *Response {
	return &Response{Success: false, Message: message}
}
