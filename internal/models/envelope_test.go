// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestResponseOmitsEmptyFields(t *testing.T) {
	tests := []struct {
		name string
		resp *Response
		want string
	}{
		{"fail", Fail("comment not found"), `{"success":false,"message":"comment not found"}`},
		{"ok without message", OK([]string{"a"}, ""), `{"success":true,"data":["a"]}`},
		{"ok with message", OK(nil, "vote accepted"), `{"success":true,"message":"vote accepted"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.resp)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}
