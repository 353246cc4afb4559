// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

/*
Package models defines the JSON shapes of the HTTP surface.

Every endpoint answers with a Response envelope:

	{"success": bool, "message": "optional", "data": optional}

Store types (snapshots, comments, history) carry their own JSON tags in
package state and are placed in Data unchanged. This package only adds the
shapes that exist purely at the boundary: admin listings and health.
*/
package models
