// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

// The annotations below are the general API info for swag. Regenerate the
// docs package with:
//
//	swag init -g cmd/server/docs.go -o docs --parseInternal
//
// @title DebateLive API
// @version 1.0
// @description Live debate voting and real-time audience sync.
// @description
// @description Every response is the envelope {success, message, data}. Committed changes are pushed over /ws to the viewers subscribed to the affected event.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/debatelive/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Health and readiness
//
// @tag.name Votes
// @tag.description Vote submission and totals
//
// @tag.name Comments
// @tag.description Comment threads
//
// @tag.name Live
// @tag.description Debate topics and live status
//
// @tag.name Admin
// @tag.description Operator statistics and listings
//
// @tag.name Realtime
// @tag.description WebSocket push
package main
