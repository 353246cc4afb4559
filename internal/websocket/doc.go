// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

/*
Package websocket pushes committed store changes to viewer connections.

Key Components:

  - SubscriptionRegistry: which connection is interested in which event.
  - Hub: accepts change notifications (it implements state.ChangeSink) and
    owns client registration.
  - topic: one per event. Publish appends to the topic's unbounded mailbox
    and returns; a single goroutine per topic drains the mailbox in order,
    serializes each message once and offers the bytes to every subscriber.
  - Client: one gorilla/websocket connection with a readPump and a writePump.

Architecture:

	store commit ──Publish──▶ topic[stream-1] mailbox ──▶ fan-out ──▶ Client.send
	                          topic[content-1] mailbox ──▶ fan-out ──▶ Client.send

Ordering:

Messages for one event leave its topic in the order they were published, and
each client's send channel is FIFO, so a subscriber never sees the totals of
commit N+1 before those of commit N. There is no ordering across events.

Slow consumers:

Offering bytes to a client never blocks. When a client's send buffer is full
the message is dropped for that client and the client is disconnected, so it
can reconnect and re-read a fresh snapshot instead of silently missing
updates. A client that is already closing rejects the offer without error.

Message Types:

  - welcome: sent once on connect, before any broadcast traffic
  - ping / pong: liveness, never reaches the store
  - subscribe / unsubscribe: {"type":"subscribe","data":{"streamId":"stream-1"}}
  - vote_update, new_comment, comment_removed, comment_liked,
    debate_topic_update, live_status: pushes
*/
package websocket
