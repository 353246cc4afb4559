// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package websocket

import (
	"sync"
	"time"

	"github.com/tomtom215/debatelive/internal/logging"
	"github.com/tomtom215/debatelive/internal/metrics"
)

// topic serializes delivery for one event. enqueue never blocks; run drains
// the mailbox in FIFO order.
type topic struct {
	eventID string

	mu      sync.Mutex
	mailbox []Message
	wake    chan struct{} // capacity 1
}

func newTopic(eventID string) *topic {
	return &topic{eventID: eventID, wake: make(chan struct{}, 1)}
}

func (t *topic) enqueue(msg Message) {
	t.mu.Lock()
	t.mailbox = append(t.mailbox, msg)
	t.mu.Unlock()

	select {
	case t.wake <- struct{}{}:
	default:
		// already signaled
	}
}

// drain takes everything queued so far.
func (t *topic) drain() []Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	batch := t.mailbox
	t.mailbox = nil
	return batch
}

func (t *topic) run(h *Hub) {
	defer h.topicsWG.Done()
	for {
		select {
		case <-h.done:
			return
		case <-t.wake:
		}
		for _, msg := range t.drain() {
			h.fanOut(t.eventID, msg)
		}
	}
}

// fanOut serializes msg once and offers it to every current subscriber.
func (h *Hub) fanOut(eventID string, msg Message) {
	start := time.Now()

	data, err := MarshalMessage(msg)
	if err != nil {
		logging.Error().Err(err).
			Str("stream_id", eventID).
			Str("event_type", msg.Type).
			Msg("failed to marshal broadcast message")
		return
	}

	var sent, dropped, closed int
	for c := range h.registry.ConnectionsFor(eventID) {
		switch c.offer(data) {
		case offerSent:
			sent++
		case offerFull:
			dropped++
			logging.Warn().
				Uint64("client_id", c.id).
				Str("stream_id", eventID).
				Msg("client send buffer full, disconnecting slow client")
			c.close()
		case offerClosed:
			closed++
		}
	}

	metrics.RecordFanout(sent, dropped, closed, time.Since(start))
	logging.Debug().
		Str("stream_id", eventID).
		Str("event_type", msg.Type).
		Int("sent", sent).
		Int("dropped", dropped).
		Msg("broadcast delivered")
}
