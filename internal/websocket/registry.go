// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package websocket

import (
	"iter"
	"sort"
	"sync"

	"github.com/tomtom215/debatelive/internal/metrics"
)

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	client  *Client
	eventID string
}

// EventID returns the event the subscription is for.
func (s Subscription) EventID() string {
	return s.eventID
}

// SubscriptionRegistry tracks which clients are interested in which events.
// A client may hold any number of subscriptions.
type SubscriptionRegistry struct {
	mu       sync.RWMutex
	byEvent  map[string]map[*Client]struct{}
	byClient map[*Client]map[string]struct{}
	count    int
}

// NewSubscriptionRegistry creates an empty registry.
func NewSubscriptionRegistry() *SubscriptionRegistry {
	return &SubscriptionRegistry{
		byEvent:  make(map[string]map[*Client]struct{}),
		byClient: make(map[*Client]map[string]struct{}),
	}
}

// Subscribe registers c's interest in eventID. Subscribing twice to the same
// event returns an equal handle and is counted once.
func (r *SubscriptionRegistry) Subscribe(c *Client, eventID string) Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs := r.byEvent[eventID]
	if subs == nil {
		subs = make(map[*Client]struct{})
		r.byEvent[eventID] = subs
	}
	if _, ok := subs[c]; !ok {
		subs[c] = struct{}{}
		events := r.byClient[c]
		if events == nil {
			events = make(map[string]struct{})
			r.byClient[c] = events
		}
		events[eventID] = struct{}{}
		r.count++
		metrics.Subscriptions.Inc()
	}
	return Subscription{client: c, eventID: eventID}
}

// Unsubscribe removes the subscription. Removing one that is already gone is
// a no-op.
func (r *SubscriptionRegistry) Unsubscribe(sub Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeLocked(sub.client, sub.eventID)
}

func (r *SubscriptionRegistry) removeLocked(c *Client, eventID string) bool {
	subs, ok := r.byEvent[eventID]
	if !ok {
		return false
	}
	if _, ok := subs[c]; !ok {
		return false
	}
	delete(subs, c)
	if len(subs) == 0 {
		delete(r.byEvent, eventID)
	}
	if events := r.byClient[c]; events != nil {
		delete(events, eventID)
		if len(events) == 0 {
			delete(r.byClient, c)
		}
	}
	r.count--
	metrics.Subscriptions.Dec()
	return true
}

// Purge drops every subscription held by c and returns how many there were.
func (r *SubscriptionRegistry) Purge(c *Client) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for eventID := range r.byClient[c] {
		if r.removeLocked(c, eventID) {
			n++
		}
	}
	return n
}

// ConnectionsFor returns the subscribers of eventID as they were when
// ConnectionsFor was called. Clients are yielded in connection order. A
// client removed after the call may still be yielded; sending to it is safe
// because a closed client rejects sends.
func (r *SubscriptionRegistry) ConnectionsFor(eventID string) iter.Seq[*Client] {
	r.mu.RLock()
	subs := r.byEvent[eventID]
	clients := make([]*Client, 0, len(subs))
	for c := range subs {
		clients = append(clients, c)
	}
	r.mu.RUnlock()

	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})

	return func(yield func(*Client) bool) {
		for _, c := range clients {
			if !yield(c) {
				return
			}
		}
	}
}

// EventsFor returns the events c is subscribed to, sorted.
func (r *SubscriptionRegistry) EventsFor(c *Client) []string {
	r.mu.RLock()
	events := make([]string, 0, len(r.byClient[c]))
	for id := range r.byClient[c] {
		events = append(events, id)
	}
	r.mu.RUnlock()
	sort.Strings(events)
	return events
}

// SubscriberCount returns how many clients follow eventID.
func (r *SubscriptionRegistry) SubscriberCount(eventID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byEvent[eventID])
}

// Count returns the total number of subscriptions.
func (r *SubscriptionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}
