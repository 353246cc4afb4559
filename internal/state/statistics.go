// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package state

import "time"

// Statistics summarizes vote totals. For a single event VoteTrend holds its
// history; across all events StreamStats holds one snapshot per event and the
// totals are summed.
type Statistics struct {
	LeftVotes   int                 `json:"leftVotes"`
	RightVotes  int                 `json:"rightVotes"`
	TotalVotes  int                 `json:"totalVotes"`
	VoteTrend   []HistoryEntry      `json:"voteTrend"`
	StreamStats []AggregateSnapshot `json:"streamStats"`
}

// Statistics returns vote statistics for eventID, or for every event when
// eventID is empty.
func (s *Store) Statistics(eventID string) (Statistics, error) {
	stats := Statistics{VoteTrend: []HistoryEntry{}, StreamStats: []AggregateSnapshot{}}

	if eventID != "" {
		snap, err := s.Snapshot(eventID)
		if err != nil {
			return Statistics{}, err
		}
		history, err := s.History(eventID)
		if err != nil {
			return Statistics{}, err
		}
		stats.LeftVotes, stats.RightVotes, stats.TotalVotes = snap.LeftVotes, snap.RightVotes, snap.TotalVotes
		stats.VoteTrend = history
		return stats, nil
	}

	for _, id := range s.EventIDs() {
		snap, err := s.Snapshot(id)
		if err != nil {
			// Removed by a concurrent Replace.
			continue
		}
		stats.LeftVotes += snap.LeftVotes
		stats.RightVotes += snap.RightVotes
		stats.TotalVotes += snap.TotalVotes
		stats.StreamStats = append(stats.StreamStats, snap)
	}
	return stats, nil
}

// Dashboard is the operator overview. ActiveUsers is filled in by the caller,
// which owns the connection count.
type Dashboard struct {
	IsLive             bool      `json:"isLive"`
	Status             string    `json:"status"`
	CurrentStreamID    string    `json:"currentStreamId,omitempty"`
	CurrentDebateTopic string    `json:"currentDebateTopic,omitempty"`
	TotalStreams       int       `json:"totalStreams"`
	LeftVotes          int       `json:"leftVotes"`
	RightVotes         int       `json:"rightVotes"`
	TotalVotes         int       `json:"totalVotes"`
	TotalComments      int       `json:"totalComments"`
	ActiveUsers        int       `json:"activeUsers"`
	LastUpdated        time.Time `json:"lastUpdated"`
}

// Dashboard sums votes and comments over every event. With a non-empty
// eventID the vote fields describe that event alone.
func (s *Store) Dashboard(eventID string) (Dashboard, error) {
	live := s.LiveStatus()
	d := Dashboard{
		IsLive:          live.IsLive,
		Status:          live.Status,
		CurrentStreamID: live.CurrentStreamID,
	}

	for _, id := range s.EventIDs() {
		ev, err := s.lookup(id)
		if err != nil {
			continue
		}
		snap := *ev.snap.Load()
		ev.mu.Lock()
		comments := len(ev.comments)
		ev.mu.Unlock()

		d.TotalStreams++
		d.TotalComments += comments
		d.LeftVotes += snap.LeftVotes
		d.RightVotes += snap.RightVotes
		d.TotalVotes += snap.TotalVotes
		if snap.LastUpdated.After(d.LastUpdated) {
			d.LastUpdated = snap.LastUpdated
		}
	}

	if eventID != "" {
		snap, err := s.Snapshot(eventID)
		if err != nil {
			return Dashboard{}, err
		}
		d.LeftVotes, d.RightVotes, d.TotalVotes = snap.LeftVotes, snap.RightVotes, snap.TotalVotes
	}

	if t, err := s.Topic(live.CurrentStreamID); err == nil {
		d.CurrentDebateTopic = t.Title
	}
	return d, nil
}
