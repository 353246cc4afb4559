// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package state

import "time"

// Live control actions and the statuses they lead to.
const (
	LiveStart = "start"
	LiveStop  = "stop"

	LiveActive  = "active"
	LiveStopped = "stopped"
)

// LiveStatus describes whether the broadcast is on air. It is also the
// payload of a live_status notification.
type LiveStatus struct {
	IsLive          bool       `json:"isLive"`
	Status          string     `json:"status"`
	CurrentStreamID string     `json:"currentStreamId,omitempty"`
	StartTime       *time.Time `json:"startTime,omitempty"`
	StopTime        *time.Time `json:"stopTime,omitempty"`
}

// LiveStatus returns the current live status.
func (s *Store) LiveStatus() LiveStatus {
	s.liveMu.Lock()
	defer s.liveMu.Unlock()
	return s.live
}

// ControlLive starts or stops the broadcast. Starting with a non-empty
// streamID also makes it the current stream; stopping keeps the current
// stream. The new status is published to the current stream's subscribers.
func (s *Store) ControlLive(action, streamID string) (LiveStatus, error) {
	if action != LiveStart && action != LiveStop {
		return LiveStatus{}, Validationf("action must be %s or %s", LiveStart, LiveStop)
	}
	if action == LiveStart && streamID != "" {
		if _, err := s.lookup(streamID); err != nil {
			if s.provisioning != ProvisionOnWrite {
				return LiveStatus{}, err
			}
			s.provision(streamID)
		}
	}

	s.liveMu.Lock()
	defer s.liveMu.Unlock()

	now := s.now()
	switch action {
	case LiveStart:
		s.live.IsLive = true
		s.live.Status = LiveActive
		s.live.StartTime = &now
		s.live.StopTime = nil
		if streamID != "" {
			s.live.CurrentStreamID = streamID
		}
	case LiveStop:
		s.live.IsLive = false
		s.live.Status = LiveStopped
		s.live.StopTime = &now
	}

	status := s.live
	if status.CurrentStreamID != "" {
		s.sink.Publish(status.CurrentStreamID, EventLiveStatus, status)
	}
	return status, nil
}
