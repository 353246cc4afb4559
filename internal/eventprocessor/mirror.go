// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package eventprocessor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/debatelive/internal/logging"
	"github.com/tomtom215/debatelive/internal/metrics"
)

// transport delivers one record to the broker.
type transport interface {
	Publish(ctx context.Context, subject string, rec ChangeRecord) error
	Close(ctx context.Context) error
}

// Mirror forwards committed store changes to NATS. It implements
// state.ChangeSink and can be started again after Shutdown.
type Mirror struct {
	cfg     MirrorConfig
	queue   chan ChangeRecord
	breaker *gobreaker.CircuitBreaker[any]
	log     zerolog.Logger

	dial  func(MirrorConfig) (transport, error)
	now   func() time.Time
	newID func() string

	mu      sync.Mutex
	running bool
	tr      transport
	cancel  context.CancelFunc
	done    chan struct{}

	// failing is only touched by the forwarding goroutine.
	failing bool
}

// NewMirror creates a stopped mirror. Changes published before Start are
// buffered up to cfg.Buffer.
func NewMirror(cfg MirrorConfig) *Mirror {
	if cfg.Buffer <= 0 {
		cfg.Buffer = 1024
	}
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = 5 * time.Second
	}
	if cfg.Breaker.Name == "" {
		cfg.Breaker.Name = "nats-mirror"
	}
	return &Mirror{
		cfg:     cfg,
		queue:   make(chan ChangeRecord, cfg.Buffer),
		breaker: NewCircuitBreaker(cfg.Breaker),
		log:     logging.WithComponent("change-feed-mirror"),
		dial:    openTransport,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   func() string { return uuid.New().String() },
	}
}

// Publish implements state.ChangeSink. It never blocks: when the buffer is
// full the change is dropped.
func (m *Mirror) Publish(eventID, eventType string, payload any) {
	rec := ChangeRecord{
		ID:          m.newID(),
		EventID:     eventID,
		Type:        eventType,
		Payload:     payload,
		PublishedAt: m.now(),
	}
	select {
	case m.queue <- rec:
	default:
		metrics.MirrorPublished.WithLabelValues("dropped").Inc()
	}
}

// Pending returns the number of queued changes.
func (m *Mirror) Pending() int {
	return len(m.queue)
}

// Start connects to the broker (starting the embedded server when
// configured) and begins forwarding. The forwarder stops when ctx is canceled
// or Shutdown is called.
func (m *Mirror) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running || !m.forwarderExited() {
		return ErrMirrorRunning
	}

	tr, err := m.dial(m.cfg)
	if err != nil {
		return fmt.Errorf("open mirror transport: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	m.tr = tr
	m.cancel = cancel
	m.done = done
	m.running = true

	go m.run(runCtx, tr, done)

	m.log.Info().
		Str("subject_prefix", m.cfg.SubjectPrefix).
		Int("buffer", m.cfg.Buffer).
		Bool("embedded", m.cfg.Embedded).
		Msg("Change-feed mirror started")
	return nil
}

// Shutdown stops forwarding, publishes whatever is still queued until ctx
// expires, then closes the transport. Changes left in the buffer are kept
// for the next Start, which is refused until the forwarder has exited.
func (m *Mirror) Shutdown(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}
	m.cancel()
	flushed := 0
	select {
	case <-m.done:
		flushed = m.drain(ctx, m.tr)
	case <-ctx.Done():
		// The in-flight publish sees the canceled context and returns.
		select {
		case <-m.done:
		case <-time.After(m.cfg.PublishTimeout):
			m.log.Warn().
				Dur("waited", m.cfg.PublishTimeout).
				Msg("Change-feed mirror forwarder still running after shutdown deadline")
		}
	}

	if err := m.tr.Close(ctx); err != nil {
		m.log.Warn().Err(err).Msg("Change-feed mirror transport close failed")
	}
	m.running = false
	m.tr = nil

	m.log.Info().
		Int("flushed", flushed).
		Int("abandoned", len(m.queue)).
		Msg("Change-feed mirror stopped")
}

// forwarderExited reports whether the goroutine of the previous Start has
// returned. Callers hold m.mu.
func (m *Mirror) forwarderExited() bool {
	if m.done == nil {
		return true
	}
	select {
	case <-m.done:
		return true
	default:
		return false
	}
}

func (m *Mirror) run(ctx context.Context, tr transport, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case rec := <-m.queue:
			m.forward(ctx, tr, rec)
		}
	}
}

func (m *Mirror) drain(ctx context.Context, tr transport) int {
	n := 0
	for ctx.Err() == nil {
		select {
		case rec := <-m.queue:
			m.forward(ctx, tr, rec)
			n++
		default:
			return n
		}
	}
	return n
}

func (m *Mirror) forward(ctx context.Context, tr transport, rec ChangeRecord) {
	subject := Subject(m.cfg.SubjectPrefix, rec.EventID, rec.Type)

	_, err := m.breaker.Execute(func() (any, error) {
		pubCtx, cancel := context.WithTimeout(ctx, m.cfg.PublishTimeout)
		defer cancel()
		return nil, tr.Publish(pubCtx, subject, rec)
	})

	switch {
	case err == nil:
		metrics.MirrorPublished.WithLabelValues("ok").Inc()
		if m.failing {
			m.failing = false
			m.log.Info().Str("subject", subject).Msg("Change-feed mirror publishing recovered")
		}
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.MirrorPublished.WithLabelValues("rejected").Inc()
	default:
		metrics.MirrorPublished.WithLabelValues("error").Inc()
		if !m.failing {
			m.failing = true
			m.log.Warn().Err(err).Str("subject", subject).Msg("Change-feed mirror publish failed")
		}
	}
}
