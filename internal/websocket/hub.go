// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package websocket

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/debatelive/internal/logging"
	"github.com/tomtom215/debatelive/internal/metrics"
)

// ShutdownReason identifies why the hub is shutting down.
type ShutdownReason string

const (
	ShutdownReasonContextCanceled ShutdownReason = "context_canceled"
	ShutdownReasonContextDeadline ShutdownReason = "context_deadline"
)

var (
	// ErrHubClosed is returned by Attach after Close.
	ErrHubClosed = errors.New("websocket hub closed")
	// ErrHubFull is returned by Attach when MaxConnections slots are taken.
	ErrHubFull = errors.New("websocket hub at capacity")
)

// HubConfig tunes client connections.
type HubConfig struct {
	SendBuffer     int
	WriteWait      time.Duration
	PongWait       time.Duration
	MaxMessageSize int64
	MaxConnections int     // 0 means unlimited
	ClientRate     float64 // inbound frames per second
	ClientBurst    int

	// MaxSubscriptions bounds the events one connection may follow.
	MaxSubscriptions int
}

// DefaultHubConfig mirrors the config package defaults.
func DefaultHubConfig() HubConfig {
	return HubConfig{
		SendBuffer:     256,
		WriteWait:      10 * time.Second,
		PongWait:       60 * time.Second,
		MaxMessageSize: 4096,
		MaxConnections: 1000,
		ClientRate:     10,
		ClientBurst:    20,

		MaxSubscriptions: 32,
	}
}

// Hub maintains the set of active clients and fans out change notifications
// through per-event topics.
type Hub struct {
	cfg      HubConfig
	registry *SubscriptionRegistry

	clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	mu         sync.RWMutex

	// slots counts attached clients that have not been closed yet. It is
	// the admission counter for MaxConnections.
	slots atomic.Int64

	topicsMu sync.Mutex
	topics   map[string]*topic
	topicsWG sync.WaitGroup

	done      chan struct{}
	closeOnce sync.Once
	closed    atomic.Bool
}

// NewHub creates a Hub. Call Close to stop its topic goroutines.
func NewHub(cfg HubConfig) *Hub {
	def := DefaultHubConfig()
	if cfg.SendBuffer <= 0 {
		cfg.SendBuffer = def.SendBuffer
	}
	if cfg.WriteWait <= 0 {
		cfg.WriteWait = def.WriteWait
	}
	if cfg.PongWait <= 0 {
		cfg.PongWait = def.PongWait
	}
	if cfg.MaxMessageSize <= 0 {
		cfg.MaxMessageSize = def.MaxMessageSize
	}
	if cfg.ClientRate <= 0 {
		cfg.ClientRate = def.ClientRate
	}
	if cfg.ClientBurst <= 0 {
		cfg.ClientBurst = def.ClientBurst
	}
	if cfg.MaxSubscriptions <= 0 {
		cfg.MaxSubscriptions = def.MaxSubscriptions
	}
	return &Hub{
		cfg:        cfg,
		registry:   NewSubscriptionRegistry(),
		clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client, 64),
		topics:     make(map[string]*topic),
		done:       make(chan struct{}),
	}
}

// Registry returns the hub's subscription registry.
func (h *Hub) Registry() *SubscriptionRegistry {
	return h.registry
}

// Publish queues a notification for every subscriber of eventID and returns
// immediately. It implements state.ChangeSink.
func (h *Hub) Publish(eventID, eventType string, payload any) {
	t := h.topicFor(eventID)
	if t == nil {
		return
	}
	t.enqueue(Message{Type: eventType, Data: payload})
	metrics.BroadcastPublished.WithLabelValues(eventType).Inc()
}

func (h *Hub) topicFor(eventID string) *topic {
	h.topicsMu.Lock()
	defer h.topicsMu.Unlock()
	if h.closed.Load() {
		return nil
	}

	t, ok := h.topics[eventID]
	if !ok {
		t = newTopic(eventID)
		h.topics[eventID] = t
		h.topicsWG.Add(1)
		go t.run(h)
		metrics.Topics.Inc()
	}
	return t
}

// TopicCount returns the number of per-event topics.
func (h *Hub) TopicCount() int {
	h.topicsMu.Lock()
	defer h.topicsMu.Unlock()
	return len(h.topics)
}

// Full reports whether MaxConnections has been reached.
func (h *Hub) Full() bool {
	return h.cfg.MaxConnections > 0 && h.slots.Load() >= int64(h.cfg.MaxConnections)
}

// acquireSlot takes one connection slot unless MaxConnections are taken.
func (h *Hub) acquireSlot() bool {
	limit := int64(h.cfg.MaxConnections)
	for {
		n := h.slots.Load()
		if limit > 0 && n >= limit {
			return false
		}
		if h.slots.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (h *Hub) releaseSlot() {
	h.slots.Add(-1)
}

// Attach reserves a connection slot for c and hands it to the running hub.
// It fails with ErrHubFull at capacity, or if ctx ends first or the hub is
// closed. The slot is returned when c is closed.
func (h *Hub) Attach(ctx context.Context, c *Client) error {
	if h.closed.Load() {
		return ErrHubClosed
	}
	if !c.holdSlot() {
		metrics.WSErrors.WithLabelValues("capacity").Inc()
		return ErrHubFull
	}
	select {
	case h.Register <- c:
		return nil
	case <-ctx.Done():
		c.dropSlot()
		return ctx.Err()
	case <-h.done:
		c.dropSlot()
		return ErrHubClosed
	}
}

// detach is called by a client's readPump when the connection ends.
func (h *Hub) detach(c *Client) {
	select {
	case h.Unregister <- c:
	case <-h.done:
		h.removeClient(c)
	}
}

// RunWithContext processes client registration until ctx is canceled, then
// closes every connected client and returns ctx.Err(). It may be called
// again after returning (supervised restart).
//
// Shutdown takes priority over lifecycle events.
func (h *Hub) RunWithContext(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.logGracefulShutdown(ctx)
			return ctx.Err()
		default:
		}

		select {
		case <-ctx.Done():
			h.logGracefulShutdown(ctx)
			return ctx.Err()

		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			metrics.WSConnections.Set(float64(total))
			logging.Info().
				Uint64("client_id", client.id).
				Int("total_clients", total).
				Msg("websocket client connected")

		case client := <-h.Unregister:
			h.removeClient(client)
		}
	}
}

func (h *Hub) removeClient(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	total := len(h.clients)
	h.mu.Unlock()

	purged := h.registry.Purge(c)
	c.close()

	if ok {
		metrics.WSConnections.Set(float64(total))
		logging.Info().
			Uint64("client_id", c.id).
			Int("subscriptions_removed", purged).
			Int("total_clients", total).
			Msg("websocket client disconnected")
	}
}

func (h *Hub) logGracefulShutdown(ctx context.Context) {
	count := h.GetClientCount()
	h.closeAllClients()

	logging.Info().
		Str("component", "websocket-hub").
		Str("reason", string(getShutdownReason(ctx))).
		Int("clients_closed", count).
		Msg("websocket hub stopped")
}

func getShutdownReason(ctx context.Context) ShutdownReason {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ShutdownReasonContextDeadline
	}
	return ShutdownReasonContextCanceled
}

// closeAllClients closes clients in connection order.
func (h *Hub) closeAllClients() {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	clear(h.clients)
	h.mu.Unlock()

	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})
	for _, c := range clients {
		h.registry.Purge(c)
		c.close()
	}
	metrics.WSConnections.Set(0)
}

// Close stops every topic goroutine and disconnects remaining clients.
// Publish becomes a no-op afterwards.
func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		h.topicsMu.Lock()
		h.closed.Store(true)
		h.topicsMu.Unlock()

		close(h.done)
		h.topicsWG.Wait()
		h.closeAllClients()

		h.topicsMu.Lock()
		metrics.Topics.Sub(float64(len(h.topics)))
		clear(h.topics)
		h.topicsMu.Unlock()
	})
}

// GetClientCount returns the number of connected clients.
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Connect wires an upgraded connection into the hub: the welcome frame is
// queued first, then the initial subscriptions are made, then the client is
// registered and its pumps are started.
func (h *Hub) Connect(ctx context.Context, conn *websocket.Conn, eventIDs ...string) (*Client, error) {
	c := NewClient(h, conn)
	c.Welcome()
	for _, id := range eventIDs {
		if id != "" {
			c.Subscribe(id)
		}
	}
	if err := h.Attach(ctx, c); err != nil {
		h.registry.Purge(c)
		c.close()
		if errors.Is(err, ErrHubFull) {
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "too many connections"),
				time.Now().Add(h.cfg.WriteWait))
		}
		_ = conn.Close()
		return nil, err
	}
	c.Start()
	return c, nil
}
