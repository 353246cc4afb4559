// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package websocket

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/tomtom215/debatelive/internal/logging"
	"github.com/tomtom215/debatelive/internal/state"
)

//nolint:gochecknoinits // init ensures consistent logging for tests
func init() {
	logging.Init(logging.Config{Level: "info", Format: "console", Output: io.Discard})
}

// compile-time check that the hub can be handed to the store
var _ state.ChangeSink = (*Hub)(nil)

// setupHub creates a hub, runs it and stops it when the test ends.
func setupHub(t *testing.T, cfg HubConfig) *Hub {
	t.Helper()
	hub := NewHub(cfg)
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = hub.RunWithContext(ctx) }()
	t.Cleanup(func() {
		cancel()
		hub.Close()
	})
	return hub
}

// createTestClient creates a client without a connection.
func createTestClient(hub *Hub, buffer int) *Client {
	return &Client{id: clientIDCounter.Add(1), hub: hub, send: make(chan []byte, buffer)}
}

type pushed struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// receive waits for the next frame on c.
func receive(t *testing.T, c *Client) pushed {
	t.Helper()
	select {
	case data, ok := <-c.send:
		if !ok {
			t.Fatal("client send channel closed")
		}
		var p pushed
		if err := json.Unmarshal(data, &p); err != nil {
			t.Fatalf("bad frame %s: %v", data, err)
		}
		return p
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for frame")
	}
	return pushed{}
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met: %s", msg)
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	hub := setupHub(t, HubConfig{})
	hub.Publish("stream-1", state.EventVoteUpdate, state.AggregateSnapshot{EventID: "stream-1"})
	if hub.TopicCount() != 1 {
		t.Errorf("TopicCount() = %d, want 1", hub.TopicCount())
	}
}

func TestHub_PerEventOrder(t *testing.T) {
	hub := setupHub(t, HubConfig{})
	c := createTestClient(hub, 512)
	hub.Registry().Subscribe(c, "stream-1")

	const n = 200
	for i := 1; i <= n; i++ {
		hub.Publish("stream-1", state.EventVoteUpdate, state.AggregateSnapshot{EventID: "stream-1", TotalVotes: i * 100})
	}

	for i := 1; i <= n; i++ {
		p := receive(t, c)
		var snap state.AggregateSnapshot
		if err := json.Unmarshal(p.Data, &snap); err != nil {
			t.Fatal(err)
		}
		if p.Type != state.EventVoteUpdate || snap.TotalVotes != i*100 {
			t.Fatalf("frame %d = %s %+v, out of order", i, p.Type, snap)
		}
	}
}

func TestHub_OnlySubscribersReceive(t *testing.T) {
	hub := setupHub(t, HubConfig{})
	streamViewer := createTestClient(hub, 8)
	contentViewer := createTestClient(hub, 8)
	hub.Registry().Subscribe(streamViewer, "stream-1")
	hub.Registry().Subscribe(contentViewer, "content-1")

	hub.Publish("content-1", state.EventNewComment, state.Comment{ID: "c1", ContentID: "content-1", Text: "hello"})

	p := receive(t, contentViewer)
	if p.Type != state.EventNewComment {
		t.Errorf("type = %s", p.Type)
	}
	select {
	case data := <-streamViewer.send:
		t.Errorf("stream viewer should not receive content-1 pushes, got %s", data)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_SlowClientDoesNotStallOthers(t *testing.T) {
	hub := setupHub(t, HubConfig{})
	slow := createTestClient(hub, 1)
	fast := createTestClient(hub, 64)
	hub.Registry().Subscribe(slow, "stream-1")
	hub.Registry().Subscribe(fast, "stream-1")

	for i := 0; i < 5; i++ {
		hub.Publish("stream-1", state.EventVoteUpdate, state.AggregateSnapshot{TotalVotes: i})
	}
	for i := 0; i < 5; i++ {
		receive(t, fast)
	}

	waitFor(t, func() bool {
		slow.closeMu.Lock()
		defer slow.closeMu.Unlock()
		return slow.isClosed
	}, "slow client should be disconnected")
}

func TestHub_PublishToClosedClient(t *testing.T) {
	hub := setupHub(t, HubConfig{})
	c := createTestClient(hub, 4)
	hub.Registry().Subscribe(c, "stream-1")
	c.close()
	c.close() // idempotent

	hub.Publish("stream-1", state.EventVoteUpdate, state.AggregateSnapshot{})
	hub.Publish("stream-1", state.EventVoteUpdate, state.AggregateSnapshot{})

	if got := c.offer([]byte("x")); got != offerClosed {
		t.Errorf("offer on closed client = %v, want offerClosed", got)
	}
}

func TestHub_UnsubscribeDuringPublish(t *testing.T) {
	hub := setupHub(t, HubConfig{})
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				c := createTestClient(hub, 2)
				hub.Registry().Subscribe(c, "stream-1")
				hub.removeClient(c)
			}
		}()
	}
	for i := 0; i < 200; i++ {
		hub.Publish("stream-1", state.EventVoteUpdate, state.AggregateSnapshot{TotalVotes: i})
	}
	wg.Wait()

	waitFor(t, func() bool { return hub.Registry().Count() == 0 }, "registry should drain")
}

func TestHub_RegisterAndUnregister(t *testing.T) {
	hub := setupHub(t, HubConfig{})
	c := createTestClient(hub, 4)
	hub.Registry().Subscribe(c, "stream-1")

	if err := hub.Attach(context.Background(), c); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	waitFor(t, func() bool { return hub.GetClientCount() == 1 }, "client registered")

	hub.Unregister <- c
	waitFor(t, func() bool { return hub.GetClientCount() == 0 }, "client unregistered")

	if hub.Registry().Count() != 0 {
		t.Error("unregister should purge subscriptions")
	}
	if got := c.offer([]byte("x")); got != offerClosed {
		t.Error("unregistered client should be closed")
	}
}

func TestHub_MaxConnections(t *testing.T) {
	hub := setupHub(t, HubConfig{MaxConnections: 1})
	if hub.Full() {
		t.Fatal("empty hub should not be full")
	}
	if err := hub.Attach(context.Background(), createTestClient(hub, 1)); err != nil {
		t.Fatal(err)
	}
	waitFor(t, hub.Full, "hub should be full after one client")
}

func TestHub_ConcurrentAttachRespectsMaxConnections(t *testing.T) {
	const limit = 5
	hub := setupHub(t, HubConfig{MaxConnections: limit})

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		attached []*Client
		full     int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := createTestClient(hub, 1)
			err := hub.Attach(context.Background(), c)
			mu.Lock()
			defer mu.Unlock()
			switch err {
			case nil:
				attached = append(attached, c)
			case ErrHubFull:
				full++
			default:
				t.Errorf("Attach: %v", err)
			}
		}()
	}
	wg.Wait()

	if len(attached) != limit || full != 50-limit {
		t.Fatalf("attached %d, rejected %d; want %d and %d", len(attached), full, limit, 50-limit)
	}
	waitFor(t, func() bool { return hub.GetClientCount() == limit }, "admitted clients registered")

	// A disconnect frees exactly one slot.
	hub.Unregister <- attached[0]
	waitFor(t, func() bool { return !hub.Full() }, "slot released")
	if err := hub.Attach(context.Background(), createTestClient(hub, 1)); err != nil {
		t.Fatalf("Attach after release: %v", err)
	}
	if err := hub.Attach(context.Background(), createTestClient(hub, 1)); err != ErrHubFull {
		t.Errorf("Attach over limit = %v, want ErrHubFull", err)
	}
}

func TestHub_ConnectOverCapacityClosesConnection(t *testing.T) {
	hub := setupHub(t, HubConfig{MaxConnections: 1})
	upgrader := websocket.Upgrader{}
	errCh := make(chan error, 2)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			errCh <- err
			return
		}
		_, err = hub.Connect(r.Context(), conn)
		errCh <- err
	}))
	defer server.Close()

	first := dialWebSocket(t, server, "")
	if err := <-errCh; err != nil {
		t.Fatalf("first Connect: %v", err)
	}
	readFrame(t, first) // welcome

	second := dialWebSocket(t, server, "")
	if err := <-errCh; err != ErrHubFull {
		t.Fatalf("second Connect = %v, want ErrHubFull", err)
	}
	_ = second.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := second.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		t.Errorf("second connection read = %v, want close 1013", err)
	}
	waitFor(t, func() bool { return hub.GetClientCount() == 1 }, "only the first client registered")
}

func TestClient_SubscriptionLimit(t *testing.T) {
	hub := setupHub(t, HubConfig{MaxSubscriptions: 2})
	c := createTestClient(hub, 4)

	for _, id := range []string{"stream-1", "stream-2"} {
		if _, ok := c.Subscribe(id); !ok {
			t.Fatalf("Subscribe(%s) refused under the limit", id)
		}
	}
	if _, ok := c.Subscribe("stream-3"); ok {
		t.Error("Subscribe over MaxSubscriptions should be refused")
	}
	if got := len(hub.Registry().EventsFor(c)); got != 2 {
		t.Errorf("EventsFor() = %d events, want 2", got)
	}
	if NewHub(HubConfig{}).cfg.MaxSubscriptions != DefaultHubConfig().MaxSubscriptions {
		t.Error("zero MaxSubscriptions should take the default")
	}
}

func TestHub_RunWithContextClosesClients(t *testing.T) {
	hub := NewHub(HubConfig{})
	defer hub.Close()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- hub.RunWithContext(ctx) }()

	c := createTestClient(hub, 4)
	if err := hub.Attach(context.Background(), c); err != nil {
		t.Fatal(err)
	}
	cancel()

	select {
	case err := <-errCh:
		if err != context.Canceled {
			t.Errorf("RunWithContext() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("hub did not stop")
	}
	if hub.GetClientCount() != 0 {
		t.Error("clients should be closed on shutdown")
	}
	if got := c.offer(nil); got != offerClosed {
		t.Error("client should be closed on shutdown")
	}
}

func TestHub_CloseStopsPublishing(t *testing.T) {
	hub := NewHub(HubConfig{})
	hub.Close()
	hub.Close()

	hub.Publish("stream-1", state.EventVoteUpdate, state.AggregateSnapshot{})
	if hub.TopicCount() != 0 {
		t.Error("Publish after Close should not create topics")
	}
	if err := hub.Attach(context.Background(), createTestClient(hub, 1)); err != ErrHubClosed {
		t.Errorf("Attach after Close = %v, want ErrHubClosed", err)
	}
}

func TestGetShutdownReason(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if got := getShutdownReason(ctx); got != ShutdownReasonContextCanceled {
		t.Errorf("got %s", got)
	}

	dctx, dcancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer dcancel()
	if got := getShutdownReason(dctx); got != ShutdownReasonContextDeadline {
		t.Errorf("got %s", got)
	}
}
