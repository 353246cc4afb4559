// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	_ "github.com/tomtom215/debatelive/docs"
	"github.com/tomtom215/debatelive/internal/models"
	"github.com/tomtom215/debatelive/internal/state"
)

type pushFrame struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func dial(t *testing.T, server *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws" + query
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readPush(t *testing.T, conn *websocket.Conn) pushFrame {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var f pushFrame
	if err := json.Unmarshal(data, &f); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	return f
}

// waitForSubscribers polls until n clients follow eventID.
func waitForSubscribers(t *testing.T, env *testEnv, eventID string, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for env.hub.Registry().SubscriberCount(eventID) < n || env.hub.GetClientCount() < n {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d subscribers on %s", n, eventID)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWebSocket_VotePushedToSubscribers(t *testing.T) {
	env := setupTestEnv(t, nil)
	server := httptest.NewServer(env.router)
	defer server.Close()

	follower := dial(t, server, "?stream_id=stream-1")
	other := dial(t, server, "?stream_id=stream-2")
	if f := readPush(t, follower); f.Type != "welcome" {
		t.Fatalf("first frame = %s, want welcome", f.Type)
	}
	if f := readPush(t, other); f.Type != "welcome" {
		t.Fatalf("first frame = %s, want welcome", f.Type)
	}
	waitForSubscribers(t, env, "stream-1", 1)

	resp, err := http.Post(server.URL+"/api/v1/user-vote", "application/json",
		bytes.NewBufferString(`{"streamId":"stream-1","leftVotes":80,"rightVotes":20}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("vote status = %d", resp.StatusCode)
	}

	f := readPush(t, follower)
	if f.Type != state.EventVoteUpdate {
		t.Fatalf("frame = %s, want vote_update", f.Type)
	}
	var snap state.AggregateSnapshot
	if err := json.Unmarshal(f.Data, &snap); err != nil {
		t.Fatal(err)
	}
	if snap.EventID != "stream-1" || snap.LeftVotes != 180 || snap.RightVotes != 120 {
		t.Errorf("pushed snapshot = %+v", snap)
	}

	// The stream-2 follower gets nothing.
	_ = other.SetReadDeadline(time.Now().Add(150 * time.Millisecond))
	if _, data, err := other.ReadMessage(); err == nil {
		t.Errorf("unrelated subscriber received %s", data)
	}
}

func TestWebSocket_CommentPushUsesContentID(t *testing.T) {
	env := setupTestEnv(t, nil)
	server := httptest.NewServer(env.router)
	defer server.Close()

	conn := dial(t, server, "?content_id=content-1")
	readPush(t, conn) // welcome
	waitForSubscribers(t, env, "content-1", 1)

	resp, err := http.Post(server.URL+"/api/comment", "application/json",
		bytes.NewBufferString(`{"contentId":"content-1","text":"hello"}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	_ = resp.Body.Close()

	f := readPush(t, conn)
	if f.Type != state.EventNewComment {
		t.Fatalf("frame = %s, want new_comment", f.Type)
	}
	var c state.Comment
	if err := json.Unmarshal(f.Data, &c); err != nil {
		t.Fatal(err)
	}
	if c.Text != "hello" || c.ContentID != "content-1" {
		t.Errorf("pushed comment = %+v", c)
	}
}

func TestWebSocket_RejectsDisallowedOrigin(t *testing.T) {
	cfg := testConfig()
	cfg.Security.CORSOrigins = []string{"https://debate.example"}
	env := setupTestEnv(t, cfg)
	server := httptest.NewServer(env.router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	header := http.Header{"Origin": []string{"https://evil.example"}}
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	if err == nil {
		_ = conn.Close()
		t.Fatal("expected handshake failure")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("resp = %v", resp)
	}

	header.Set("Origin", "https://debate.example")
	conn, _, err = websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		t.Fatalf("allowed origin: %v", err)
	}
	_ = conn.Close()
}

func TestHealthEndpoints(t *testing.T) {
	env := setupTestEnv(t, nil)

	for _, path := range []string{"/health", "/api/v1/health", "/api/v1/health/ready"} {
		rec, body := env.do(t, http.MethodGet, path, "")
		if rec.Code != http.StatusOK || !body.Success {
			t.Errorf("%s: %d %+v", path, rec.Code, body)
			continue
		}
		health := decodeData[models.HealthStatus](t, body)
		if health.Streams != 3 || health.Version == "" {
			t.Errorf("%s: %+v", path, health)
		}
	}

	rec, body := env.do(t, http.MethodGet, "/api/v1/health/live", "")
	if rec.Code != http.StatusOK || !body.Success {
		t.Errorf("live: %d %+v", rec.Code, body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	env := setupTestEnv(t, nil)
	env.do(t, http.MethodPost, "/api/v1/user-vote", `{"streamId":"stream-1","leftVotes":50,"rightVotes":50}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	for _, name := range []string{"debatelive_votes_applied_total", "api_requests_total"} {
		if !strings.Contains(rec.Body.String(), name) {
			t.Errorf("metrics output lacks %s", name)
		}
	}
}

func TestSwaggerEndpoint(t *testing.T) {
	env := setupTestEnv(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var doc struct {
		Paths map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("doc.json is not JSON: %v", err)
	}
	if _, ok := doc.Paths["/api/v1/user-vote"]; !ok {
		t.Error("doc.json lacks /api/v1/user-vote")
	}
}

func TestWebSocket_TopicAndLiveStatusPushed(t *testing.T) {
	env := setupTestEnv(t, nil)
	server := httptest.NewServer(env.router)
	defer server.Close()

	follower := dial(t, server, "?stream_id=stream-1")
	if f := readPush(t, follower); f.Type != "welcome" {
		t.Fatalf("first frame = %s, want welcome", f.Type)
	}
	waitForSubscribers(t, env, "stream-1", 1)

	env.do(t, http.MethodPut, "/api/admin/debate-topic", `{"streamId":"stream-1","title":"Press it?","leftSide":"Yes","rightSide":"No"}`)
	f := readPush(t, follower)
	if f.Type != state.EventTopicUpdate {
		t.Fatalf("frame = %s, want %s", f.Type, state.EventTopicUpdate)
	}
	var topic state.Topic
	if err := json.Unmarshal(f.Data, &topic); err != nil || topic.Title != "Press it?" {
		t.Errorf("pushed topic = %+v, %v", topic, err)
	}

	env.do(t, http.MethodPost, "/api/live/control", `{"action":"start","streamId":"stream-1"}`)
	f = readPush(t, follower)
	if f.Type != state.EventLiveStatus {
		t.Fatalf("frame = %s, want %s", f.Type, state.EventLiveStatus)
	}
	var status state.LiveStatus
	if err := json.Unmarshal(f.Data, &status); err != nil || !status.IsLive {
		t.Errorf("pushed status = %+v, %v", status, err)
	}
}
