// DebateLive - Live Debate Voting and Real-Time Audience Sync
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/debatelive

package websocket

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/tomtom215/debatelive/internal/logging"
	"github.com/tomtom215/debatelive/internal/metrics"
)

// clientIDCounter gives clients a monotonically increasing id so fan-out and
// shutdown visit them in connection order.
var clientIDCounter atomic.Uint64

type offerResult int

const (
	offerSent offerResult = iota
	offerFull
	offerClosed
)

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	id   uint64
	hub  *Hub
	conn *websocket.Conn

	// send carries serialized frames to writePump. Only closeMu holders may
	// send on or close it.
	send      chan []byte
	closeMu   sync.Mutex
	isClosed  bool
	holdsSlot bool

	limiter *rate.Limiter
}

// NewClient creates a Client for an upgraded connection.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		id:      clientIDCounter.Add(1),
		hub:     hub,
		conn:    conn,
		send:    make(chan []byte, hub.cfg.SendBuffer),
		limiter: rate.NewLimiter(rate.Limit(hub.cfg.ClientRate), hub.cfg.ClientBurst),
	}
}

// ID returns the client's unique identifier.
func (c *Client) ID() uint64 {
	return c.id
}

// offer queues data without blocking. A closed client reports offerClosed.
func (c *Client) offer(data []byte) offerResult {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	if c.isClosed {
		return offerClosed
	}
	select {
	case c.send <- data:
		return offerSent
	default:
		return offerFull
	}
}

// close ends the send channel once and returns the client's connection
// slot; writePump then sends a close frame.
func (c *Client) close() {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	if !c.isClosed {
		c.isClosed = true
		close(c.send)
	}
	c.dropSlotLocked()
}

// holdSlot takes a hub connection slot for c. A closed client never holds
// one.
func (c *Client) holdSlot() bool {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	if c.holdsSlot {
		return true
	}
	if c.isClosed || !c.hub.acquireSlot() {
		return false
	}
	c.holdsSlot = true
	return true
}

func (c *Client) dropSlot() {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	c.dropSlotLocked()
}

func (c *Client) dropSlotLocked() {
	if c.holdsSlot {
		c.holdsSlot = false
		c.hub.releaseSlot()
	}
}

// reply queues a direct response (welcome, pong, acks). These are not
// broadcasts and a full buffer just drops them.
func (c *Client) reply(msg Message) {
	data, err := MarshalMessage(msg)
	if err != nil {
		logging.Error().Err(err).Str("message_type", msg.Type).Msg("failed to marshal reply")
		return
	}
	c.offer(data)
}

// Welcome queues the welcome frame. Call it before the client subscribes so
// that it precedes any broadcast.
func (c *Client) Welcome() {
	c.reply(Message{Type: MessageTypeWelcome, Message: welcomeText, Timestamp: timestamp()})
}

// Subscribe follows eventID on behalf of the client.
func (c *Client) Subscribe(eventID string) (Subscription, bool) {
	if len(c.hub.registry.EventsFor(c)) >= c.hub.cfg.MaxSubscriptions {
		return Subscription{}, false
	}
	return c.hub.registry.Subscribe(c, eventID), true
}

// readPump handles frames from the viewer until the connection fails.
func (c *Client) readPump() {
	defer func() {
		c.hub.detach(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(c.hub.cfg.MaxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(c.hub.cfg.PongWait)); err != nil {
		logging.Error().Err(err).Msg("failed to set read deadline")
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.hub.cfg.PongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Warn().Err(err).Uint64("client_id", c.id).Msg("unexpected websocket close error")
			}
			return
		}
		metrics.WSMessagesReceived.Inc()

		if !c.limiter.Allow() {
			metrics.WSErrors.WithLabelValues("rate_limited").Inc()
			logging.Debug().Uint64("client_id", c.id).Msg("dropping frame over client rate limit")
			continue
		}
		c.handle(data)
	}
}

func (c *Client) handle(data []byte) {
	var in inbound
	if err := json.Unmarshal(data, &in); err != nil {
		metrics.WSErrors.WithLabelValues("decode").Inc()
		logging.Debug().Err(err).Uint64("client_id", c.id).Msg("failed to decode websocket message")
		return
	}

	switch in.Type {
	case MessageTypePing:
		c.reply(Message{Type: MessageTypePong, Timestamp: timestamp()})

	case MessageTypeSubscribe:
		id := in.eventID()
		if id == "" {
			c.reply(Message{Type: MessageTypeError, Message: "streamId is required"})
			return
		}
		if _, ok := c.Subscribe(id); !ok {
			c.reply(Message{Type: MessageTypeError, Message: "too many subscriptions"})
			return
		}
		c.reply(Message{Type: MessageTypeSubscribed, Data: subscriptionAck{StreamID: id}})

	case MessageTypeUnsubscribe:
		id := in.eventID()
		c.hub.registry.Unsubscribe(Subscription{client: c, eventID: id})
		c.reply(Message{Type: MessageTypeUnsubscribed, Data: subscriptionAck{StreamID: id}})

	default:
		c.reply(Message{Type: MessageTypeError, Message: "unsupported message type"})
	}
}

// writePump writes queued frames and keepalive pings.
func (c *Client) writePump() {
	ticker := time.NewTicker((c.hub.cfg.PongWait * 9) / 10)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(c.hub.cfg.WriteWait)); err != nil {
				return
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				metrics.WSErrors.WithLabelValues("write").Inc()
				logging.Debug().Err(err).Uint64("client_id", c.id).Msg("failed to write websocket message")
				return
			}
			metrics.WSMessagesSent.Inc()

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(c.hub.cfg.WriteWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Start begins reading and writing for the client.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}
