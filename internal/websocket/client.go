package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 70 * time.Second
	pingPeriod = 30 * time.Second
)

// Client is one open connection. UserID is the identity resolved from
// the session at handshake time.
type Client struct {
	ID     string
	UserID string

	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	closeOnce sync.Once
}

func NewClient(hub *Hub, conn *websocket.Conn, userID string) *Client {
	return &Client{
		ID:     gonanoid.Must(),
		UserID: userID,
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, 32),
	}
}

func (c *Client) trySend(payload []byte) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

func (c *Client) closeSend() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}

// ReadPump consumes inbound frames. Malformed or unknown frames are
// logged and dropped without closing the connection. A chat frame is
// persisted first and only then broadcast.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister <- c
		_ = c.conn.Close()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			slog.Default().Debug("ws read closed", "conn_id", c.ID, "error", err)
			return
		}

		var msg InboundMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			slog.Default().Warn("ws bad json dropped", "conn_id", c.ID, "error", err)
			continue
		}
		if msg.Type != MessageTypeChat || msg.CommunityID == 0 || msg.Content == "" {
			slog.Default().Warn("ws frame dropped",
				"conn_id", c.ID, "type", msg.Type, "community_id", msg.CommunityID)
			continue
		}

		// The client-asserted userId is ignored; the handshake identity wins.
		persisted, err := c.hub.persist(msg.CommunityID, c.UserID, msg.Content)
		if err != nil {
			slog.Default().Error("ws persist failed",
				"conn_id", c.ID, "user_id", c.UserID, "community_id", msg.CommunityID, "error", err)
			continue
		}

		out, err := json.Marshal(OutboundChat{Type: MessageTypeChat, Message: persisted})
		if err != nil {
			continue
		}
		c.hub.Broadcast <- out
	}
}

func (c *Client) WritePump() {
	defer func() {
		_ = c.conn.Close()
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case payload, ok := <-c.send:
			if !ok {
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
