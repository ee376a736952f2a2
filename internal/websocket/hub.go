package websocket

import (
	"log/slog"
	"sync"

	"github.com/hobbyconnect/server/internal/models"
)

// PersistFunc durably writes a chat message before it is broadcast.
type PersistFunc func(communityID uint, userID, content string) (*models.ChatMessage, error)

// Hub maintains the registry of open connections, keyed by connection
// id, and fans broadcast frames out to all of them. There is no
// per-community routing; clients filter what they display.
type Hub struct {
	clients map[string]*Client
	mu      sync.RWMutex

	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan []byte

	persist PersistFunc
}

func NewHub(persist PersistFunc) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan []byte, 64),
		persist:    persist,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client.ID] = client
			total := len(h.clients)
			h.mu.Unlock()
			slog.Default().Debug("ws client registered",
				"conn_id", client.ID, "user_id", client.UserID, "total", total)

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				client.closeSend()
			}
			total := len(h.clients)
			h.mu.Unlock()
			slog.Default().Debug("ws client unregistered",
				"conn_id", client.ID, "user_id", client.UserID, "total", total)

		case payload := <-h.Broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if !client.trySend(payload) {
					// Send buffer full; the slow client misses this frame.
					slog.Default().Debug("ws send buffer full, frame skipped",
						"conn_id", client.ID, "user_id", client.UserID)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// ClientCount reports the number of registered connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
