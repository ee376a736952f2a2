package websocket

import "github.com/hobbyconnect/server/internal/models"

const MessageTypeChat = "chat"

// InboundMessage is a client frame. UserID is accepted on the wire for
// backwards compatibility but never trusted: the connection identity
// resolved at handshake time is used instead.
type InboundMessage struct {
	Type        string `json:"type"`
	CommunityID uint   `json:"communityId"`
	Content     string `json:"content"`
	UserID      string `json:"userId,omitempty"`
}

// OutboundChat wraps the persisted message for broadcast to every
// connected client.
type OutboundChat struct {
	Type    string              `json:"type"`
	Message *models.ChatMessage `json:"message"`
}
