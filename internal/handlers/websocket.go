package handlers

import (
	"log/slog"
	"net/http"

	ws "github.com/hobbyconnect/server/internal/websocket"

	"github.com/gin-gonic/gin"
)

// HandleWebSocket upgrades GET /ws. The session token travels as a
// query parameter because browsers cannot set headers on WebSocket
// handshakes. The resolved identity is bound to the connection; any
// userId asserted inside later frames is ignored.
func (h *Handlers) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token required"})
		return
	}
	userID, ok := h.parseToken(token)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	conn, err := h.wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Default().Warn("ws upgrade failed", "user_id", userID, "error", err)
		return
	}

	client := ws.NewClient(h.hub, conn, userID)
	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
