package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hobbyconnect/server/internal/models"
	ws "github.com/hobbyconnect/server/internal/websocket"

	"github.com/gorilla/websocket"
)

func TestWebSocketChatRoundTrip(t *testing.T) {
	router, h, store := newTestServer(t, nil)
	router.GET("/ws", h.HandleWebSocket)

	srv := httptest.NewServer(router)
	defer srv.Close()

	token, userID := registerUser(t, router, "chatter@example.com")

	community := &models.Community{Name: "Chatty", Category: "talk", MaxMembers: 10, LeaderID: userID}
	if err := store.CreateCommunity(community); err != nil {
		t.Fatalf("create community: %v", err)
	}

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial websocket: %v", err)
	}
	defer conn.Close()

	frame := ws.InboundMessage{
		Type:        ws.MessageTypeChat,
		CommunityID: community.ID,
		Content:     "hello",
		UserID:      "spoofed-user",
	}
	if err := conn.WriteJSON(frame); err != nil {
		t.Fatalf("write frame: %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read broadcast: %v", err)
	}

	var out ws.OutboundChat
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatalf("decode broadcast: %v", err)
	}
	if out.Type != ws.MessageTypeChat || out.Message == nil {
		t.Fatalf("unexpected broadcast: %s", payload)
	}
	if out.Message.Content != "hello" || out.Message.CommunityID != community.ID {
		t.Fatalf("unexpected message: %+v", out.Message)
	}
	// The identity comes from the handshake token, not the frame.
	if out.Message.UserID != userID {
		t.Fatalf("expected sender %s, got %s", userID, out.Message.UserID)
	}

	messages, err := store.GetChatMessages(community.ID, 10)
	if err != nil {
		t.Fatalf("load messages: %v", err)
	}
	if len(messages) != 1 || messages[0].Content != "hello" {
		t.Fatalf("message not persisted: %+v", messages)
	}
}

func TestWebSocketRejectsBadToken(t *testing.T) {
	router, h, _ := newTestServer(t, nil)
	router.GET("/ws", h.HandleWebSocket)

	srv := httptest.NewServer(router)
	defer srv.Close()

	base := "ws" + strings.TrimPrefix(srv.URL, "http")

	if _, resp, err := websocket.DefaultDialer.Dial(base+"/ws", nil); err == nil {
		t.Fatalf("dial without token should fail")
	} else if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 handshake response, got %+v", resp)
	}

	if _, resp, err := websocket.DefaultDialer.Dial(base+"/ws?token=garbage", nil); err == nil {
		t.Fatalf("dial with bad token should fail")
	} else if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 handshake response, got %+v", resp)
	}
}

func TestWebSocketDropsMalformedFrames(t *testing.T) {
	router, h, store := newTestServer(t, nil)
	router.GET("/ws", h.HandleWebSocket)

	srv := httptest.NewServer(router)
	defer srv.Close()

	token, userID := registerUser(t, router, "chatter@example.com")
	community := &models.Community{Name: "Chatty", Category: "talk", MaxMembers: 10, LeaderID: userID}
	if err := store.CreateCommunity(community); err != nil {
		t.Fatalf("create community: %v", err)
	}

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial websocket: %v", err)
	}
	defer conn.Close()

	// Neither frame is valid; the connection must stay open.
	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("write garbage: %v", err)
	}
	if err := conn.WriteJSON(ws.InboundMessage{Type: "unknown", CommunityID: community.ID, Content: "x"}); err != nil {
		t.Fatalf("write unknown type: %v", err)
	}

	// A valid frame afterwards still goes through.
	if err := conn.WriteJSON(ws.InboundMessage{Type: ws.MessageTypeChat, CommunityID: community.ID, Content: "still here"}); err != nil {
		t.Fatalf("write valid frame: %v", err)
	}
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read broadcast after bad frames: %v", err)
	}
	if !strings.Contains(string(payload), "still here") {
		t.Fatalf("unexpected broadcast: %s", payload)
	}

	messages, _ := store.GetChatMessages(community.ID, 10)
	if len(messages) != 1 {
		t.Fatalf("expected only the valid frame persisted, got %d", len(messages))
	}
}
