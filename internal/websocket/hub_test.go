package websocket

import (
	"testing"
	"time"
)

func waitForCount(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("client count never reached %d, got %d", want, hub.ClientCount())
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	first := NewClient(hub, nil, "user-1")
	second := NewClient(hub, nil, "user-2")

	hub.Register <- first
	hub.Register <- second
	waitForCount(t, hub, 2)

	if first.ID == second.ID {
		t.Fatalf("connection ids must be unique, got %s twice", first.ID)
	}

	hub.Unregister <- first
	waitForCount(t, hub, 1)

	// Unregistering twice is a no-op.
	hub.Unregister <- first
	waitForCount(t, hub, 1)
}

func TestHubBroadcastFansOutToAllClients(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	clients := []*Client{
		NewClient(hub, nil, "user-1"),
		NewClient(hub, nil, "user-2"),
		NewClient(hub, nil, "user-3"),
	}
	for _, c := range clients {
		hub.Register <- c
	}
	waitForCount(t, hub, 3)

	payload := []byte(`{"type":"chat"}`)
	hub.Broadcast <- payload

	for i, c := range clients {
		select {
		case got := <-c.send:
			if string(got) != string(payload) {
				t.Fatalf("client %d got %q, want %q", i, got, payload)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("client %d never received the broadcast", i)
		}
	}
}

func TestHubSkipsSlowClient(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	slow := NewClient(hub, nil, "slow")
	fast := NewClient(hub, nil, "fast")
	hub.Register <- slow
	hub.Register <- fast
	waitForCount(t, hub, 2)

	// Fill the slow client's send buffer so further frames are dropped.
	for i := 0; i < cap(slow.send); i++ {
		if !slow.trySend([]byte("filler")) {
			t.Fatalf("buffer filled early at %d", i)
		}
	}

	hub.Broadcast <- []byte("frame")

	select {
	case got := <-fast.send:
		if string(got) != "frame" {
			t.Fatalf("fast client got %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("fast client blocked behind the slow one")
	}

	if len(slow.send) != cap(slow.send) {
		t.Fatalf("slow client buffer changed unexpectedly")
	}
}

func TestTrySendAfterCloseDoesNotPanic(t *testing.T) {
	hub := NewHub(nil)
	client := NewClient(hub, nil, "user-1")

	client.closeSend()
	if client.trySend([]byte("late")) {
		t.Fatalf("send on closed channel must report failure")
	}
	// closeSend is idempotent.
	client.closeSend()
}
