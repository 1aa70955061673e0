package realtime

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: Room(1),
	}
	hub.register <- client

	hub.Publish(1, Event{Type: "order_created", OrderID: 42, TableNumber: 3, TotalAmount: 9.50})

	select {
	case got := <-client.Send:
		var ev Event
		if err := json.Unmarshal(got, &ev); err != nil {
			t.Fatalf("bad frame: %v", err)
		}
		if ev.Type != "order_created" || ev.OrderID != 42 {
			t.Fatalf("unexpected event %+v", ev)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for event")
	}

	hub.unregister <- client
}

func TestStoppedHubUnblocksClientLifecycle(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	hub.Stop()

	client := &Client{Send: make(chan []byte, 1), Room: Room(1)}

	done := make(chan struct{})
	go func() {
		if hub.add(client) {
			t.Error("expected registration to fail after stop")
		}
		hub.remove(client)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("client lifecycle blocked on a stopped hub")
	}
}

func TestHubRoomsAreIsolated(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	mine := &Client{Send: make(chan []byte, 10), Room: Room(1)}
	other := &Client{Send: make(chan []byte, 10), Room: Room(2)}
	hub.register <- mine
	hub.register <- other

	hub.Publish(1, Event{Type: "order_created", OrderID: 7})

	select {
	case <-mine.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for event in own room")
	}

	select {
	case got := <-other.Send:
		t.Fatalf("event leaked into another cafe's room: %s", got)
	case <-time.After(100 * time.Millisecond):
	}
}
