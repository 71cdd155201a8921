package live

import (
	"testing"
	"time"
)

func TestHubSubscribeBroadcastCancel(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	events, cancel := hub.Subscribe()

	hub.Broadcast([]byte(`{"type":"order_created"}`))

	select {
	case got := <-events:
		if string(got) != `{"type":"order_created"}` {
			t.Fatalf("unexpected payload: %s", got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for event")
	}

	cancel()
	cancel() // second cancel must not panic

	select {
	case _, open := <-events:
		if open {
			t.Fatal("expected channel closed after cancel")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for channel close")
	}
}

func TestHubDropsSlowSubscriber(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	events, cancel := hub.Subscribe()
	defer cancel()

	// fill the buffer and push one more to trigger the drop
	for i := 0; i < 17; i++ {
		hub.Broadcast([]byte("x"))
	}

	deadline := time.After(1 * time.Second)
	for {
		select {
		case _, open := <-events:
			if !open {
				return // dropped as expected
			}
		case <-deadline:
			t.Fatal("slow subscriber was never dropped")
		}
	}
}
