package stream

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func receive(t *testing.T, c *Client, wait time.Duration) Event {
	t.Helper()
	select {
	case msg := <-c.Send:
		var ev Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			t.Fatalf("decode event: %v", err)
		}
		return ev
	case <-time.After(wait):
		t.Fatalf("timeout waiting for event")
	}
	return Event{}
}

func TestHubPublishLocal(t *testing.T) {
	hub := NewHub(nil)
	client := hub.Register(7)
	other := hub.Register(8)
	defer hub.Unregister(client)
	defer hub.Unregister(other)

	hub.Publish(context.Background(), 7, "review.created", map[string]int{"rating": 5})

	ev := receive(t, client, 100*time.Millisecond)
	if ev.Type != "review.created" || ev.AttractionID != 7 {
		t.Fatalf("unexpected event: %+v", ev)
	}
	select {
	case <-other.Send:
		t.Fatalf("event leaked to another attraction")
	default:
	}
}

func TestChannelNames(t *testing.T) {
	ch := channelName(42)
	if ch != "attractions:42:reviews" {
		t.Fatalf("unexpected channel: %s", ch)
	}
	if id, ok := attractionFromChannel(ch); !ok || id != 42 {
		t.Fatalf("unexpected attraction id %d", id)
	}
	for _, bad := range []string{"bad", "attractions:x:reviews", "tracking:1:broadcast"} {
		if _, ok := attractionFromChannel(bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestUnregisterCloses(t *testing.T) {
	hub := NewHub(nil)
	client := hub.Register(2)
	hub.Unregister(client)
	if _, ok := <-client.Send; ok {
		t.Fatalf("expected channel closed")
	}
}

func TestHubRelaysThroughRedis(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer rdb.Close()

	hub := NewHub(rdb)
	defer hub.Close()
	ws := hub.Register(3)
	defer hub.Unregister(ws)

	hub.Publish(context.Background(), 3, "review.updated", nil)
	if ev := receive(t, ws, 500*time.Millisecond); ev.Type != "review.updated" {
		t.Fatalf("unexpected event: %+v", ev)
	}

	// events published by another instance arrive too
	if err := rdb.Publish(context.Background(), channelName(3), `{"type":"review.deleted","attraction_id":3}`).Err(); err != nil {
		t.Fatalf("publish error: %v", err)
	}
	if ev := receive(t, ws, 500*time.Millisecond); ev.Type != "review.deleted" {
		t.Fatalf("unexpected event: %+v", ev)
	}

	select {
	case <-ws.Send:
		t.Fatalf("expected each event exactly once")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubFallsBackWhenRedisDown(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	s.Close()
	defer rdb.Close()

	hub := NewHub(rdb)
	defer hub.Close()
	ws := hub.Register(4)
	defer hub.Unregister(ws)

	hub.Publish(context.Background(), 4, "review.created", nil)
	if ev := receive(t, ws, 100*time.Millisecond); ev.AttractionID != 4 {
		t.Fatalf("unexpected event: %+v", ev)
	}
}
