package stream

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
)

const (
	channelPrefix = "attractions:"
	channelSuffix = ":reviews"
)

// Event is one review mutation, delivered to every subscriber of the attraction.
type Event struct {
	Type         string `json:"type"`
	AttractionID int64  `json:"attraction_id"`
	Payload      any    `json:"payload,omitempty"`
}

// Hub fans review events out to websocket clients. With redis configured
// every event goes through pub/sub, so all instances deliver it exactly once.
type Hub struct {
	redis   *redis.Client
	pubsub  *redis.PubSub
	clients map[int64]map[*Client]struct{}
	mu      sync.RWMutex
}

type Client struct {
	AttractionID int64
	Send         chan []byte
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{clients: map[int64]map[*Client]struct{}{}}
	if redisClient == nil {
		return h
	}

	ctx := context.Background()
	ps := redisClient.PSubscribe(ctx, channelPrefix+"*"+channelSuffix)
	if _, err := ps.Receive(ctx); err != nil {
		log.Printf("redis subscribe error, delivering locally: %v", err)
		_ = ps.Close()
		return h
	}
	h.redis = redisClient
	h.pubsub = ps
	go h.relay(ps.Channel())
	return h
}

func (h *Hub) Register(attractionID int64) *Client {
	client := &Client{
		AttractionID: attractionID,
		Send:         make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[attractionID] == nil {
		h.clients[attractionID] = map[*Client]struct{}{}
	}
	h.clients[attractionID][client] = struct{}{}
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.clients[client.AttractionID]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.clients, client.AttractionID)
		}
	}
	close(client.Send)
}

// Publish encodes the event and hands it to redis, or straight to local
// clients when redis is not available.
func (h *Hub) Publish(ctx context.Context, attractionID int64, eventType string, payload any) {
	data, err := json.Marshal(Event{Type: eventType, AttractionID: attractionID, Payload: payload})
	if err != nil {
		log.Printf("encode %s event: %v", eventType, err)
		return
	}

	if h.redis != nil {
		err := h.redis.Publish(ctx, channelName(attractionID), data).Err()
		if err == nil {
			return
		}
		log.Printf("redis publish error: %v", err)
	}
	h.deliver(attractionID, data)
}

func (h *Hub) Close() error {
	if h.pubsub == nil {
		return nil
	}
	return h.pubsub.Close()
}

func (h *Hub) deliver(attractionID int64, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[attractionID] {
		select {
		case client.Send <- data:
		default:
			// slow reader, drop
		}
	}
}

func (h *Hub) relay(msgs <-chan *redis.Message) {
	for msg := range msgs {
		id, ok := attractionFromChannel(msg.Channel)
		if !ok {
			continue
		}
		h.deliver(id, []byte(msg.Payload))
	}
}

func channelName(attractionID int64) string {
	return channelPrefix + strconv.FormatInt(attractionID, 10) + channelSuffix
}

// attractionFromChannel parses attractions:{id}:reviews.
func attractionFromChannel(ch string) (int64, bool) {
	if !strings.HasPrefix(ch, channelPrefix) || !strings.HasSuffix(ch, channelSuffix) {
		return 0, false
	}
	raw := strings.TrimSuffix(strings.TrimPrefix(ch, channelPrefix), channelSuffix)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
