// Package sse streams game notifications to HTTP clients as server-sent events.
package sse

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event represents an event sent over SSE
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client represents a connected SSE client
type Client struct {
	ID           string
	EventChannel chan Event
	EventFilter  map[string]bool // nil means all events
}

func (c *Client) wants(eventType string) bool {
	return c.EventFilter == nil || c.EventFilter[eventType]
}

// Hub fans notifications out to connected clients. Slow clients miss
// events rather than stalling the broadcaster.
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Event
	register   chan *Client
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	now        func() time.Time
}

// NewHub creates a new SSE Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
		now:        time.Now,
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the broadcast loop and closes every client channel, which makes
// open stream handlers return. Safe to call more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		for _, client := range h.clients {
			close(client.EventChannel)
		}
		h.clients = make(map[string]*Client)
		h.mu.Unlock()
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				close(client.EventChannel)
				delete(h.clients, clientID)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if !client.wants(event.Type) {
					continue
				}
				select {
				case client.EventChannel <- event:
				default:
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			// Registrations still buffered never reached the map; close them here.
			for {
				select {
				case client := <-h.register:
					close(client.EventChannel)
				default:
					return
				}
			}
		}
	}
}

// Register adds a client interested in eventTypes, or in everything when
// eventTypes is empty. After Stop the returned client's channel is closed.
func (h *Hub) Register(eventTypes []string) *Client {
	client := &Client{
		ID:           uuid.New().String(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}

	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}

	select {
	case <-h.shutdown:
		close(client.EventChannel)
		return client
	default:
	}

	select {
	case h.register <- client:
	case <-h.shutdown:
		close(client.EventChannel)
	}
	return client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast queues an event for all interested clients. It never blocks and
// reports false when the queue is full or the hub has stopped.
func (h *Hub) Broadcast(eventType string, payload interface{}) bool {
	select {
	case <-h.shutdown:
		return false
	default:
	}

	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: h.now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- event:
		return true
	default:
		return false
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage formats an SSE event for transmission:
// "id: <id>\nevent: <type>\ndata: <json>\n\n"
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("id: %s\nevent: %s\ndata: %s\n\n", event.ID, event.Type, data)), nil
}
