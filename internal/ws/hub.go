package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Hub maintains the set of connected clients keyed by user id and delivers
// notification events to them.
type Hub struct {
	// Registered clients mapped by user ID
	Clients map[string]*Client

	// Register requests from clients
	Register chan *Client

	// Unregister requests from clients
	Unregister chan *Client

	mu sync.RWMutex
}

// NewHub creates a new notification hub
func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.registerClient(client)
		case client := <-h.Unregister:
			h.unregisterClient(client)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// If user already has a connection, close the old one
	if existing, ok := h.Clients[client.ID]; ok {
		close(existing.Send)
	}
	h.Clients[client.ID] = client
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if current, ok := h.Clients[client.ID]; ok && current == client {
		delete(h.Clients, client.ID)
		close(client.Send)
	}
}

// Publish sends an event to a specific user if they are connected. Offline
// users simply miss the event; they pick up state on the next REST fetch.
func (h *Hub) Publish(userID string, eventType EventType, payload interface{}) {
	data, err := json.Marshal(Event{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	})
	if err != nil {
		log.Printf("Failed to marshal event: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if client, ok := h.Clients[userID]; ok {
		select {
		case client.Send <- data:
		default:
			log.Printf("Dropping event for slow client: %s", userID)
		}
	}
}

// OnlineCount returns the number of currently connected clients
func (h *Hub) OnlineCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.Clients)
}
