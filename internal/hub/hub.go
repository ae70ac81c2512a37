package hub

import (
	"encoding/json"
	"sync"
)

// Event represents a real-time event pushed to subscribers of a list's
// comment feed.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client is a single subscriber connection. The SSE handler reads
// marshalled events from it until it is closed.
type Client chan []byte

// Hub fans comment events out to everyone watching a list.
type Hub struct {
	lists map[uint]map[Client]bool
	mu    sync.RWMutex
}

// GlobalHub is the singleton instance of our Hub.
var GlobalHub = NewHub()

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		lists: make(map[uint]map[Client]bool),
	}
}

// Subscribe adds a new client to a list's feed.
func (h *Hub) Subscribe(listID uint, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.lists[listID]; !ok {
		h.lists[listID] = make(map[Client]bool)
	}
	h.lists[listID][client] = true
}

// Unsubscribe removes a client from a list's feed and closes its
// channel, which signals the SSE handler to stop.
func (h *Hub) Unsubscribe(listID uint, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.lists[listID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client)
			if len(clients) == 0 {
				delete(h.lists, listID)
			}
		}
	}
}

// Broadcast sends an event to all clients watching a list.
func (h *Hub) Broadcast(listID uint, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.lists[listID]
	if !ok {
		return
	}

	messageBytes, err := json.Marshal(event)
	if err != nil {
		return
	}

	for client := range clients {
		// Non-blocking send so a slow client cannot stall the hub.
		select {
		case client <- messageBytes:
		default:
		}
	}
}
