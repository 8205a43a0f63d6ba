// Package websocket fans the latest venue statuses out to UI clients.
package websocket

import (
	"encoding/json"
	"log"
	"sync"

	"oh-server/models"
	"oh-server/util"
)

// StatusMessage is the wire form of one published evaluation, carrying
// the display tokens so the UI does not recompute them.
type StatusMessage struct {
	Type    string               `json:"type"`
	VenueID string               `json:"venue_id"`
	Result  *models.StatusResult `json:"result"`
	Color   string               `json:"color"`
	Glyph   string               `json:"glyph"`
}

// Hub maintains the set of connected status subscribers and broadcasts
// every published result to them.
type Hub struct {
	clients map[*Client]bool

	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex
}

// NewHub creates a new status hub.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's event loop. Call it in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("[Hub] Client connected (total: %d)", h.ClientCount())

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			log.Printf("[Hub] Client disconnected (total: %d)", h.ClientCount())

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Client send buffer full, drop the connection
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastStatus marshals and fans out a venue's latest status.
func (h *Hub) BroadcastStatus(venueID string, result *models.StatusResult) {
	msg := StatusMessage{
		Type:    "venue_status",
		VenueID: venueID,
		Result:  result,
		Color:   util.StatusColor(result.Status),
		Glyph:   util.StatusGlyph(result.IsOpen),
	}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[Hub] Failed to marshal status message: %v", err)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		log.Println("[Hub] Broadcast channel full, dropping message")
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Client represents one connected status subscriber.
type Client struct {
	hub  *Hub
	send chan []byte
}

// NewClient creates a client bound to the hub.
func NewClient(hub *Hub) *Client {
	return &Client{
		hub:  hub,
		send: make(chan []byte, 256),
	}
}

// Send returns the client's outbound channel.
func (c *Client) Send() chan []byte {
	return c.send
}
