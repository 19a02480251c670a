package realtime

import (
	"encoding/json"
	"sync"
)

// Client represents a single websocket client connection.
// We keep it minimal here; the actual network conn is managed in the ws handler.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Event is a resolution/cache event pushed to connected clients.
type Event struct {
	Type     string `json:"type"`
	DID      string `json:"did,omitempty"`
	Source   string `json:"source,omitempty"`
	ClientID string `json:"clientId,omitempty"`
	Version  int    `json:"version"`
}

const (
	EventResolved         = "did_resolved"
	EventCacheInvalidated = "cache_invalidated"
	EventCacheCleared     = "cache_cleared"
)

// Hub maintains active client connections and broadcasts cache events to
// them. Cache events are service-wide, so every connected client sees
// every event.
type Hub struct {
	mu      sync.RWMutex
	clients map[Client]struct{}
}

var hubInstance *Hub
var once sync.Once

// GetHub returns a singleton hub instance.
func GetHub() *Hub {
	once.Do(func() {
		hubInstance = &Hub{
			clients: make(map[Client]struct{}),
		}
	})
	return hubInstance
}

// Register adds a client connection.
func (h *Hub) Register(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

// Unregister removes a client connection.
func (h *Hub) Unregister(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

// Broadcast sends an event to every connected client. Marshal failures
// and write failures are dropped; the ws handler cleans up dead
// connections on its side.
func (h *Hub) Broadcast(evt Event) {
	if evt.Version == 0 {
		evt.Version = 1
	}
	message, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if ok := c.Send(message); !ok {
			// client write failed; let the handler clean it up on its side
		}
	}
}
