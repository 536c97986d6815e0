package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type WSMessage struct {
	Type string `json:"type"`
}

const (
	EventLeaderboardUpdate = "leaderboard_update"
	EventMatchesUpdate     = "matches_update"
)

// Hub fans out cache-invalidation signals to every connected client.
// Only the event type travels; clients re-fetch over REST.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[conn] = true
	log.Printf("ws: client connected (total: %d)", len(h.clients))
}

func (h *Hub) RemoveConnection(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
		log.Printf("ws: client disconnected (total: %d)", len(h.clients))
	}
}

func (h *Hub) Broadcast(msgType string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(WSMessage{Type: msgType})
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}
