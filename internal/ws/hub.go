package ws

import (
	"encoding/json"
	"log"
	"sync"

	"go-inventory-dash/internal/store"

	"github.com/gofiber/contrib/websocket"
)

// Hub fans store events out to connected dashboard clients so they can
// re-read the collections after every mutation.
type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
	}
}

// BroadcastEvent is wired as a store subscriber; it wraps the event in the
// collections-changed envelope the dashboard listens for.
func (h *Hub) BroadcastEvent(e store.Event) {
	payload, err := json.Marshal(map[string]interface{}{
		"type":   "collections_changed",
		"entity": e.Entity,
		"action": e.Action,
		"id":     e.ID,
	})
	if err != nil {
		return
	}
	h.Broadcast <- payload
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			log.Println("New WS client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
