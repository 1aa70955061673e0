// Package realtime fans order events out to connected dashboards. Each
// cafe is a room; staff dashboards subscribe to their cafe's room and
// receive order events as JSON frames.
package realtime

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Event is one frame pushed to dashboard clients.
type Event struct {
	Type        string  `json:"type"` // "order_created" or "order_changed"
	OrderID     uint    `json:"orderId"`
	TableNumber int     `json:"tableNumber,omitempty"`
	TotalAmount float64 `json:"totalAmount,omitempty"`
	Status      string  `json:"status,omitempty"`
}

// Client is one connected dashboard socket.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
	Room string
}

type broadcastMsg struct {
	Room string
	Data []byte
}

// Hub routes events to clients grouped by cafe room.
type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		done:       make(chan struct{}),
	}
}

// Run processes registrations and broadcasts until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for room, conns := range h.rooms {
				for c := range conns {
					close(c.Send)
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.Room] == nil {
				h.rooms[c.Room] = make(map[*Client]bool)
			}
			h.rooms[c.Room][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.rooms[c.Room]; conns != nil && conns[c] {
				delete(conns, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[m.Room] {
				select {
				case c.Send <- m.Data:
				default:
					close(c.Send)
					delete(h.rooms[m.Room], c)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Stop shuts the hub down and closes every client send channel.
func (h *Hub) Stop() {
	close(h.done)
}

// add registers a client, or reports failure when the hub has stopped.
func (h *Hub) add(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// remove unregisters a client. A stopped hub has already closed every
// send channel, so the drop is silent.
func (h *Hub) remove(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Room names the broadcast room for a cafe.
func Room(cafeID uint) string {
	return "cafe_" + strconv.FormatUint(uint64(cafeID), 10)
}

// Publish sends an event to every client watching the cafe. Events with
// no listeners are dropped, not queued.
func (h *Hub) Publish(cafeID uint, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Println("realtime: marshal event:", err)
		return
	}
	select {
	case h.broadcast <- broadcastMsg{Room: Room(cafeID), Data: data}:
	case <-h.done:
	}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// ServeWS upgrades a dashboard connection and subscribes it to its
// cafe's room. The socket is server-push only; inbound frames are read
// and discarded to detect disconnects.
func (h *Hub) ServeWS(c *gin.Context) {
	cafeID, err := strconv.ParseUint(c.Param("cafeId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cafe ID"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("realtime: upgrade:", err)
		return
	}

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 64),
		Room: Room(uint(cafeID)),
	}

	if !h.add(client) {
		conn.Close()
		return
	}
	go writePump(client)
	go h.readPump(client)
}

func writePump(c *Client) {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

func (h *Hub) readPump(c *Client) {
	defer func() {
		h.remove(c)
		c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
