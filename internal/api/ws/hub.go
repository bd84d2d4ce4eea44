package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"santorini/internal/shared"
)

// Hub keeps the websocket connections of every room and relays player
// commands to the room manager. Room state changes come back through
// Broadcast.
type Hub struct {
	mu          sync.Mutex
	rooms       map[string]map[*websocket.Conn]struct{}
	roomManager RoomManager
}

func NewHub(roomManager RoomManager) *Hub {
	return &Hub{
		rooms:       make(map[string]map[*websocket.Conn]struct{}),
		roomManager: roomManager,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // renderer may be served from anywhere
	},
}

type message struct {
	Action string `json:"action"`
	Data   any    `json:"data"`
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	snap, err := h.roomManager.Snapshot(roomCode)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade: %v", err)
		return
	}
	log.Printf("ws connected to room %s", roomCode)

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[roomCode][conn] = struct{}{}
	h.mu.Unlock()

	defer h.remove(roomCode, conn)

	h.send(conn, message{Action: "state", Data: snap})

	ctx := c.Request.Context()
	for {
		var cmd shared.Command
		if err := conn.ReadJSON(&cmd); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("ws read from room %s: %v", roomCode, err)
			}
			return
		}
		if _, err := h.roomManager.Dispatch(ctx, roomCode, cmd); err != nil {
			h.send(conn, message{Action: "error", Data: gin.H{"action": cmd.Action, "error": err.Error()}})
		}
	}
}

// Broadcast writes to every connection watching roomCode and drops the ones
// that fail.
func (h *Hub) Broadcast(roomCode string, action string, data any) {
	if h == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[roomCode]
	if !ok {
		return
	}
	msg := message{Action: action, Data: data}
	for conn := range clients {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("ws write to room %s: %v", roomCode, err)
			conn.Close()
			delete(clients, conn)
		}
	}
	if len(clients) == 0 {
		delete(h.rooms, roomCode)
	}
}

// Clients reports how many connections watch roomCode.
func (h *Hub) Clients(roomCode string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[roomCode])
}

func (h *Hub) send(conn *websocket.Conn, msg message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("ws write: %v", err)
	}
}

func (h *Hub) remove(roomCode string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.rooms[roomCode]; ok {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(h.rooms, roomCode)
		}
	}
	_ = conn.Close()
}
