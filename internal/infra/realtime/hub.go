// Package realtime keeps the websocket room registry and delivers events to
// connections joined to seller_{id} and buyer_{id} rooms.
package realtime

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"mealmarket/config"
	"mealmarket/internal/domain/entity"
	"mealmarket/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/fx"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 << 10

	defaultSendBuffer = 64
)

// Acknowledgement events sent in reply to control frames.
const (
	EventJoined = "joined"
	EventLeft   = "left"
	EventError  = "error"
	EventPong   = "pong"
)

// Control frame actions.
const (
	ActionJoinSeller = "join_seller"
	ActionJoinBuyer  = "join_buyer"
	ActionLeave      = "leave"
	ActionPing       = "ping"
)

// Message is the JSON frame written to clients. Room is empty for broadcasts and acknowledgements.
type Message struct {
	Room  string `json:"room,omitempty"`
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

type controlMessage struct {
	Action string `json:"action"`
	ID     string `json:"id"`
	Room   string `json:"room"`
}

// Hub is the per-instance registry of live connections.
type Hub struct {
	mu         sync.RWMutex
	rooms      map[string]map[*connection]struct{}
	clients    map[*connection]struct{}
	upgrader   websocket.Upgrader
	sendBuffer int
	logger     *slog.Logger
}

type HubParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func NewHub(params HubParams) *Hub {
	sendBuffer := params.Config.Realtime.SendBuffer
	if sendBuffer <= 0 {
		sendBuffer = defaultSendBuffer
	}

	allowed := params.Config.Realtime.AllowedOrigins

	return &Hub{
		rooms:      make(map[string]map[*connection]struct{}),
		clients:    make(map[*connection]struct{}),
		sendBuffer: sendBuffer,
		logger:     params.Logger.With(slog.String("component", "realtime_hub")),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return originAllowed(r, allowed)
			},
		},
	}
}

// Serve upgrades the request and blocks until the connection ends.
// sellerID is uuid.Nil for anonymous connections, which may only join buyer rooms.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, sellerID uuid.UUID) error {
	socket, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &connection{
		hub:      h,
		socket:   socket,
		sellerID: sellerID,
		rooms:    make(map[string]struct{}),
		send:     make(chan Message, h.sendBuffer),
	}
	h.register(client)

	go client.writeLoop()
	client.readLoop()

	return nil
}

// Deliver enqueues an event for every connection in room, or for every connection when room is empty.
// It returns the number of connections the event was queued for.
func (h *Hub) Deliver(room, event string, data any) int {
	message := Message{Room: room, Event: event, Data: data}

	h.mu.RLock()
	defer h.mu.RUnlock()

	targets := h.clients
	if room != "" {
		targets = h.rooms[room]
	}

	delivered := 0
	for client := range targets {
		if h.enqueue(client, message) {
			delivered++
		}
	}

	return delivered
}

// Connections returns the number of open connections.
func (h *Hub) Connections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// RoomSize returns the number of connections joined to room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[room])
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.RLock()
	clients := make([]*connection, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		client.close()
	}
}

func (h *Hub) register(client *connection) {
	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()

	metrics.RealtimeConnections.Inc()
}

func (h *Hub) unregister(client *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}

	for room := range client.rooms {
		h.leaveLocked(client, room)
	}
	delete(h.clients, client)
	metrics.RealtimeConnections.Dec()
}

func (h *Hub) join(client *connection, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := client.rooms[room]; ok {
		return
	}
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*connection]struct{})
	}
	h.rooms[room][client] = struct{}{}
	client.rooms[room] = struct{}{}
}

func (h *Hub) leave(client *connection, room string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := client.rooms[room]; !ok {
		return false
	}
	h.leaveLocked(client, room)

	return true
}

func (h *Hub) leaveLocked(client *connection, room string) {
	members := h.rooms[room]
	delete(members, client)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
	delete(client.rooms, room)
}

// enqueue must be called with h.mu held for reading.
func (h *Hub) enqueue(client *connection, message Message) bool {
	if client.deliver(message) {
		return true
	}

	h.logger.Warn("Dropping slow realtime client",
		slog.String("seller_id", client.sellerID.String()),
		slog.Int("rooms", len(client.rooms)),
	)
	metrics.RealtimeSlowConsumers.Inc()
	// close takes the write lock.
	go client.close()

	return false
}

// roomFor resolves a join request to a room name. The error string is sent back to the client.
func (c *connection) roomFor(ctrl controlMessage) (string, string) {
	id := strings.TrimSpace(ctrl.ID)

	switch ctrl.Action {
	case ActionJoinSeller:
		sellerID, err := uuid.Parse(id)
		if err != nil {
			return "", "invalid seller id"
		}
		if c.sellerID == uuid.Nil || c.sellerID != sellerID {
			return "", "seller room requires a matching access token"
		}

		return entity.SellerRecipient(sellerID).Room(), ""
	case ActionJoinBuyer:
		if !strings.HasPrefix(id, entity.BuyerIDPrefix) || len(id) == len(entity.BuyerIDPrefix) {
			return "", "invalid buyer id"
		}

		return entity.BuyerRecipient(id).Room(), ""
	}

	return "", "unsupported action"
}

type connection struct {
	hub      *Hub
	socket   *websocket.Conn
	sellerID uuid.UUID
	rooms    map[string]struct{} // guarded by hub.mu

	mu     sync.Mutex
	closed bool
	send   chan Message
	once   sync.Once
}

// deliver queues a message without blocking. It reports false when the buffer is full.
func (c *connection) deliver(message Message) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return true
	}

	select {
	case c.send <- message:
		return true
	default:
		return false
	}
}

func (c *connection) reply(event string, data any) {
	if !c.deliver(Message{Event: event, Data: data}) {
		go c.close()
	}
}

func (c *connection) readLoop() {
	defer c.close()

	c.socket.SetReadLimit(maxMessageSize)
	_ = c.socket.SetReadDeadline(time.Now().Add(pongWait))
	c.socket.SetPongHandler(func(string) error {
		return c.socket.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := c.socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Debug("Realtime connection closed unexpectedly", slog.Any("error", err))
			}

			return
		}
		if len(payload) == 0 {
			continue
		}

		var ctrl controlMessage
		if err := json.Unmarshal(payload, &ctrl); err != nil {
			c.reply(EventError, map[string]string{"message": "invalid control frame"})

			continue
		}
		ctrl.Action = strings.ToLower(strings.TrimSpace(ctrl.Action))

		c.handle(ctrl)
	}
}

func (c *connection) handle(ctrl controlMessage) {
	switch ctrl.Action {
	case ActionPing:
		c.reply(EventPong, nil)
	case ActionLeave:
		room := strings.TrimSpace(ctrl.Room)
		if !c.hub.leave(c, room) {
			c.reply(EventError, map[string]string{"message": "not joined", "room": room})

			return
		}
		c.reply(EventLeft, map[string]string{"room": room})
	default:
		room, problem := c.roomFor(ctrl)
		if problem != "" {
			c.reply(EventError, map[string]string{"message": problem, "action": ctrl.Action})

			return
		}
		c.hub.join(c, room)
		c.reply(EventJoined, map[string]string{"room": room})
	}
}

func (c *connection) writeLoop() {
	defer c.close()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.socket.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.socket.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}
			if err := c.socket.WriteJSON(message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.socket.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *connection) close() {
	c.once.Do(func() {
		c.hub.unregister(c)

		c.mu.Lock()
		c.closed = true
		close(c.send)
		c.mu.Unlock()

		_ = c.socket.Close()
	})
}

func originAllowed(r *http.Request, allowed []string) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if slices.Contains(allowed, "*") || slices.Contains(allowed, origin) {
		return true
	}

	parsed, err := url.Parse(origin)
	if err != nil {
		return false
	}
	originHost := hostWithoutPort(parsed.Host)

	return originHost == hostWithoutPort(r.Host) || isLoopback(originHost)
}

func hostWithoutPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}

	return host
}

func isLoopback(host string) bool {
	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback()
	}

	return strings.EqualFold(host, "localhost")
}
