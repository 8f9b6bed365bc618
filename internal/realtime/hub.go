// Package realtime pushes storefront events to connected browsers over
// websockets. Every frame is the JSON encoding of a notify.Event.
package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/wichananm65/petshop-storefront/internal/notify"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4 * 1024
	sendBuffer     = 64
)

// Hub tracks live viewers and forwards every broker event to each of them.
type Hub struct {
	mu          sync.RWMutex
	clients     map[*client]struct{}
	unsubscribe func()
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func (c *client) enqueue(frame []byte) {
	select {
	case c.send <- frame:
	default:
		slog.Warn("ws: viewer too slow, dropping event", "client", c.id)
	}
}

func (c *client) stop() {
	c.once.Do(func() { close(c.done) })
}

func NewHub(broker *notify.Broker) *Hub {
	h := &Hub{clients: make(map[*client]struct{})}
	h.unsubscribe = broker.Subscribe(h.broadcast)
	return h
}

func (h *Hub) RegisterRoutes(r fiber.Router) {
	r.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	r.Get("/ws", websocket.New(h.serve))
}

// ClientCount returns the number of connected viewers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close detaches the hub from the broker and disconnects every viewer.
func (h *Hub) Close() {
	h.unsubscribe()
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		c.stop()
	}
}

func (h *Hub) broadcast(ev notify.Event) {
	frame, err := json.Marshal(ev)
	if err != nil {
		slog.Error("ws: encode event", "event", ev.Name, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		c.enqueue(frame)
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	slog.Info("ws: viewer connected", "client", c.id, "total", n)
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	n := len(h.clients)
	h.mu.Unlock()
	slog.Info("ws: viewer disconnected", "client", c.id, "total", n)
}

// serve owns one connection for its lifetime. Inbound frames are read only
// to notice when the viewer goes away.
func (h *Hub) serve(conn *websocket.Conn) {
	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
	h.register(c)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.writePump()
	}()

	c.readPump()
	c.stop()
	h.unregister(c)
	wg.Wait()
}

func (c *client) readPump() {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("ws: unexpected close", "client", c.id, "error", err)
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case frame := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
			return
		}
	}
}
