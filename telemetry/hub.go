package telemetry

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	DefaultPingInterval = 2 * time.Second
	writeTimeout        = time.Second
	// clientBuffer is how many snapshots may queue for one client before it
	// is considered too slow and dropped.
	clientBuffer = 16
)

// Hub fans snapshots out to websocket clients. Publish never blocks on a
// client.
type Hub struct {
	upgrader     websocket.Upgrader
	pingInterval time.Duration

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		pingInterval: DefaultPingInterval,
		clients:      map[*client]struct{}{},
	}
}

// ServeHTTP upgrades the request and streams snapshots until the client goes
// away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("telemetry: upgrade: %v", err)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, clientBuffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go h.writeLoop(c)
	h.readLoop(c)
}

// readLoop discards client messages; it only exists to notice disconnects.
func (h *Hub) readLoop(c *client) {
	defer h.drop(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(c *client) {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()
	defer h.drop(c)
	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		close(c.send)
	}
	c.once.Do(func() { c.conn.Close() })
}

// Publish encodes s once and queues it for every client. Clients whose queue
// is full are disconnected.
func (h *Hub) Publish(s Snapshot) error {
	msg, err := json.Marshal(s)
	if err != nil {
		return err
	}

	var slow []*client
	h.mu.Lock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.Unlock()

	for _, c := range slow {
		log.Printf("telemetry: dropping slow client %s", c.conn.RemoteAddr())
		h.drop(c)
	}
	return nil
}

func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()
	for _, c := range clients {
		h.drop(c)
	}
}
