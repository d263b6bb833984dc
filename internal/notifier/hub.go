package notifier

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeTimeout = 10 * time.Second

// Hub fans portal notifications out to connected websocket clients and,
// when running, publishes the demo feed on a fixed interval.
type Hub struct {
	log      *zap.Logger
	interval time.Duration

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub creates a hub publishing every interval.
func NewHub(log *zap.Logger, interval time.Duration) *Hub {
	return &Hub{
		log:      log,
		interval: interval,
		clients:  make(map[*websocket.Conn]struct{}),
	}
}

// Register adds a client connection to the hub.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	h.log.Info("client connected", zap.Int("clients", n))
}

// Unregister removes a client connection and closes it.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	n := len(h.clients)
	h.mu.Unlock()
	conn.Close()
	h.log.Info("client disconnected", zap.Int("clients", n))
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast sends a message to every connected client. Clients that fail
// to accept the write are dropped.
func (h *Hub) Broadcast(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		h.log.Error("marshal message", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.log.Warn("dropping client", zap.Error(err))
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// Run publishes the demo feed until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	i := 0
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case <-ticker.C:
			msg := nextMessage(i)
			i++
			h.log.Debug("publishing message", zap.String("subject", msg.Subject))
			h.Broadcast(msg)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}
