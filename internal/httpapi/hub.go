package httpapi

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"keymint/internal/domain"
)

// Hub fans notices out to connected WebSocket clients. It implements
// domain.Notifier; delivery is best effort and slow or dead clients
// are dropped.
type Hub struct {
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewHub returns a Hub accepting the given origins. An empty list
// accepts any origin (panel served from the same host).
func NewHub(origins []string) *Hub {
	h := &Hub{conns: make(map[*websocket.Conn]struct{})}
	h.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if len(origins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, o := range origins {
				if origin == o {
					return true
				}
			}
			return false
		},
	}
	return h
}

// ServeHTTP upgrades the request and keeps the connection registered
// until the peer goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return // Upgrade already wrote the response
	}
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	// Reader loop: we never expect client frames, but reading is how
	// close and error conditions surface.
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Notify broadcasts the notice to every connected client.
func (h *Hub) Notify(n domain.Notice) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(n); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

// Close disconnects all clients.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		conn.Close()
		delete(h.conns, conn)
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conn.Close()
	delete(h.conns, conn)
}

// Compile-time assertion that Hub implements domain.Notifier.
var _ domain.Notifier = (*Hub)(nil)
