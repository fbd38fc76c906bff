package live

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/stayease/navbar/web/metrics"
)

// Hub upgrades live connections and keeps track of running sessions.
type Hub struct {
	mu       sync.Mutex
	// open connections by session id
	sessions map[string]Conn
	closed   bool

	upgrader websocket.Upgrader
	metrics  *metrics.Metrics
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewHub creates a hub. In dev mode any origin may connect; otherwise only same-origin pages.
func NewHub(m *metrics.Metrics, dev bool) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	h := &Hub{
		sessions: make(map[string]Conn),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		metrics: m,
		ctx:     ctx,
		cancel:  cancel,
	}

	if dev {
		h.upgrader.CheckOrigin = func(*http.Request) bool {
			return true
		}
	}

	return h
}

// ServeHTTP upgrades the request and runs the session until the client goes away.
// The ?path= query parameter is the route the tab is showing, ?menu=open says the
// tab currently shows the mobile panel.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	path := query.Get("path")
	if !ValidPath(path) {
		path = "/"
	}

	menuOpen := query.Get("menu") == "open"

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already answered the request
		slog.Warn("Could not upgrade live connection", "error", err)

		return
	}

	session := NewSession(conn, path, menuOpen, h.metrics)
	if !h.add(session, conn) {
		_ = conn.Close()

		return
	}

	defer h.remove(session.ID)

	if err := session.Run(h.ctx); err != nil {
		slog.Error("Live session failed", "session", session.ID, "error", err)
	}
}

func (h *Hub) add(s *Session, conn Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}

	h.sessions[s.ID] = conn

	if h.metrics != nil {
		h.metrics.ActiveSessions.Inc()
	}

	return true
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	conn, ok := h.sessions[id]
	delete(h.sessions, id)

	if ok && h.metrics != nil {
		h.metrics.ActiveSessions.Dec()
	}
	h.mu.Unlock()

	if ok {
		_ = conn.Close()
	}
}

// Count returns the number of running sessions.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.sessions)
}

// Close stops accepting sessions and closes every open connection. Each session's
// Run then returns and unmounts its navbar.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	conns := make([]Conn, 0, len(h.sessions))

	for _, c := range h.sessions {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	h.cancel()

	for _, c := range conns {
		_ = c.Close()
	}
}

func isClosed(err error) bool {
	return websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) ||
		errors.Is(err, net.ErrClosed)
}
