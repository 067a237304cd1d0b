// Package realtime maintains the set of connected dashboard viewer sessions
// and pushes alert events to all of them. Delivery is live-tail only: no
// history is replayed to a newly joined session, and a full session buffer
// drops the event rather than blocking the sender.
package realtime

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"suraksha/internal/alert"
	"suraksha/internal/platform/metrics"
)

// EventPanicAlert is the wire event name dashboards subscribe to.
const EventPanicAlert = "panic_alert"

// envelope wraps a payload with its event name, mirroring the pub/sub channel
// of the demo dashboards.
type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub tracks open sessions and implements alert.Broadcaster. The session set
// is mutated only by session open/close and read only during broadcast.
type Hub struct {
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu       sync.RWMutex
	sessions map[*Session]struct{}
	closed   bool

	upgrader websocket.Upgrader
}

// NewHub creates a hub. metrics may be nil.
func NewHub(logger *slog.Logger, m *metrics.Metrics) *Hub {
	return &Hub{
		logger:   logger,
		metrics:  m,
		sessions: make(map[*Session]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Demo deployment serves dashboards from arbitrary dev origins.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// HandleWebSocket upgrades the request and runs the session until the peer
// disconnects.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	s := &Session{
		id:   "s_" + uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		hub:  h,
	}
	h.register(s)
	go s.writePump()
	go s.readPump()
}

// BroadcastPanic fans the event out to every currently open session,
// best-effort and at-most-once per session.
func (h *Hub) BroadcastPanic(event alert.Event) {
	data, err := json.Marshal(envelope{Event: EventPanicAlert, Data: event})
	if err != nil {
		h.logger.Error("broadcast payload marshal failed", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.sessions {
		select {
		case s.send <- data:
			if h.metrics != nil {
				h.metrics.BroadcastsDelivered.Inc()
			}
		default:
			// Slow consumer: drop rather than stall the fan-out.
			if h.metrics != nil {
				h.metrics.BroadcastsDropped.Inc()
			}
			h.logger.Warn("broadcast dropped, session buffer full", "session_id", s.id)
		}
	}
}

// SessionCount returns the number of open sessions.
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Close terminates every open session. New upgrades after Close are rejected
// at registration.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	sessions := make([]*Session, 0, len(h.sessions))
	for s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.mu.Unlock()

	for _, s := range sessions {
		_ = s.conn.Close()
	}
}

func (h *Hub) register(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		_ = s.conn.Close()
		return
	}
	h.sessions[s] = struct{}{}
	if h.metrics != nil {
		h.metrics.OpenSessions.Set(float64(len(h.sessions)))
	}
	h.logger.Info("viewer session opened", "session_id", s.id, "sessions", len(h.sessions))
}

func (h *Hub) unregister(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.sessions[s]; !ok {
		return
	}
	delete(h.sessions, s)
	close(s.send)
	if h.metrics != nil {
		h.metrics.OpenSessions.Set(float64(len(h.sessions)))
	}
	h.logger.Info("viewer session closed", "session_id", s.id, "sessions", len(h.sessions))
}
