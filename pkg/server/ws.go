package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/askoeller/menuboard/pkg/layout"
	"github.com/askoeller/menuboard/pkg/observability"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Displays connect from screens across the local network.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsMessage is the JSON frame pushed to connected displays.
type wsMessage struct {
	Type    string         `json:"type"`
	SlideID string         `json:"slide_id,omitempty"`
	Layout  *layout.Result `json:"layout,omitempty"`
}

// Message types pushed over the websocket.
const (
	msgLayoutUpdated = "layout_updated"
	msgBoardReloaded = "board_reloaded"
)

// client is one connected display.
type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// hub fans layout updates out to every connected display. All client set
// mutations happen on the run loop.
type hub struct {
	logger     *log.Logger
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan wsMessage
	done       chan struct{}
}

func newHub(logger *log.Logger) *hub {
	return &hub{
		logger:     logger,
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan wsMessage, 8),
		done:       make(chan struct{}),
	}
}

// run owns the client set until the server context ends.
func (h *hub) run(ctx context.Context) {
	defer close(h.done)
	hooks := observability.Server()

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				close(c.send)
				_ = c.conn.Close()
			}
			return

		case c := <-h.register:
			h.clients[c] = true
			hooks.OnClientConnect(ctx, c.id)
			h.logger.Info("display connected", "client", c.id, "clients", len(h.clients))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				hooks.OnClientDisconnect(ctx, c.id)
				h.logger.Info("display disconnected", "client", c.id, "clients", len(h.clients))
			}

		case msg := <-h.broadcast:
			data, err := json.Marshal(msg)
			if err != nil {
				continue
			}
			hooks.OnBroadcast(ctx, msg.SlideID, len(h.clients))
			for c := range h.clients {
				select {
				case c.send <- data:
				default:
					// Slow consumer, drop it.
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// publish queues a message for broadcast without blocking the caller.
func (h *hub) publish(msg wsMessage) {
	select {
	case h.broadcast <- msg:
	default:
	}
}

// handleWS upgrades the connection and hands it to the hub.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{id: uuid.NewString(), conn: conn, send: make(chan []byte, 8)}
	select {
	case s.hub.register <- c:
	case <-s.hub.done:
		_ = conn.Close()
		return
	}

	go c.writePump()
	go c.readPump(s.hub)
}

// readPump drains the connection so control frames are processed and closes
// the client on the first read error.
func (c *client) readPump(h *hub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump forwards queued frames and keeps the connection alive with pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
