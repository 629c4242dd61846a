// Package ws streams the chat conversation over a WebSocket connection.
package ws

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/caremixer/backend/internal/chat"
	"github.com/caremixer/backend/internal/infrastructure/monitoring"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS policy is enforced on the HTTP surface
	},
}

// Inbound is a client-to-server frame.
type Inbound struct {
	Type    string `json:"type"`
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// Outbound is a server-to-client frame.
type Outbound struct {
	Type    string        `json:"type"`
	Text    string        `json:"text,omitempty"`
	Message *chat.Message `json:"message,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// Handler manages WebSocket chat connections.
type Handler struct {
	store      *chat.Store
	responder  *chat.Responder
	replyDelay time.Duration
	metrics    *monitoring.Metrics
	logger     *zap.Logger
}

// NewHandler creates a WebSocket chat handler.
func NewHandler(store *chat.Store, responder *chat.Responder, replyDelay time.Duration, metrics *monitoring.Metrics, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		store:      store,
		responder:  responder,
		replyDelay: replyDelay,
		metrics:    metrics,
		logger:     logger,
	}
}

// HandleConnection upgrades the request and services chat frames until the
// client disconnects.
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	if h.metrics != nil {
		h.metrics.WSConnected()
		defer h.metrics.WSDisconnected()
	}

	h.send(conn, Outbound{Type: "system", Text: "Connected to CareMixer chat"})

	for {
		var msg Inbound
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("websocket read error", zap.Error(err))
			}
			return
		}

		switch msg.Type {
		case "chat":
			h.handleChat(conn, msg)
		case "ping":
			h.send(conn, Outbound{Type: "pong"})
		default:
			h.send(conn, Outbound{Type: "error", Error: "unknown message type"})
		}
	}
}

func (h *Handler) handleChat(conn *websocket.Conn, msg Inbound) {
	if msg.Message == "" {
		h.send(conn, Outbound{Type: "error", Error: "message cannot be empty"})
		return
	}

	sender := msg.Sender
	if sender == "" {
		sender = "User"
	}

	userMsg := h.store.Append(sender, msg.Message)
	h.recordMessage()
	h.send(conn, Outbound{Type: "message", Message: &userMsg})

	if h.replyDelay > 0 {
		time.Sleep(h.replyDelay)
	}

	botMsg := h.store.Append(chat.BotSender, h.responder.Reply(msg.Message))
	h.recordMessage()
	h.send(conn, Outbound{Type: "message", Message: &botMsg})
}

func (h *Handler) send(conn *websocket.Conn, out Outbound) {
	if err := conn.WriteJSON(out); err != nil {
		h.logger.Debug("websocket write error", zap.Error(err))
	}
}

func (h *Handler) recordMessage() {
	if h.metrics != nil {
		h.metrics.RecordChatMessage()
	}
}
