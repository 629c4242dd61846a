package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/caremixer/backend/internal/chat"
)

// ChatRequest is an incoming user message.
type ChatRequest struct {
	Sender  string `json:"sender" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ChatResponse pairs the stored user message with the bot's reply.
type ChatResponse struct {
	Reply       chat.Message `json:"reply"`
	BotResponse chat.Message `json:"bot_response"`
}

// ListChat serves GET /chat with optional sender filter and limit.
func (h *Handlers) ListChat(c *gin.Context) {
	sender := c.Query("sender")
	limit := queryInt(c, "limit", 0)

	messages := h.chatStore.List(sender, limit)
	c.JSON(http.StatusOK, messages)
}

// PostChat serves POST /chat: stores the user message and answers with a
// generated bot reply after a short, simulated thinking delay.
func (h *Handlers) PostChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message cannot be empty"})
		return
	}

	userMsg := h.chatStore.Append(req.Sender, req.Message)
	h.recordChatMessage()

	if h.replyDelay > 0 {
		time.Sleep(h.replyDelay)
	}

	botMsg := h.chatStore.Append(chat.BotSender, h.responder.Reply(req.Message))
	h.recordChatMessage()

	c.JSON(http.StatusOK, ChatResponse{Reply: userMsg, BotResponse: botMsg})
}

func (h *Handlers) recordChatMessage() {
	if h.metrics != nil {
		h.metrics.RecordChatMessage()
	}
}
