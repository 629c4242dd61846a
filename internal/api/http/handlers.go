package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/caremixer/backend/internal/catalog"
	"github.com/caremixer/backend/internal/chat"
	"github.com/caremixer/backend/internal/infrastructure/monitoring"
	"github.com/caremixer/backend/internal/timeline"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	catalog    *catalog.Service
	timeline   *timeline.Store
	chatStore  *chat.Store
	responder  *chat.Responder
	replyDelay time.Duration
	metrics    *monitoring.Metrics
	logger     *zap.Logger
}

// NewHandlers creates a new handler set.
func NewHandlers(
	catalogSvc *catalog.Service,
	timelineStore *timeline.Store,
	chatStore *chat.Store,
	responder *chat.Responder,
	replyDelay time.Duration,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		catalog:    catalogSvc,
		timeline:   timelineStore,
		chatStore:  chatStore,
		responder:  responder,
		replyDelay: replyDelay,
		metrics:    metrics,
		logger:     logger,
	}
}

// Root describes the API.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the CareMixer API!",
		"endpoints": gin.H{
			"/timeline":      "Get timeline data",
			"/external_data": "Fetch external catalog data",
			"/chat":          "Get and send chat messages",
			"/chat/stream":   "WebSocket chat stream",
		},
	})
}

// Health reports component status.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"catalog":  h.catalog.Stats(),
		"timeline": gin.H{"events": h.timeline.Len()},
		"chat":     gin.H{"messages": h.chatStore.Len()},
	})
}
