package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/caremixer/backend/internal/timeline"
)

// ListTimeline serves GET /timeline with optional type filter and limit.
func (h *Handlers) ListTimeline(c *gin.Context) {
	typ := timeline.EventType(c.Query("type"))
	limit := queryInt(c, "limit", timeline.DefaultLimit)

	events := h.timeline.List(typ, limit)
	c.JSON(http.StatusOK, events)
}

// GetTimelineEvent serves GET /timeline/:id.
func (h *Handlers) GetTimelineEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event id must be an integer"})
		return
	}

	event, err := h.timeline.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "timeline event not found"})
		return
	}

	c.JSON(http.StatusOK, event)
}
