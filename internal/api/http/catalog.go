package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/caremixer/backend/internal/catalog"
)

// Pagination bounds for /external_data.
const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 50
)

// ListCatalog serves GET /external_data with pagination and optional
// substring search. With a search term the whole (capped) catalog is
// filtered through the local name index; without one a single live page is
// browsed from the remote listing.
func (h *Handlers) ListCatalog(c *gin.Context) {
	page := queryInt(c, "page", defaultPage)
	if page < 1 {
		page = defaultPage
	}

	limit := queryInt(c, "limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	search := c.Query("search")

	var (
		result *catalog.Page[catalog.Entry]
		err    error
	)
	if search != "" {
		result, err = h.catalog.Search(c.Request.Context(), search, page, limit)
	} else {
		result, err = h.catalog.Browse(c.Request.Context(), page, limit)
	}
	if err != nil {
		h.catalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCatalogEntry serves GET /external_data/:name.
func (h *Handlers) GetCatalogEntry(c *gin.Context) {
	name := c.Param("name")

	entry, err := h.catalog.Lookup(c.Request.Context(), name)
	if err != nil {
		h.catalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// catalogError maps the catalog error taxonomy onto HTTP statuses.
func (h *Handlers) catalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
	case errors.Is(err, catalog.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "catalog service timed out"})
	default:
		var remote *catalog.RemoteError
		if errors.As(err, &remote) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "catalog service error"})
			return
		}
		h.logger.Error("catalog request failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch data from external catalog"})
	}
}

// queryInt parses an integer query parameter, falling back on absence or
// garbage.
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
