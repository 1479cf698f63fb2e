package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"streamhub/internal/events"
	"streamhub/pkg/logging"
)

type Handler struct {
	Store *Store
	Hub   *events.Hub // optional; reload events are broadcast when set
}

func NewHandler(store *Store, hub *events.Hub) *Handler {
	return &Handler{Store: store, Hub: hub}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/series", h.list)      // GET /series?page=&limit=&q=&random=
	r.GET("/series/:name", h.get) // GET /series/{name}
	r.GET("/stats", h.stats)      // GET /stats
	r.POST("/reload", h.reload)   // POST /reload
}

func (h *Handler) list(c *gin.Context) {
	page := parseInt(c.Query("page"), 0)
	limit := parseInt(c.Query("limit"), DefaultPageLimit)
	shuffle := parseBool(c.Query("random"))

	result := h.Store.Snapshot().ListSeries(page, limit, c.Query("q"), shuffle)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"total":   result.Total,
		"page":    result.Page,
		"hasMore": result.HasMore,
		"data":    result.Data,
	})
}

func (h *Handler) get(c *gin.Context) {
	name := c.Param("name")

	s, err := h.Store.Snapshot().GetSeries(name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "series not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "lookup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": s})
}

func (h *Handler) stats(c *gin.Context) {
	cat := h.Store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"series":   len(cat.Series),
		"episodes": cat.Episodes,
		"loaded":   h.Store.Loaded(),
	})
}

func (h *Handler) reload(c *gin.Context) {
	cat, err := h.Store.Reload(c.Request.Context())
	if err != nil {
		logging.Errorf("[catalog] reload from %s failed: %v", h.Store.SourceName(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "reload failed"})
		return
	}

	logging.Infof("[catalog] reloaded from %s: %d series, %d episodes",
		h.Store.SourceName(), len(cat.Series), cat.Episodes)
	if h.Hub != nil {
		h.Hub.BroadcastJSON(events.NewCatalogReload(len(cat.Series), cat.Episodes))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"series":   len(cat.Series),
		"episodes": cat.Episodes,
	})
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
