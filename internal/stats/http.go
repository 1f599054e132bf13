package stats

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Collector interface {
	Collect(ctx context.Context) (*Stats, error)
}

type Handler struct {
	collector Collector
}

func NewHandler(collector Collector) *Handler {
	return &Handler{collector: collector}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/stats", h.get)
}

func (h *Handler) get(c *gin.Context) {
	s, err := h.collector.Collect(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve statistics"})
		return
	}
	c.JSON(http.StatusOK, s)
}
