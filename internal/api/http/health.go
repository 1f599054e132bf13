package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const serviceName = "portfolio-backend"

// Pinger is the slice of the database pool the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	DB        string    `json:"db"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthHandler answers uptime probes. The response degrades to 503 when
// Postgres stops answering, so monitors catch a dead pool before visitors do.
type HealthHandler struct {
	version string
	db      Pinger
}

func NewHealthHandler(version string, db Pinger) *HealthHandler {
	return &HealthHandler{version: version, db: db}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	pingCtx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
	defer cancel()

	status, dbStatus := "ok", "up"
	code := http.StatusOK
	if err := h.db.Ping(pingCtx); err != nil {
		status, dbStatus = "degraded", "down"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, HealthResponse{
		Status:    status,
		Service:   serviceName,
		Version:   h.version,
		DB:        dbStatus,
		Timestamp: time.Now().UTC(),
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
