package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Pillumz/spruthub-mcp-server/pkg/api/types"
)

// ConnStatus reports whether the hub connection is alive.
type ConnStatus interface {
	IsConnected() bool
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	conn ConnStatus
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(conn ConnStatus) *HealthHandler {
	return &HealthHandler{conn: conn}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	hubStatus := "disconnected"
	if h.conn.IsConnected() {
		hubStatus = "connected"
	}

	status := "healthy"
	httpStatus := http.StatusOK

	if hubStatus != "connected" {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, types.HealthResponse{
		Status:    status,
		Hub:       hubStatus,
		Timestamp: time.Now(),
	})
}
