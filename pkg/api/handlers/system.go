package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Pillumz/spruthub-mcp-server/pkg/api/types"
	"github.com/Pillumz/spruthub-mcp-server/pkg/spruthub"
)

// SystemHandler handles hub system endpoints
type SystemHandler struct {
	controller *spruthub.Controller
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(controller *spruthub.Controller) *SystemHandler {
	return &SystemHandler{controller: controller}
}

// Logs handles GET /logs?count=N
func (h *SystemHandler) Logs(c *gin.Context) {
	count := spruthub.DefaultLogCount
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Error:   "invalid_request",
				Message: "count must be an integer",
			})
			return
		}
		count = n
	}

	logs, err := h.controller.GetLogs(c.Request.Context(), count)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.LogsResponse{Logs: logs})
}
