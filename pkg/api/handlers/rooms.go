package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pillumz/spruthub-mcp-server/pkg/api/types"
	"github.com/Pillumz/spruthub-mcp-server/pkg/spruthub"
)

// RoomsHandler handles room discovery and room-wide control endpoints
type RoomsHandler struct {
	controller *spruthub.Controller
}

// NewRoomsHandler creates a new rooms handler
func NewRoomsHandler(controller *spruthub.Controller) *RoomsHandler {
	return &RoomsHandler{controller: controller}
}

// List handles GET /rooms
func (h *RoomsHandler) List(c *gin.Context) {
	rooms, err := h.controller.ListRooms(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ListRoomsResponse{Rooms: rooms})
}

// Control handles POST /rooms/:id/control
func (h *RoomsHandler) Control(c *gin.Context) {
	roomID, ok := pathID(c)
	if !ok {
		return
	}

	req, ok := bindControlRequest(c)
	if !ok {
		return
	}

	result, err := h.controller.ControlRoom(c.Request.Context(), roomID, req.Characteristic, req.Value, req.ServiceType)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
