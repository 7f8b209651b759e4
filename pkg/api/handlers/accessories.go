package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Pillumz/spruthub-mcp-server/pkg/api/types"
	"github.com/Pillumz/spruthub-mcp-server/pkg/spruthub"
)

// AccessoriesHandler handles accessory discovery and control endpoints
type AccessoriesHandler struct {
	controller *spruthub.Controller
}

// NewAccessoriesHandler creates a new accessories handler
func NewAccessoriesHandler(controller *spruthub.Controller) *AccessoriesHandler {
	return &AccessoriesHandler{controller: controller}
}

// List handles GET /accessories
func (h *AccessoriesHandler) List(c *gin.Context) {
	accessories, err := h.controller.ListAccessories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ListAccessoriesResponse{
		Accessories: accessories,
		Count:       len(accessories),
	})
}

// Get handles GET /accessories/:id
func (h *AccessoriesHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	accessory, err := h.controller.GetAccessory(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.AccessoryResponse{Accessory: accessory})
}

// Control handles POST /accessories/:id/control
func (h *AccessoriesHandler) Control(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	req, ok := bindControlRequest(c)
	if !ok {
		return
	}

	result, err := h.controller.ControlAccessory(c.Request.Context(), id, req.Characteristic, req.Value, req.ServiceType)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// pathID parses the :id path parameter, answering 400 on garbage.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "id must be an integer",
		})
		return 0, false
	}
	return id, true
}

// bindControlRequest decodes and validates a control request body.
func bindControlRequest(c *gin.Context) (*types.ControlRequest, bool) {
	var req types.ControlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "characteristic is required",
		})
		return nil, false
	}
	if req.Value == nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "value is required",
		})
		return nil, false
	}
	return &req, true
}
