package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pillumz/spruthub-mcp-server/pkg/api/types"
	"github.com/Pillumz/spruthub-mcp-server/pkg/spruthub"
)

// ScenariosHandler handles scenario discovery and execution endpoints
type ScenariosHandler struct {
	controller *spruthub.Controller
}

// NewScenariosHandler creates a new scenarios handler
func NewScenariosHandler(controller *spruthub.Controller) *ScenariosHandler {
	return &ScenariosHandler{controller: controller}
}

// List handles GET /scenarios
func (h *ScenariosHandler) List(c *gin.Context) {
	scenarios, err := h.controller.ListScenarios(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ListScenariosResponse{
		Scenarios: scenarios,
		Count:     len(scenarios),
	})
}

// Get handles GET /scenarios/:id
func (h *ScenariosHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	scenario, err := h.controller.GetScenario(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ScenarioResponse{Scenario: scenario})
}

// Run handles POST /scenarios/:id/run
func (h *ScenariosHandler) Run(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.controller.RunScenario(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.RunScenarioResponse{Success: true, ScenarioID: id})
}
