package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pillumz/spruthub-mcp-server/pkg/api/types"
	"github.com/Pillumz/spruthub-mcp-server/pkg/hub"
	"github.com/Pillumz/spruthub-mcp-server/pkg/spruthub"
)

// writeError maps controller errors onto HTTP statuses: 404 for unknown ids,
// 400 for characteristic resolution problems, 502 for hub faults.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, spruthub.ErrNotFound):
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, spruthub.ErrNoMatch), errors.Is(err, spruthub.ErrReadOnly):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "resolution_error",
			Message: err.Error(),
		})
	case errors.Is(err, hub.ErrNotConnected), errors.Is(err, hub.ErrTimeout), errors.Is(err, hub.ErrClosed):
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:   "hub_error",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusBadGateway, types.ErrorResponse{
			Error:   "upstream_error",
			Message: err.Error(),
		})
	}
}
