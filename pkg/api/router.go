package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Pillumz/spruthub-mcp-server/pkg/api/handlers"
	"github.com/Pillumz/spruthub-mcp-server/pkg/spruthub"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine     *gin.Engine
	controller *spruthub.Controller
	conn       handlers.ConnStatus
}

// NewRouter creates a new API router over the shared hub controller
func NewRouter(controller *spruthub.Controller, conn handlers.ConnStatus) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:     engine,
		controller: controller,
		conn:       conn,
	}

	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Health check at root
	healthHandler := handlers.NewHealthHandler(r.conn)
	r.engine.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.engine.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)

		accessoriesHandler := handlers.NewAccessoriesHandler(r.controller)
		accessories := v1.Group("/accessories")
		{
			accessories.GET("", accessoriesHandler.List)
			accessories.GET("/:id", accessoriesHandler.Get)
			accessories.POST("/:id/control", accessoriesHandler.Control)
		}

		roomsHandler := handlers.NewRoomsHandler(r.controller)
		rooms := v1.Group("/rooms")
		{
			rooms.GET("", roomsHandler.List)
			rooms.POST("/:id/control", roomsHandler.Control)
		}

		scenariosHandler := handlers.NewScenariosHandler(r.controller)
		scenarios := v1.Group("/scenarios")
		{
			scenarios.GET("", scenariosHandler.List)
			scenarios.GET("/:id", scenariosHandler.Get)
			scenarios.POST("/:id/run", scenariosHandler.Run)
		}

		systemHandler := handlers.NewSystemHandler(r.controller)
		v1.GET("/logs", systemHandler.Logs)
	}
}

// Engine exposes the underlying Gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
