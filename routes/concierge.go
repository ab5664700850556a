package routes

import (
	"github.com/gin-gonic/gin"
	conciergeControllers "github.com/nicoxroll/digrazia-bros/controllers/concierge"
	"github.com/nicoxroll/digrazia-bros/middleware"
)

// SetupConciergeRoutes registers the AI chat widget endpoints.
func SetupConciergeRoutes(r *gin.Engine, deps Deps) {
	concierge := r.Group("/concierge")
	concierge.Use(middleware.Maintenance(deps.Settings))
	{
		concierge.POST("/chat", conciergeControllers.Chat(deps.Gemini, deps.Settings))
		concierge.POST("/consult", conciergeControllers.Consult(deps.Gemini, deps.Settings))
		concierge.POST("/visualize", conciergeControllers.Visualize(deps.Gemini, deps.Catalog, deps.Settings))
		concierge.GET("/ws", conciergeControllers.ChatSocket(deps.Gemini, deps.Settings))
	}
}
