package slot

import (
	"github.com/gin-gonic/gin"

	"fitnflex/internal/middleware"
)

// RegisterRoutes registers slot routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards *middleware.Guards) {
	r.GET("/trainers/:id/slots", handler.AvailableForTrainer)

	slots := r.Group("/slots", guards.TrainerOnly())
	{
		slots.POST("", handler.Create)
		slots.GET("/trainer/:email", middleware.Chain(guards.Self("email")), handler.ByTrainer)
		slots.DELETE("/:id", handler.Delete)
		slots.GET("/members/:email", handler.Member)
	}
}
