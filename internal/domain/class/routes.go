package class

import (
	"github.com/gin-gonic/gin"

	"fitnflex/internal/middleware"
)

// RegisterRoutes registers class routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards *middleware.Guards) {
	classes := r.Group("/classes")
	{
		classes.GET("", handler.List)
		classes.GET("/names", handler.Names)
		classes.GET("/featured", handler.Featured)
		classes.POST("", guards.AdminOnly(), handler.Create)
	}
}
