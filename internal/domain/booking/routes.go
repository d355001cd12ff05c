package booking

import (
	"github.com/gin-gonic/gin"

	"fitnflex/internal/middleware"
)

// RegisterRoutes registers booking routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards *middleware.Guards) {
	r.POST("/payments", guards.RequireAuth(), handler.Book)
}
