package subscription

import "github.com/gin-gonic/gin"

// RegisterRoutes registers newsletter routes. The subscriber listing is
// served by the admin package.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/newsletter", handler.Subscribe)
}
