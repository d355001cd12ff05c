package blog

import (
	"github.com/gin-gonic/gin"

	"fitnflex/internal/middleware"
)

// RegisterRoutes registers blog and forum routes. Voting lives in the
// vote package.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards *middleware.Guards) {
	r.GET("/blogs/latest", handler.Latest)
	r.POST("/blogs", guards.RequireRole("trainer", "admin"), handler.Create)

	r.GET("/forum", handler.Forum)
	r.GET("/forum/:id", handler.Get)
}
