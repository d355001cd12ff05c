package vote

import (
	"github.com/gin-gonic/gin"

	"fitnflex/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards *middleware.Guards) {
	r.PATCH("/blogs/:id/vote", guards.RequireAuth(), handler.Cast)
}
