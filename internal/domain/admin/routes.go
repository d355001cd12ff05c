package admin

import (
	"github.com/gin-gonic/gin"

	"fitnflex/internal/middleware"
)

// RegisterRoutes mounts the admin dashboard. Class creation lives with the
// class package.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards *middleware.Guards) {
	admin := r.Group("/admin", guards.AdminOnly())
	{
		admin.GET("/users", handler.Users)
		admin.GET("/trainers", handler.Trainers)
		admin.GET("/applications", handler.Applications)
		admin.GET("/applications/:id", handler.Application)

		admin.PUT("/users/:id/resolve", handler.Resolve)
		admin.PUT("/users/:id/reject", handler.Reject)
		admin.PUT("/users/:id/demote", handler.Demote)

		admin.GET("/balance", handler.Balance)
		admin.GET("/newsletter", handler.Newsletter)
	}
}
