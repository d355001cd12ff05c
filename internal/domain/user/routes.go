package user

import (
	"github.com/gin-gonic/gin"

	"fitnflex/internal/middleware"
)

// RegisterRoutes registers user and trainer routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards *middleware.Guards) {
	r.POST("/users", handler.Register)
	r.GET("/users/:email/role", handler.Role)

	self := r.Group("/users/:email", guards.RequireSelf("email"))
	{
		self.GET("", handler.Get)
		self.PUT("", handler.UpdateProfile)
		self.POST("/trainer-application", handler.ApplyAsTrainer)
		self.GET("/admin", handler.RoleProbe(RoleAdmin))
		self.GET("/trainer", handler.RoleProbe(RoleTrainer))
		self.GET("/member", handler.RoleProbe(RoleMember))
	}

	trainers := r.Group("/trainers")
	{
		trainers.GET("", handler.Trainers)
		trainers.GET("/team", handler.Team)
		trainers.GET("/:id", handler.Trainer)
	}
}
