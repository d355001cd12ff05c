package middleware

import "github.com/gin-gonic/gin"

// RequireRole authenticates the caller and checks their stored role.
func (g *Guards) RequireRole(roles ...string) gin.HandlerFunc {
	return Chain(g.Authenticated(), g.Role(roles...))
}

// RequireSelf authenticates the caller and matches them against param.
func (g *Guards) RequireSelf(param string) gin.HandlerFunc {
	return Chain(g.Authenticated(), g.Self(param))
}

// AdminOnly requires the admin role.
func (g *Guards) AdminOnly() gin.HandlerFunc {
	return g.RequireRole("admin")
}

// TrainerOnly requires a resolved trainer.
func (g *Guards) TrainerOnly() gin.HandlerFunc {
	return g.RequireRole("trainer")
}
