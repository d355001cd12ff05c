package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"fitnflex/internal/pkg/apperr"
)

// Authenticated requires a valid "Authorization: Bearer <token>" header
// and stores the verified email on the context.
func (g *Guards) Authenticated() Guard {
	return func(c *gin.Context) error {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			return fmt.Errorf("%w: authorization header is required", apperr.ErrUnauthenticated)
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
			return fmt.Errorf("%w: authorization header must be 'Bearer <token>'", apperr.ErrUnauthenticated)
		}

		claims, err := g.tokens.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			return err
		}

		c.Set(emailKey, claims.Email)
		return nil
	}
}

// RequireAuth is Chain(Authenticated()).
func (g *Guards) RequireAuth() gin.HandlerFunc {
	return Chain(g.Authenticated())
}
