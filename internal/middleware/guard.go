package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"fitnflex/internal/pkg/apperr"
	"fitnflex/internal/pkg/jwt"
	"fitnflex/internal/pkg/response"
)

const emailKey = "auth_email"

// Guard inspects a request and returns a non-nil error to reject it.
type Guard func(c *gin.Context) error

// Chain runs guards left to right. The first failure aborts the request
// with the status its error kind maps to.
func Chain(guards ...Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, g := range guards {
			if err := g(c); err != nil {
				response.FromError(c, err)
				return
			}
		}
		c.Next()
	}
}

// RoleResolver returns the effective role stored for an email.
type RoleResolver interface {
	EffectiveRole(ctx context.Context, email string) (string, error)
}

// Guards builds guards bound to a token service and a role source.
type Guards struct {
	tokens   *jwt.Service
	resolver RoleResolver
}

func NewGuards(tokens *jwt.Service, resolver RoleResolver) *Guards {
	return &Guards{tokens: tokens, resolver: resolver}
}

// CurrentEmail returns the email verified by Authenticated.
func CurrentEmail(c *gin.Context) string {
	return c.GetString(emailKey)
}

// Self rejects the request unless the authenticated email equals the
// path parameter param.
func (g *Guards) Self(param string) Guard {
	return func(c *gin.Context) error {
		email := CurrentEmail(c)
		if email == "" {
			return fmt.Errorf("%w: authentication required", apperr.ErrUnauthenticated)
		}
		if !strings.EqualFold(strings.TrimSpace(c.Param(param)), email) {
			return fmt.Errorf("%w: access denied", apperr.ErrForbidden)
		}
		return nil
	}
}

// Role re-reads the caller's stored role on every request.
func (g *Guards) Role(roles ...string) Guard {
	return func(c *gin.Context) error {
		email := CurrentEmail(c)
		if email == "" {
			return fmt.Errorf("%w: authentication required", apperr.ErrUnauthenticated)
		}

		role, err := g.resolver.EffectiveRole(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return fmt.Errorf("%w: access denied", apperr.ErrForbidden)
			}
			return err
		}

		for _, r := range roles {
			if role == r {
				c.Set("role", role)
				return nil
			}
		}
		return fmt.Errorf("%w: insufficient permissions", apperr.ErrForbidden)
	}
}
