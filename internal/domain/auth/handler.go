package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fitnflex/internal/pkg/response"
	"fitnflex/internal/pkg/validator"
)

// TokenIssuer signs identity tokens.
type TokenIssuer interface {
	GenerateToken(email string) (string, error)
}

// Handler hands out access tokens. Identity proof happens at the external
// sign-in provider; this service only binds the email to a signed token.
type Handler struct {
	tokens TokenIssuer
}

func NewHandler(tokens TokenIssuer) *Handler {
	return &Handler{tokens: tokens}
}

// IssueToken handles POST /api/v1/auth/token
func (h *Handler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidJSON(c)
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validator.Email(email) {
		response.FromError(c, ErrInvalidEmail)
		return
	}

	token, err := h.tokens.GenerateToken(email)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, TokenResponse{Token: token})
}
