package vote

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fitnflex/internal/middleware"
	"fitnflex/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Cast handles PATCH /api/v1/blogs/:id/vote
func (h *Handler) Cast(c *gin.Context) {
	var req CastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidJSON(c)
		return
	}

	voter := middleware.CurrentEmail(c)
	if req.Email != "" && !strings.EqualFold(strings.TrimSpace(req.Email), voter) {
		response.FromError(c, ErrVoterMismatch)
		return
	}

	changed, err := h.service.Cast(c.Request.Context(), c.Param("id"), voter, Direction(req.Vote))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, CastResponse{Changed: changed})
}
