package admin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fitnflex/internal/middleware"
	"fitnflex/internal/pkg/apperr"
	"fitnflex/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Users handles GET /api/v1/admin/users
func (h *Handler) Users(c *gin.Context) {
	users, err := h.service.Users(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

// Trainers handles GET /api/v1/admin/trainers
func (h *Handler) Trainers(c *gin.Context) {
	trainers, err := h.service.Trainers(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, trainers)
}

// Applications handles GET /api/v1/admin/applications
func (h *Handler) Applications(c *gin.Context) {
	apps, err := h.service.Applications(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, apps)
}

// Application handles GET /api/v1/admin/applications/:id
func (h *Handler) Application(c *gin.Context) {
	u, err := h.service.Application(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

// Resolve handles PUT /api/v1/admin/users/:id/resolve
func (h *Handler) Resolve(c *gin.Context) {
	if err := h.service.Resolve(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, MessageResponse{Message: "Trainer application resolved"})
}

// Reject handles PUT /api/v1/admin/users/:id/reject
func (h *Handler) Reject(c *gin.Context) {
	var req RejectRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.InvalidJSON(c)
			return
		}
	}
	if err := h.service.Reject(c.Request.Context(), c.Param("id"), req.Feedback); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, MessageResponse{Message: "Trainer application rejected"})
}

// Demote handles PUT /api/v1/admin/users/:id/demote
func (h *Handler) Demote(c *gin.Context) {
	if err := h.service.Demote(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, MessageResponse{Message: "User demoted to member"})
}

// Balance handles GET /api/v1/admin/balance. An email query parameter, when
// sent, must name the caller.
func (h *Handler) Balance(c *gin.Context) {
	if email := c.Query("email"); email != "" && !strings.EqualFold(email, middleware.CurrentEmail(c)) {
		response.FromError(c, apperr.ErrForbidden)
		return
	}
	b, err := h.service.Balance(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

// Newsletter handles GET /api/v1/admin/newsletter
func (h *Handler) Newsletter(c *gin.Context) {
	subs, err := h.service.Newsletter(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, subs)
}
