package slot

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitnflex/internal/middleware"
	"fitnflex/internal/pkg/response"
	"fitnflex/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/v1/slots (trainer)
func (h *Handler) Create(c *gin.Context) {
	var req CreateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidJSON(c)
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	slots, err := h.service.Create(c.Request.Context(), middleware.CurrentEmail(c), req.toSlots())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, slots)
}

// ByTrainer handles GET /api/v1/slots/trainer/:email
func (h *Handler) ByTrainer(c *gin.Context) {
	slots, err := h.service.ByTrainerEmail(c.Request.Context(), middleware.CurrentEmail(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, slots)
}

// AvailableForTrainer handles GET /api/v1/trainers/:id/slots
func (h *Handler) AvailableForTrainer(c *gin.Context) {
	slots, err := h.service.AvailableForTrainer(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, slots)
}

// Delete handles DELETE /api/v1/slots/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), middleware.CurrentEmail(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deletedCount": 1})
}

// Member handles GET /api/v1/slots/members/:email
func (h *Handler) Member(c *gin.Context) {
	u, err := h.service.Member(c.Request.Context(), middleware.CurrentEmail(c), c.Param("email"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}
