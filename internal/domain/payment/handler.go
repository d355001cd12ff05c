package payment

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

// CreateIntent handles POST /api/v1/payments/intent
func (h *Handler) CreateIntent(c *gin.Context) {
	var req IntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, ErrInvalidPrice)
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	secret, err := h.service.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, IntentResponse{ClientSecret: secret})
}

// MyBookings handles GET /api/v1/users/:email/bookings
func (h *Handler) MyBookings(c *gin.Context) {
	payments, err := h.service.ListByUserEmail(c.Request.Context(), middleware.CurrentEmail(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, payments)
}
