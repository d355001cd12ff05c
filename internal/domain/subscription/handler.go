package subscription

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitnflex/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Subscribe handles POST /api/v1/newsletter
func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidJSON(c)
		return
	}

	sub, created, err := h.service.Subscribe(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if !created {
		response.Success(c, http.StatusOK, gin.H{"message": "Already subscribed"})
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"insertedId": sub.ID})
}
