package testimonial

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

// List handles GET /api/v1/testimonials
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/testimonials", handler.List)
}
