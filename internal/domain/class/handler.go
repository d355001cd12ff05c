package class

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitnflex/internal/pkg/response"
	"fitnflex/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/classes?page=&search=
func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.FromError(c, ErrInvalidPage)
		return
	}

	page, err := h.service.List(c.Request.Context(), q.Page, q.Search)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// Names handles GET /api/v1/classes/names
func (h *Handler) Names(c *gin.Context) {
	names, err := h.service.Names(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, names)
}

// Featured handles GET /api/v1/classes/featured
func (h *Handler) Featured(c *gin.Context) {
	classes, err := h.service.Featured(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, classes)
}

// Create handles POST /api/v1/classes (admin)
func (h *Handler) Create(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidJSON(c)
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	cl := &Class{Name: req.Name, Description: req.Description, Image: req.Image}
	if err := h.service.Create(c.Request.Context(), cl); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cl)
}
