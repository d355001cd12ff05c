package blog

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

// Latest handles GET /api/v1/blogs/latest
func (h *Handler) Latest(c *gin.Context) {
	blogs, err := h.service.Latest(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, blogs)
}

// Forum handles GET /api/v1/forum?page=
func (h *Handler) Forum(c *gin.Context) {
	var q ForumQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.FromError(c, ErrInvalidPage)
		return
	}
	page, err := h.service.Forum(c.Request.Context(), q.Page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// Get handles GET /api/v1/forum/:id
func (h *Handler) Get(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

// Create handles POST /api/v1/blogs (trainer or admin)
func (h *Handler) Create(c *gin.Context) {
	var req CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidJSON(c)
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	b := &Blog{
		Title:       req.Title,
		Author:      req.Author,
		Image:       req.Image,
		Description: req.Description,
		Content:     req.Content,
	}
	if req.PostDate != nil {
		b.PostDate = req.PostDate.UTC()
	}
	if err := h.service.Create(c.Request.Context(), middleware.CurrentEmail(c), b); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}
