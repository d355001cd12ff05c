package booking

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"fitnflex/internal/domain/payment"
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

// Book handles POST /api/v1/payments. The payer is always the caller.
func (h *Handler) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidJSON(c)
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	email := middleware.CurrentEmail(c)
	if req.User.Email != "" && !strings.EqualFold(strings.TrimSpace(req.User.Email), email) {
		response.FromError(c, ErrPayerMismatch)
		return
	}

	var price float64
	if req.Price != "" {
		p, err := req.Price.Float64()
		if err != nil || p < 0 {
			response.FromError(c, ErrInvalidPrice)
			return
		}
		price = p
	}

	var date time.Time
	if req.Date != nil {
		date = req.Date.UTC()
	}

	p, err := h.service.Book(c.Request.Context(), Request{
		ClassName:     req.Class.ClassName,
		SlotID:        req.Class.SlotID,
		SlotName:      req.Class.SlotName,
		TrainerID:     req.Class.TrainerID,
		Payer:         payment.Payer{Name: req.User.Name, Email: email},
		Price:         price,
		TransactionID: req.TransactionID,
		Date:          date,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p)
}
