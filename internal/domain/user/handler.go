package user

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

// Register handles POST /api/v1/users. Registering a known email is not
// an error; it reports the existing account and inserts nothing.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidJSON(c)
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	u := &User{Email: req.Email, Name: req.Name, PhotoURL: req.PhotoURL}
	created, err := h.service.Register(c.Request.Context(), u)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if !created {
		response.Success(c, http.StatusOK, RegisterResponse{Message: "user already exists"})
		return
	}
	response.Success(c, http.StatusCreated, RegisterResponse{InsertedID: &u.ID})
}

// Role handles GET /api/v1/users/:email/role
func (h *Handler) Role(c *gin.Context) {
	role, err := h.service.StoredRole(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"role": role})
}

// Get handles GET /api/v1/users/:email
func (h *Handler) Get(c *gin.Context) {
	u, err := h.service.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}

// UpdateProfile handles PUT /api/v1/users/:email
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidJSON(c)
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	res, err := h.service.UpdateProfile(c.Request.Context(), middleware.CurrentEmail(c), req.toProfile())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, MessageResponse{Message: upsertMessage(res)})
}

// ApplyAsTrainer handles POST /api/v1/users/:email/trainer-application
func (h *Handler) ApplyAsTrainer(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidJSON(c)
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	if _, err := h.service.ApplyAsTrainer(c.Request.Context(), middleware.CurrentEmail(c), req.toProfile()); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, MessageResponse{Message: "Application submitted"})
}

func upsertMessage(res UpsertResult) string {
	switch res {
	case UpsertCreated:
		return "User created successfully"
	case UpsertUpdated:
		return "User updated successfully"
	default:
		return "No changes made to the user"
	}
}

// RoleProbe answers GET /api/v1/users/:email/{admin,trainer,member} with
// {"<role>": bool}.
func (h *Handler) RoleProbe(role Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := h.service.HasRole(c.Request.Context(), middleware.CurrentEmail(c), role)
		if err != nil {
			response.FromError(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{string(role): ok})
	}
}

// Trainers handles GET /api/v1/trainers
func (h *Handler) Trainers(c *gin.Context) {
	trainers, err := h.service.ResolvedTrainers(c.Request.Context(), 0)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, trainers)
}

// Team handles GET /api/v1/trainers/team
func (h *Handler) Team(c *gin.Context) {
	trainers, err := h.service.Team(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	out := make([]TeamMember, 0, len(trainers))
	for _, t := range trainers {
		out = append(out, toTeamMember(t))
	}
	response.Success(c, http.StatusOK, out)
}

// Trainer handles GET /api/v1/trainers/:id
func (h *Handler) Trainer(c *gin.Context) {
	t, err := h.service.Trainer(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t)
}
