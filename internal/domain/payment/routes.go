package payment

import (
	"github.com/gin-gonic/gin"

	"fitnflex/internal/middleware"
)

// RegisterRoutes registers payment routes. Booking itself lives in the
// booking package under POST /payments.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guards *middleware.Guards) {
	r.POST("/payments/intent", guards.RequireAuth(), handler.CreateIntent)
	r.GET("/users/:email/bookings", guards.RequireSelf("email"), handler.MyBookings)
}
