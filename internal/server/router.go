package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fitnflex/internal/database"
	"fitnflex/internal/domain/admin"
	"fitnflex/internal/domain/auth"
	"fitnflex/internal/domain/blog"
	"fitnflex/internal/domain/booking"
	"fitnflex/internal/domain/class"
	"fitnflex/internal/domain/payment"
	"fitnflex/internal/domain/slot"
	"fitnflex/internal/domain/subscription"
	"fitnflex/internal/domain/testimonial"
	"fitnflex/internal/domain/user"
	"fitnflex/internal/domain/vote"
	"fitnflex/internal/middleware"
	"fitnflex/internal/observability"
	"fitnflex/internal/pkg/jwt"
	"fitnflex/internal/pkg/response"
)

const banner = "Fit-N-Flex-Arena-server"

type Options struct {
	Store       *database.Store
	Services    *Services
	Tokens      *jwt.Service
	Logger      *slog.Logger
	CORSOrigins []string
}

// NewRouter builds the gin engine with every route mounted under /api/v1.
func NewRouter(o Options) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.ErrorLogger(o.Logger),
		middleware.RequestLogger(o.Logger),
		middleware.CORS(o.CORSOrigins),
		observability.HTTPMetrics(),
	)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, banner)
	})
	r.GET("/healthz", func(c *gin.Context) {
		if err := o.Store.Ping(c.Request.Context()); err != nil {
			response.CustomError(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", err.Error())
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok", "store": o.Store.Backend})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	svc := o.Services
	guards := middleware.NewGuards(o.Tokens, svc.Users)

	v1 := r.Group("/api/v1")
	auth.RegisterRoutes(v1, auth.NewHandler(o.Tokens))
	user.RegisterRoutes(v1, user.NewHandler(svc.Users), guards)
	class.RegisterRoutes(v1, class.NewHandler(svc.Classes), guards)
	slot.RegisterRoutes(v1, slot.NewHandler(svc.Slots), guards)
	payment.RegisterRoutes(v1, payment.NewHandler(svc.Payments), guards)
	booking.RegisterRoutes(v1, booking.NewHandler(svc.Bookings), guards)
	blog.RegisterRoutes(v1, blog.NewHandler(svc.Blogs), guards)
	vote.RegisterRoutes(v1, vote.NewHandler(svc.Votes), guards)
	subscription.RegisterRoutes(v1, subscription.NewHandler(svc.Subscriptions))
	testimonial.RegisterRoutes(v1, testimonial.NewHandler(svc.Testimonials))
	admin.RegisterRoutes(v1, admin.NewHandler(svc.Admin), guards)

	return r
}
