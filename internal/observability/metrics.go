package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitnflex",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fitnflex",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
	bookings = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitnflex",
		Subsystem: "booking",
		Name:      "attempts_total",
		Help:      "Booking attempts by outcome.",
	}, []string{"outcome"})
	votes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitnflex",
		Subsystem: "blog",
		Name:      "votes_total",
		Help:      "Blog votes by direction and effect.",
	}, []string{"direction", "effect"})
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, bookings, votes)
}

// Booking outcomes.
const (
	BookingSucceeded    = "succeeded"
	BookingRejected     = "rejected"
	BookingPartial      = "partial"
	BookingStoreFailure = "error"
)

// RecordBooking counts one booking attempt.
func RecordBooking(outcome string) {
	bookings.WithLabelValues(outcome).Inc()
}

// RecordVote counts one vote. effect is "changed" or "noop".
func RecordVote(direction string, changed bool) {
	effect := "noop"
	if changed {
		effect = "changed"
	}
	votes.WithLabelValues(direction, effect).Inc()
}

// HTTPMetrics records request count and latency per matched route.
func HTTPMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
