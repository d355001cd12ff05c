package server

import (
	"log/slog"

	"fitnflex/internal/database"
	"fitnflex/internal/domain/admin"
	"fitnflex/internal/domain/blog"
	"fitnflex/internal/domain/booking"
	"fitnflex/internal/domain/class"
	"fitnflex/internal/domain/payment"
	"fitnflex/internal/domain/slot"
	"fitnflex/internal/domain/subscription"
	"fitnflex/internal/domain/testimonial"
	"fitnflex/internal/domain/user"
	"fitnflex/internal/domain/vote"
)

// Services holds one service per domain, wired over a single store.
type Services struct {
	Users         *user.Service
	Classes       *class.Service
	Slots         *slot.Service
	Payments      *payment.Service
	Bookings      *booking.Service
	Blogs         *blog.Service
	Votes         *vote.Service
	Subscriptions *subscription.Service
	Testimonials  *testimonial.Service
	Admin         *admin.Service
}

func NewServices(store *database.Store, intents payment.IntentProvider, currency string, logger *slog.Logger) *Services {
	users := user.NewService(store.Users)
	classes := class.NewService(store.Classes, users)
	slots := slot.NewService(store.Slots, users)
	payments := payment.NewService(store.Payments, intents, currency)
	blogs := blog.NewService(store.Blogs)
	subs := subscription.NewService(store.Subscriptions)

	return &Services{
		Users:         users,
		Classes:       classes,
		Slots:         slots,
		Payments:      payments,
		Bookings:      booking.NewService(classes, slots, payments, logger),
		Blogs:         blogs,
		Votes:         vote.NewService(store.Votes, blogs, logger),
		Subscriptions: subs,
		Testimonials:  testimonial.NewService(store.Testimonials),
		Admin:         admin.NewService(users, payments, subs),
	}
}
