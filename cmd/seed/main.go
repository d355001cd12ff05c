package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"fitnflex/internal/config"
	"fitnflex/internal/database"
	"fitnflex/internal/domain/blog"
	"fitnflex/internal/domain/class"
	"fitnflex/internal/domain/payment"
	"fitnflex/internal/domain/slot"
	"fitnflex/internal/domain/testimonial"
	"fitnflex/internal/domain/user"
	"fitnflex/internal/server"
)

type trainerSeed struct {
	email, name, bio string
	experience       int
	skills           []string
	days             []string
}

var (
	classSeeds = []class.Class{
		{Name: "Yoga", Description: "Flow sessions for mobility and breath control."},
		{Name: "HIIT", Description: "Short intervals at high effort."},
		{Name: "Pilates", Description: "Core strength and posture on the mat."},
		{Name: "Boxing", Description: "Pad work, footwork and conditioning."},
		{Name: "Zumba", Description: "Dance cardio for every level."},
		{Name: "Strength", Description: "Barbell basics and progressive overload."},
		{Name: "Spin", Description: "Indoor cycling to a beat."},
	}

	trainerSeeds = []trainerSeed{
		{"ava.trainer@fitnflex.dev", "Ava Stone", "Certified yoga teacher.", 6, []string{"Yoga", "Pilates"}, []string{"Mon", "Wed"}},
		{"max.trainer@fitnflex.dev", "Max Reed", "Former amateur boxer.", 9, []string{"Boxing", "HIIT"}, []string{"Tue", "Thu"}},
		{"lia.trainer@fitnflex.dev", "Lia Park", "Strength coach.", 4, []string{"Strength", "Spin"}, []string{"Fri", "Sat"}},
	}

	blogSeeds = []blog.Blog{
		{Title: "Five mobility drills before breakfast", Author: "Ava Stone", Description: "A quick routine to loosen hips and shoulders."},
		{Title: "How to pace a HIIT block", Author: "Max Reed", Description: "Work and rest ratios that keep quality high."},
		{Title: "Progressive overload without burnout", Author: "Lia Park", Description: "Small jumps, long runway."},
	}

	testimonialSeeds = []testimonial.Testimonial{
		{Name: "Nora", Rating: 5, Review: "The coaches remember your name and your weak side."},
		{Name: "Omar", Rating: 4.5, Review: "Booking a slot takes a minute. Classes are full of energy."},
		{Name: "Yuki", Rating: 4, Review: "Great Pilates, wish there were more evening slots."},
	}
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	store, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("open store", "error", err)
		os.Exit(1)
	}
	defer store.Close(ctx)

	svc := server.NewServices(store, payment.NewIntentProvider(""), cfg.PaymentCurrency, logger)

	adminEmail := os.Getenv("SEED_ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@fitnflex.dev"
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"admin", func() error { return seedAdmin(ctx, store, svc, adminEmail) }},
		{"classes", func() error { return seedClasses(ctx, svc) }},
		{"trainers", func() error { return seedTrainers(ctx, svc) }},
		{"blogs", func() error { return seedBlogs(ctx, svc) }},
		{"testimonials", func() error { return seedTestimonials(ctx, svc) }},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			logger.Error("seed failed", "step", step.name, "error", err)
			os.Exit(1)
		}
		logger.Info("seeded", "step", step.name)
	}
}

func seedAdmin(ctx context.Context, store *database.Store, svc *server.Services, email string) error {
	if _, err := svc.Users.Register(ctx, &user.User{Email: email, Name: "Arena Admin"}); err != nil {
		return err
	}
	u, err := svc.Users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	// registration always yields a member; promotion goes straight to the store
	role := user.RoleAdmin
	return store.Users.UpdateStatus(ctx, u.ID, user.StatusChange{Role: &role})
}

func seedClasses(ctx context.Context, svc *server.Services) error {
	for _, c := range classSeeds {
		c := c
		if err := svc.Classes.Create(ctx, &c); err != nil && !errors.Is(err, class.ErrClassExists) {
			return err
		}
	}
	return nil
}

func seedTrainers(ctx context.Context, svc *server.Services) error {
	for _, t := range trainerSeeds {
		if _, err := svc.Users.Register(ctx, &user.User{Email: t.email, Name: t.name}); err != nil {
			return err
		}
		if _, err := svc.Users.ApplyAsTrainer(ctx, t.email, user.Profile{
			Biography:     t.bio,
			Experience:    t.experience,
			Skills:        t.skills,
			AvailableDays: t.days,
			AvailableTime: "07:00-11:00",
		}); err != nil {
			return err
		}
		u, err := svc.Users.GetByEmail(ctx, t.email)
		if err != nil {
			return err
		}
		if err := svc.Users.Resolve(ctx, u.ID); err != nil {
			return err
		}

		existing, err := svc.Slots.ByTrainerEmail(ctx, t.email)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			continue
		}
		slots := make([]slot.Slot, 0, len(t.skills))
		for _, skill := range t.skills {
			slots = append(slots, slot.Slot{SlotName: skill + " morning", SlotTime: "1 hour", Days: t.days, ClassName: skill})
		}
		if _, err := svc.Slots.Create(ctx, t.email, slots); err != nil {
			return err
		}
	}
	return nil
}

func seedBlogs(ctx context.Context, svc *server.Services) error {
	page, err := svc.Blogs.Forum(ctx, 0)
	if err != nil {
		return err
	}
	if page.TotalBlogs > 0 {
		return nil
	}
	base := time.Now().UTC().Add(-72 * time.Hour)
	for i, b := range blogSeeds {
		b := b
		b.PostDate = base.Add(time.Duration(i) * 24 * time.Hour)
		if err := svc.Blogs.Create(ctx, trainerSeeds[i%len(trainerSeeds)].email, &b); err != nil {
			return err
		}
	}
	return nil
}

func seedTestimonials(ctx context.Context, svc *server.Services) error {
	existing, err := svc.Testimonials.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, t := range testimonialSeeds {
		t := t
		if err := svc.Testimonials.Create(ctx, &t); err != nil {
			return err
		}
	}
	return nil
}
