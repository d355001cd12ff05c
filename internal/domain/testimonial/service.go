package testimonial

import (
	"context"
	"strings"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Testimonial, error) {
	return s.repo.List(ctx)
}

// Create stores a testimonial. There is no HTTP route for it; the seeder
// is the only writer.
func (s *Service) Create(ctx context.Context, t *Testimonial) error {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return ErrNameRequired
	}
	if t.Rating < 0 || t.Rating > 5 {
		return ErrInvalidRating
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	return s.repo.Create(ctx, t)
}
