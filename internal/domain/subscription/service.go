package subscription

import (
	"context"
	"errors"
	"strings"
	"time"

	"fitnflex/internal/pkg/validator"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Subscribe adds email to the newsletter. created is false when the
// address was already subscribed.
func (s *Service) Subscribe(ctx context.Context, name, email string) (sub *Subscription, created bool, err error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !validator.Email(email) {
		return nil, false, ErrInvalidEmail
	}
	sub = &Subscription{Name: strings.TrimSpace(name), Email: email, CreatedAt: time.Now().UTC()}
	if err := s.repo.Create(ctx, sub); err != nil {
		if errors.Is(err, ErrAlreadySubscribed) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return sub, true, nil
}

func (s *Service) List(ctx context.Context) ([]Subscription, error) {
	return s.repo.List(ctx)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
