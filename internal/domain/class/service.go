package class

import (
	"context"
	"errors"
	"strings"
	"time"

	"fitnflex/internal/domain/user"
)

// FeaturedCount is how many classes the featured listing returns.
const FeaturedCount = 6

// TrainerSource lists trainers whose application was accepted.
type TrainerSource interface {
	ResolvedTrainers(ctx context.Context, limit int) ([]user.User, error)
}

type Service struct {
	repo     Repository
	trainers TrainerSource
}

func NewService(repo Repository, trainers TrainerSource) *Service {
	return &Service{repo: repo, trainers: trainers}
}

// List returns page (zero-based) of classes whose name contains search,
// each joined with the resolved trainers that list the class as a skill.
func (s *Service) List(ctx context.Context, page int, search string) (*Page, error) {
	if page < 0 {
		return nil, ErrInvalidPage
	}

	classes, err := s.repo.List(ctx, search, page*PageSize, PageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, search)
	if err != nil {
		return nil, err
	}

	var trainers []user.User
	if len(classes) > 0 {
		trainers, err = s.trainers.ResolvedTrainers(ctx, 0)
		if err != nil {
			return nil, err
		}
	}

	result := make([]Listed, 0, len(classes))
	for _, c := range classes {
		l := Listed{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Image:       c.Image,
			Trainers:    []TrainerRef{},
		}
		for _, t := range trainers {
			if t.HasSkill(c.Name) {
				l.Trainers = append(l.Trainers, TrainerRef{ID: t.ID, Name: t.Name, PhotoURL: t.PhotoURL})
			}
		}
		result = append(result, l)
	}
	return &Page{Result: result, MatchedTrainers: total}, nil
}

func (s *Service) Names(ctx context.Context) ([]string, error) {
	return s.repo.Names(ctx)
}

func (s *Service) Featured(ctx context.Context) ([]Class, error) {
	return s.repo.TopBooked(ctx, FeaturedCount)
}

// Create adds a class. Names are unique ignoring case.
func (s *Service) Create(ctx context.Context, c *Class) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrNameRequired
	}
	switch _, err := s.repo.GetByName(ctx, c.Name); {
	case err == nil:
		return ErrClassExists
	case !errors.Is(err, ErrClassNotFound):
		return err
	}
	c.ID = ""
	c.TotalBooking = 0
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return s.repo.Create(ctx, c)
}

// IncrementBooking is the first step of a booking.
func (s *Service) IncrementBooking(ctx context.Context, name string) error {
	return s.repo.IncrementBooking(ctx, strings.TrimSpace(name))
}
