package slot

import (
	"context"
	"strings"
	"time"

	"fitnflex/internal/domain/user"
)

// UserLookup finds users by email.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

type Service struct {
	repo  Repository
	users UserLookup
}

func NewService(repo Repository, users UserLookup) *Service {
	return &Service{repo: repo, users: users}
}

// Create inserts slots for the trainer identified by trainerEmail. The
// trainer reference and status are always taken from the server side.
func (s *Service) Create(ctx context.Context, trainerEmail string, slots []Slot) ([]Slot, error) {
	if len(slots) == 0 {
		return nil, ErrNoSlots
	}
	trainer, err := s.users.GetByEmail(ctx, trainerEmail)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for i := range slots {
		slots[i].ID = ""
		slots[i].ClassName = strings.TrimSpace(slots[i].ClassName)
		slots[i].Trainer = Trainer{ID: trainer.ID, Name: trainer.Name, Email: trainer.Email}
		slots[i].Status = StatusAvailable
		slots[i].BookedBy = nil
		slots[i].CreatedAt = now
	}
	if err := s.repo.InsertMany(ctx, slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Slot, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ByTrainerEmail(ctx context.Context, email string) ([]Slot, error) {
	return s.repo.ListByTrainerEmail(ctx, strings.ToLower(email))
}

func (s *Service) AvailableForTrainer(ctx context.Context, trainerID string) ([]Slot, error) {
	return s.repo.ListAvailableByTrainerID(ctx, trainerID)
}

// MarkBooked is the second step of a booking.
func (s *Service) MarkBooked(ctx context.Context, id string, by Booker) error {
	return s.repo.MarkBooked(ctx, id, by)
}

// Delete removes a slot owned by trainerEmail. Other trainers' slots are
// reported as not found.
func (s *Service) Delete(ctx context.Context, id, trainerEmail string) error {
	return s.repo.DeleteOwned(ctx, id, trainerEmail)
}

// Member returns the profile of memberEmail if they booked one of the
// trainer's slots.
func (s *Service) Member(ctx context.Context, trainerEmail, memberEmail string) (*user.User, error) {
	memberEmail = strings.ToLower(strings.TrimSpace(memberEmail))
	ok, err := s.repo.HasBooking(ctx, trainerEmail, memberEmail)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMemberNotFound
	}
	return s.users.GetByEmail(ctx, memberEmail)
}
