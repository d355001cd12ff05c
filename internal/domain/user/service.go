package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"fitnflex/internal/pkg/validator"
)

// TeamSize is how many trainers the public team listing shows.
const TeamSize = 3

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register inserts u unless its email is already known. created is false
// when an existing user was found; nothing is written in that case.
func (s *Service) Register(ctx context.Context, u *User) (created bool, err error) {
	u.Email = normalizeEmail(u.Email)
	if !validator.Email(u.Email) {
		return false, ErrInvalidEmail
	}

	if _, err := s.repo.GetByEmail(ctx, u.Email); err == nil {
		return false, nil
	} else if !errors.Is(err, ErrUserNotFound) {
		return false, err
	}

	u.ID = ""
	u.Role = RoleMember
	u.Status = StatusNone
	u.Feedback = ""
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if err := s.repo.Create(ctx, u); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, ErrUserExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.GetByEmail(ctx, normalizeEmail(email))
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// StoredRole returns the role field as stored, without the trainer
// resolution rule.
func (s *Service) StoredRole(ctx context.Context, email string) (Role, error) {
	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

// EffectiveRole satisfies middleware.RoleResolver.
func (s *Service) EffectiveRole(ctx context.Context, email string) (string, error) {
	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return string(u.EffectiveRole()), nil
}

// HasRole reports whether email acts as role. Unknown users have no role.
func (s *Service) HasRole(ctx context.Context, email string, role Role) (bool, error) {
	u, err := s.GetByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if role == RoleMember {
		return u.Role == RoleMember, nil
	}
	return u.EffectiveRole() == role, nil
}

func (s *Service) UpdateProfile(ctx context.Context, email string, p Profile) (UpsertResult, error) {
	email = normalizeEmail(email)
	if !validator.Email(email) {
		return UpsertUnchanged, ErrInvalidEmail
	}
	// status only moves through ApplyAsTrainer and admin transitions
	p.Status = StatusNone
	return s.repo.UpsertProfile(ctx, email, p)
}

// ApplyAsTrainer records the application fields and marks it pending.
func (s *Service) ApplyAsTrainer(ctx context.Context, email string, p Profile) (UpsertResult, error) {
	email = normalizeEmail(email)
	if !validator.Email(email) {
		return UpsertUnchanged, ErrInvalidEmail
	}
	if len(p.Skills) == 0 {
		return UpsertUnchanged, ErrSkillsMissing
	}
	p.Status = StatusPending
	return s.repo.UpsertProfile(ctx, email, p)
}

// ResolvedTrainers lists trainers whose application was accepted.
func (s *Service) ResolvedTrainers(ctx context.Context, limit int) ([]User, error) {
	return s.repo.List(ctx, Filter{Role: RoleTrainer, Status: StatusResolved, Limit: limit})
}

func (s *Service) Team(ctx context.Context) ([]User, error) {
	return s.ResolvedTrainers(ctx, TeamSize)
}

// Trainer returns a resolved trainer by id.
func (s *Service) Trainer(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.EffectiveRole() != RoleTrainer {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *Service) List(ctx context.Context, f Filter) ([]User, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) PendingApplications(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx, Filter{Status: StatusPending})
}

func (s *Service) Application(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// Resolve accepts a trainer application.
func (s *Service) Resolve(ctx context.Context, id string) error {
	role, status := RoleTrainer, StatusResolved
	return s.repo.UpdateStatus(ctx, id, StatusChange{Role: &role, Status: &status})
}

// Reject turns down an application with feedback for the applicant.
func (s *Service) Reject(ctx context.Context, id, feedback string) error {
	status := StatusRejected
	feedback = strings.TrimSpace(feedback)
	return s.repo.UpdateStatus(ctx, id, StatusChange{Status: &status, Feedback: &feedback})
}

// Demote turns a trainer back into a member.
func (s *Service) Demote(ctx context.Context, id string) error {
	role := RoleMember
	return s.repo.UpdateStatus(ctx, id, StatusChange{Role: &role})
}
