package admin

import (
	"context"

	"fitnflex/internal/domain/payment"
	"fitnflex/internal/domain/subscription"
	"fitnflex/internal/domain/user"
)

// UserStore is the part of the user service the admin surface drives.
type UserStore interface {
	List(ctx context.Context, f user.Filter) ([]user.User, error)
	PendingApplications(ctx context.Context) ([]user.User, error)
	Application(ctx context.Context, id string) (*user.User, error)
	Resolve(ctx context.Context, id string) error
	Reject(ctx context.Context, id, feedback string) error
	Demote(ctx context.Context, id string) error
}

type PaymentSummarizer interface {
	Summary(ctx context.Context) (*payment.Summary, error)
}

type SubscriberStore interface {
	List(ctx context.Context) ([]subscription.Subscription, error)
	Count(ctx context.Context) (int64, error)
}

var (
	_ UserStore         = (*user.Service)(nil)
	_ PaymentSummarizer = (*payment.Service)(nil)
	_ SubscriberStore   = (*subscription.Service)(nil)
)

type Service struct {
	users    UserStore
	payments PaymentSummarizer
	subs     SubscriberStore
}

func NewService(users UserStore, payments PaymentSummarizer, subs SubscriberStore) *Service {
	return &Service{users: users, payments: payments, subs: subs}
}

func (s *Service) Users(ctx context.Context) ([]user.User, error) {
	return s.users.List(ctx, user.Filter{})
}

// Trainers lists every user holding the trainer role, resolved or not.
func (s *Service) Trainers(ctx context.Context) ([]user.User, error) {
	return s.users.List(ctx, user.Filter{Role: user.RoleTrainer})
}

func (s *Service) Applications(ctx context.Context) ([]user.User, error) {
	return s.users.PendingApplications(ctx)
}

func (s *Service) Application(ctx context.Context, id string) (*user.User, error) {
	return s.users.Application(ctx, id)
}

func (s *Service) Resolve(ctx context.Context, id string) error {
	return s.users.Resolve(ctx, id)
}

func (s *Service) Reject(ctx context.Context, id, feedback string) error {
	return s.users.Reject(ctx, id, feedback)
}

func (s *Service) Demote(ctx context.Context, id string) error {
	return s.users.Demote(ctx, id)
}

// Balance builds the dashboard: payment totals, subscriber count and the
// rows the frontend chart consumes.
func (s *Service) Balance(ctx context.Context) (*Balance, error) {
	info, err := s.payments.Summary(ctx)
	if err != nil {
		return nil, err
	}
	if info.Transactions == nil {
		info.Transactions = []payment.Transaction{}
	}
	subscribers, err := s.subs.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &Balance{
		Info:        info,
		Subscribers: subscribers,
		ChartData: [][]any{
			{"users", "count"},
			{"Paid Members", info.PaidMembers},
			{"Newsletter Subscribers", subscribers},
		},
	}, nil
}

func (s *Service) Newsletter(ctx context.Context) ([]subscription.Subscription, error) {
	return s.subs.List(ctx)
}
