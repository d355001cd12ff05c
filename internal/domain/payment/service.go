package payment

import (
	"context"
	"encoding/json"
	"math/big"
	"strings"
)

const defaultCurrency = "usd"

type Service struct {
	repo     Repository
	intents  IntentProvider
	currency string
}

func NewService(repo Repository, intents IntentProvider, currency string) *Service {
	if currency == "" {
		currency = defaultCurrency
	}
	return &Service{repo: repo, intents: intents, currency: strings.ToLower(currency)}
}

// MinorUnits converts a decimal price to minor currency units, truncating
// anything below one cent. Only positive prices are accepted.
func MinorUnits(price json.Number) (int64, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(price.String()))
	if !ok || r.Sign() <= 0 {
		return 0, ErrInvalidPrice
	}
	r.Mul(r, big.NewRat(100, 1))
	cents := new(big.Int).Quo(r.Num(), r.Denom())
	if !cents.IsInt64() || cents.Sign() <= 0 {
		return 0, ErrInvalidPrice
	}
	return cents.Int64(), nil
}

// CreateIntent starts a provider payment for price. Nothing is stored.
func (s *Service) CreateIntent(ctx context.Context, price json.Number) (string, error) {
	amount, err := MinorUnits(price)
	if err != nil {
		return "", err
	}
	return s.intents.CreateIntent(ctx, amount, s.currency)
}

// Record appends a payment. It is the last step of a booking.
func (s *Service) Record(ctx context.Context, p *Payment) error {
	return s.repo.Create(ctx, p)
}

func (s *Service) ListByUserEmail(ctx context.Context, email string) ([]Payment, error) {
	return s.repo.ListByUserEmail(ctx, strings.ToLower(email))
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	return s.repo.Summary(ctx)
}
