package payment

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// IntentProvider creates a payment intent and returns its client secret.
type IntentProvider interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// StripeIntents creates PaymentIntents with automatic payment methods.
type StripeIntents struct {
	sc *client.API
}

func NewStripeIntents(secretKey string) *StripeIntents {
	return &StripeIntents{sc: client.New(secretKey, nil)}
}

func (s *StripeIntents) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := s.sc.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}

// disabledIntents is used when no Stripe key is configured.
type disabledIntents struct{}

func (disabledIntents) CreateIntent(context.Context, int64, string) (string, error) {
	return "", ErrProviderDisabled
}

// NewIntentProvider returns a Stripe provider, or one that always fails
// when secretKey is empty.
func NewIntentProvider(secretKey string) IntentProvider {
	if secretKey == "" {
		return disabledIntents{}
	}
	return NewStripeIntents(secretKey)
}
