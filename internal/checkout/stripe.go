package checkout

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airport/config"
	"github.com/Domenick1991/airport/internal/domain"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type stripeSessions interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type StripeProvider struct {
	sessions   stripeSessions
	currency   string
	successURL string
	cancelURL  string
}

func NewStripeProvider(cfg config.PaymentsConfig) *StripeProvider {
	sc := &client.API{}
	sc.Init(cfg.StripeSecretKey, nil)
	return &StripeProvider{
		sessions:   sc.CheckoutSessions,
		currency:   cfg.Currency,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
	}
}

func (p *StripeProvider) OpenSession(ctx context.Context, amount int64, description string) (*Session, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(p.successURL),
		CancelURL:  stripe.String(p.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(p.currency),
					UnitAmount: stripe.Int64(amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx

	s, err := p.sessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: stripe create session: %v", domain.ErrProviderUnavailable, err)
	}
	return &Session{ID: s.ID, URL: s.URL}, nil
}

func (p *StripeProvider) GetSessionAmount(ctx context.Context, sessionID string) (int64, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := p.sessions.Get(sessionID, params)
	if err != nil {
		return 0, fmt.Errorf("%w: stripe get session: %v", domain.ErrProviderUnavailable, err)
	}
	return s.AmountTotal, nil
}

var _ Provider = (*StripeProvider)(nil)
