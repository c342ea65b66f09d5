package checkout

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/airport/config"
)

// SessionIDPlaceholder is replaced in the success URL with the provider's session id.
const SessionIDPlaceholder = "{CHECKOUT_SESSION_ID}"

// Session is a hosted checkout page opened with the payment provider.
type Session struct {
	ID  string
	URL string
}

// Provider opens hosted checkout sessions. Errors wrap domain.ErrProviderUnavailable.
type Provider interface {
	OpenSession(ctx context.Context, amount int64, description string) (*Session, error)
	GetSessionAmount(ctx context.Context, sessionID string) (int64, error)
}

// New builds the provider named by cfg.Provider.
func New(cfg config.PaymentsConfig) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "stripe":
		return NewStripeProvider(cfg), nil
	case "midtrans":
		return NewMidtransProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unknown payment provider %q", cfg.Provider)
	}
}
