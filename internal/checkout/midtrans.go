package checkout

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Domenick1991/airport/config"
	"github.com/Domenick1991/airport/internal/domain"
	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

type snapAPI interface {
	CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error)
}

type statusAPI interface {
	CheckTransaction(param string) (*coreapi.TransactionStatusResponse, *midtrans.Error)
}

// MidtransProvider opens Snap transactions. Midtrans has no minor units, so
// amounts are sent as they are.
type MidtransProvider struct {
	snap       snapAPI
	status     statusAPI
	successURL string
}

func NewMidtransProvider(cfg config.PaymentsConfig) *MidtransProvider {
	env := midtrans.Sandbox
	if cfg.MidtransProduction {
		env = midtrans.Production
	}

	var s snap.Client
	s.New(cfg.MidtransServerKey, env)

	var c coreapi.Client
	c.New(cfg.MidtransServerKey, env)

	return &MidtransProvider{snap: &s, status: &c, successURL: cfg.SuccessURL}
}

func (p *MidtransProvider) OpenSession(ctx context.Context, amount int64, description string) (*Session, error) {
	orderID := "airport-" + uuid.NewString()
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    orderID,
				Name:  truncate(description, 50),
				Price: amount,
				Qty:   1,
			},
		},
	}
	if p.successURL != "" {
		req.Callbacks = &snap.Callbacks{
			Finish: strings.ReplaceAll(p.successURL, SessionIDPlaceholder, orderID),
		}
	}

	resp, merr := p.snap.CreateTransaction(req)
	if merr != nil {
		return nil, fmt.Errorf("%w: midtrans create transaction: %s", domain.ErrProviderUnavailable, merr.Message)
	}
	return &Session{ID: orderID, URL: resp.RedirectURL}, nil
}

func (p *MidtransProvider) GetSessionAmount(ctx context.Context, sessionID string) (int64, error) {
	resp, merr := p.status.CheckTransaction(sessionID)
	if merr != nil {
		return 0, fmt.Errorf("%w: midtrans check transaction: %s", domain.ErrProviderUnavailable, merr.Message)
	}
	amount, err := strconv.ParseFloat(resp.GrossAmount, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: midtrans gross amount %q: %v", domain.ErrProviderUnavailable, resp.GrossAmount, err)
	}
	return int64(amount), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

var _ Provider = (*MidtransProvider)(nil)
