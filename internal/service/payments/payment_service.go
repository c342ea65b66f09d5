package payments

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Domenick1991/airport/internal/checkout"
	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/kafka"
	"github.com/Domenick1991/airport/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Domenick1991/airport/internal/service/payments"

type PaymentUseCase interface {
	OpenCheckout(ctx context.Context, userID, orderID int64) (*domain.Payment, error)
	ConfirmPayment(ctx context.Context, sessionID string) (*domain.Payment, error)
	List(ctx context.Context, userID int64, staff bool) ([]domain.Payment, error)
	Get(ctx context.Context, id, userID int64, staff bool) (*domain.Payment, error)
	ReconcilePending(ctx context.Context, olderThan time.Duration, limit int) (int, error)
}

type Producer interface {
	PublishEvent(ctx context.Context, key string, payload any) error
}

type PaymentService struct {
	orders   repository.OrderRepository
	payments repository.PaymentRepository
	provider checkout.Provider
	producer Producer
	unitRate int64
	now      func() time.Time
	tracer   trace.Tracer
}

type PaymentServiceOption func(*PaymentService)

func WithProducer(p Producer) PaymentServiceOption {
	return func(s *PaymentService) {
		s.producer = p
	}
}

func WithClock(now func() time.Time) PaymentServiceOption {
	return func(s *PaymentService) {
		s.now = now
	}
}

// NewPaymentService prices orders at distance * tickets * unitRate minor units.
func NewPaymentService(
	orders repository.OrderRepository,
	payments repository.PaymentRepository,
	provider checkout.Provider,
	unitRate int64,
	opts ...PaymentServiceOption,
) *PaymentService {
	s := &PaymentService{
		orders:   orders,
		payments: payments,
		provider: provider,
		unitRate: unitRate,
		now:      time.Now,
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenCheckout opens a provider session for the order and records it as a
// pending payment. Nothing is stored when the provider fails.
func (s *PaymentService) OpenCheckout(ctx context.Context, userID, orderID int64) (payment *domain.Payment, err error) {
	ctx, span := s.tracer.Start(ctx, "payments.OpenCheckout", trace.WithAttributes(
		attribute.Int64("user.id", userID),
		attribute.Int64("order.id", orderID),
	))
	defer func() { endSpan(span, err) }()

	basis, err := s.orders.PricingBasis(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if basis.UserID != userID {
		return nil, domain.NotFound("order")
	}
	if basis.Status == domain.OrderStatusPaid {
		return nil, domain.ErrOrderAlreadyPaid
	}
	if basis.TicketCount == 0 {
		return nil, domain.NewValidationError(domain.CodeEmptyOrder, map[string]string{
			"tickets": "order has no tickets",
		})
	}

	amount := basis.Amount(s.unitRate)
	span.SetAttributes(attribute.Int64("payment.amount", amount))

	session, err := s.provider.OpenSession(ctx, amount, describe(basis))
	if err != nil {
		return nil, err
	}

	payment = &domain.Payment{
		OrderID:     orderID,
		Status:      domain.PaymentStatusPending,
		SessionID:   session.ID,
		SessionURL:  session.URL,
		AmountCents: amount,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.EventPaymentPending, payment, basis.UserID)
	return payment, nil
}

// ConfirmPayment marks the session's payment and its order paid. Confirming
// an already paid session returns it unchanged.
func (s *PaymentService) ConfirmPayment(ctx context.Context, sessionID string) (payment *domain.Payment, err error) {
	ctx, span := s.tracer.Start(ctx, "payments.ConfirmPayment", trace.WithAttributes(
		attribute.String("payment.session_id", sessionID),
	))
	defer func() { endSpan(span, err) }()

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, domain.NewValidationError(domain.CodeInvalid, map[string]string{
			"session_id": "this field is required",
		})
	}

	payment, changed, err := s.payments.ConfirmBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Bool("payment.changed", changed))
	if changed {
		s.publish(ctx, kafka.EventPaymentPaid, payment, 0)
	}
	return payment, nil
}

func (s *PaymentService) List(ctx context.Context, userID int64, staff bool) ([]domain.Payment, error) {
	return s.payments.List(ctx, userID, staff)
}

func (s *PaymentService) Get(ctx context.Context, id, userID int64, staff bool) (*domain.Payment, error) {
	return s.payments.GetByID(ctx, id, userID, staff)
}

// ReconcilePending compares pending payments older than olderThan with the
// amount the provider holds for their session and reports how many differ.
func (s *PaymentService) ReconcilePending(ctx context.Context, olderThan time.Duration, limit int) (int, error) {
	pending, err := s.payments.ListPending(ctx, s.now().Add(-olderThan), limit)
	if err != nil {
		return 0, err
	}

	mismatches := 0
	for _, p := range pending {
		amount, err := s.provider.GetSessionAmount(ctx, p.SessionID)
		if err != nil {
			log.Printf("WARNING: reconcile payment %d: %v", p.ID, err)
			continue
		}
		if amount != p.AmountCents {
			mismatches++
			log.Printf("WARNING: payment %d amount mismatch: stored %s, provider %s",
				p.ID, domain.FormatAmount(p.AmountCents), domain.FormatAmount(amount))
		}
	}
	return mismatches, nil
}

func (s *PaymentService) publish(ctx context.Context, eventType string, p *domain.Payment, userID int64) {
	if s.producer == nil {
		return
	}
	event := kafka.PaymentEvent{
		ID:          kafka.NewEventID(),
		Type:        eventType,
		PaymentID:   p.ID,
		OrderID:     p.OrderID,
		UserID:      userID,
		SessionID:   p.SessionID,
		AmountCents: p.AmountCents,
		Status:      string(p.Status),
		OccurredAt:  s.now(),
	}
	if err := s.producer.PublishEvent(ctx, kafka.OrderKey(p.OrderID), event); err != nil {
		log.Printf("WARNING: Failed to publish %s event for payment %d: %v", eventType, p.ID, err)
	}
}

func describe(b *domain.PricingBasis) string {
	return fmt.Sprintf("Order #%d: %s, %d ticket(s)", b.OrderID, b.RouteName, b.TicketCount)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

var _ PaymentUseCase = (*PaymentService)(nil)
