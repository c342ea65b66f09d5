package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/kafka"
	"github.com/Domenick1991/airport/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Domenick1991/airport/internal/service/booking"

type BookingUseCase interface {
	CreateOrder(ctx context.Context, userID int64, tickets []domain.TicketRequest) (*domain.Order, error)
	ListOrders(ctx context.Context, userID int64) ([]domain.OrderSummary, error)
	GetOrder(ctx context.Context, userID, orderID int64) (*domain.OrderDetail, error)
}

// Cache holds seats while an order is being written.
type Cache interface {
	AcquireSeatLock(ctx context.Context, flightID int64, row int, seat string, ttl time.Duration) (bool, error)
	ReleaseSeatLock(ctx context.Context, flightID int64, row int, seat string) error
}

type Producer interface {
	PublishEvent(ctx context.Context, key string, payload any) error
}

type BookingService struct {
	orders   repository.OrderRepository
	flights  repository.FlightRepository
	cache    Cache
	producer Producer
	holdTTL  time.Duration
	tracer   trace.Tracer
}

type BookingServiceOption func(*BookingService)

func WithSeatHolds(cache Cache, ttl time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = cache
		s.holdTTL = ttl
	}
}

func WithProducer(p Producer) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = p
	}
}

func NewBookingService(orders repository.OrderRepository, flights repository.FlightRepository, opts ...BookingServiceOption) *BookingService {
	s := &BookingService{
		orders:  orders,
		flights: flights,
		holdTTL: 30 * time.Second,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateOrder books every requested seat on one flight or none of them.
func (s *BookingService) CreateOrder(ctx context.Context, userID int64, tickets []domain.TicketRequest) (order *domain.Order, err error) {
	ctx, span := s.tracer.Start(ctx, "booking.CreateOrder", trace.WithAttributes(
		attribute.Int64("user.id", userID),
		attribute.Int("tickets.count", len(tickets)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	domain.NormalizeTickets(tickets)
	flightID, err := domain.SingleFlight(tickets)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("flight.id", flightID))

	layout, err := s.flights.SeatLayout(ctx, flightID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError(domain.CodeInvalid, map[string]string{
				"flight": "object does not exist.",
			})
		}
		return nil, err
	}

	seen := make(map[string]struct{}, len(tickets))
	for _, t := range tickets {
		if err := layout.Validate(t.Row, t.Seat); err != nil {
			return nil, err
		}
		label := domain.Ticket{Row: t.Row, Seat: t.Seat}.Label()
		if _, dup := seen[label]; dup {
			return nil, domain.NewValidationError(domain.CodeInvalid, map[string]string{
				"tickets": "seat " + label + " is requested more than once",
			})
		}
		seen[label] = struct{}{}
	}

	held, err := s.holdSeats(ctx, flightID, tickets)
	if err != nil {
		return nil, err
	}
	defer s.releaseSeats(ctx, flightID, held)

	order = &domain.Order{UserID: userID, Status: domain.OrderStatusNotPaid, Tickets: make([]domain.Ticket, 0, len(tickets))}
	for _, t := range tickets {
		order.Tickets = append(order.Tickets, domain.Ticket{Row: t.Row, Seat: t.Seat, FlightID: flightID})
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("order.id", order.ID))

	s.publish(ctx, order)
	return order, nil
}

func (s *BookingService) ListOrders(ctx context.Context, userID int64) ([]domain.OrderSummary, error) {
	return s.orders.ListByUser(ctx, userID)
}

// GetOrder returns NotFound for orders owned by someone else.
func (s *BookingService) GetOrder(ctx context.Context, userID, orderID int64) (*domain.OrderDetail, error) {
	return s.orders.GetDetail(ctx, userID, orderID)
}

// holdSeats places advisory holds. A taken hold means another request is
// booking the seat right now; a cache failure only skips the holds.
func (s *BookingService) holdSeats(ctx context.Context, flightID int64, tickets []domain.TicketRequest) ([]domain.TicketRequest, error) {
	if s.cache == nil {
		return nil, nil
	}
	held := make([]domain.TicketRequest, 0, len(tickets))
	for _, t := range tickets {
		ok, err := s.cache.AcquireSeatLock(ctx, flightID, t.Row, t.Seat, s.holdTTL)
		if err != nil {
			log.Printf("WARNING: seat hold unavailable for flight %d: %v", flightID, err)
			s.releaseSeats(ctx, flightID, held)
			return nil, nil
		}
		if !ok {
			s.releaseSeats(ctx, flightID, held)
			return nil, domain.ErrSeatHeld
		}
		held = append(held, t)
	}
	return held, nil
}

func (s *BookingService) releaseSeats(ctx context.Context, flightID int64, held []domain.TicketRequest) {
	for _, t := range held {
		if err := s.cache.ReleaseSeatLock(ctx, flightID, t.Row, t.Seat); err != nil {
			log.Printf("WARNING: release seat hold %d%s on flight %d: %v", t.Row, t.Seat, flightID, err)
		}
	}
}

func (s *BookingService) publish(ctx context.Context, order *domain.Order) {
	if s.producer == nil {
		return
	}
	seats := make([]string, 0, len(order.Tickets))
	var flightID int64
	for _, t := range order.Tickets {
		seats = append(seats, t.Label())
		flightID = t.FlightID
	}
	event := kafka.OrderEvent{
		ID:         kafka.NewEventID(),
		Type:       kafka.EventOrderCreated,
		OrderID:    order.ID,
		UserID:     order.UserID,
		FlightID:   flightID,
		Seats:      seats,
		Status:     string(order.Status),
		OccurredAt: order.CreatedAt,
	}
	if err := s.producer.PublishEvent(ctx, kafka.OrderKey(order.ID), event); err != nil {
		log.Printf("WARNING: Failed to publish %s event for order %d: %v", event.Type, order.ID, err)
	}
}

var _ BookingUseCase = (*BookingService)(nil)
