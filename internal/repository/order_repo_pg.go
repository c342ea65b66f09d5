package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository interface {
	// Create stores the order and all of its tickets in one transaction.
	Create(ctx context.Context, order *domain.Order) error
	ListByUser(ctx context.Context, userID int64) ([]domain.OrderSummary, error)
	GetDetail(ctx context.Context, userID, orderID int64) (*domain.OrderDetail, error)
	PricingBasis(ctx context.Context, orderID int64) (*domain.PricingBasis, error)
}

type PGOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PGOrderRepository{db: db}
}

func (r *PGOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if order.Status == "" {
		order.Status = domain.OrderStatusNotPaid
	}
	if err := tx.QueryRow(ctx, `INSERT INTO orders (user_id, status) VALUES ($1, $2) RETURNING id, created_at`,
		order.UserID, order.Status).Scan(&order.ID, &order.CreatedAt); err != nil {
		return mapError(err, "order")
	}

	for i := range order.Tickets {
		t := &order.Tickets[i]
		t.OrderID = order.ID
		if err := tx.QueryRow(ctx, `INSERT INTO tickets (row_no, seat, flight_id, order_id) VALUES ($1, $2, $3, $4) RETURNING id`,
			t.Row, t.Seat, t.FlightID, t.OrderID).Scan(&t.ID); err != nil {
			return mapError(err, "ticket")
		}
	}

	return tx.Commit(ctx)
}

// Tickets of one order share a flight, so min() picks that flight's columns.
const orderSummarySelect = `SELECT o.id, o.status, o.created_at, count(t.id),
		COALESCE(min(src.iata_code), ''), COALESCE(min(src.nearest_city), ''),
		COALESCE(min(dst.iata_code), ''), COALESCE(min(dst.nearest_city), ''),
		min(f.departure_time), COALESCE(min(al.name), '')
	FROM orders o
	LEFT JOIN tickets t ON t.order_id = o.id
	LEFT JOIN flights f ON f.id = t.flight_id
	LEFT JOIN airlines al ON al.id = f.airline_id
	LEFT JOIN routes r ON r.id = f.route_id
	LEFT JOIN airports src ON src.id = r.source_id
	LEFT JOIN airports dst ON dst.id = r.destination_id`

func (r *PGOrderRepository) ListByUser(ctx context.Context, userID int64) ([]domain.OrderSummary, error) {
	rows, err := r.db.Query(ctx, orderSummarySelect+`
		WHERE o.user_id = $1
		GROUP BY o.id
		ORDER BY o.created_at DESC, o.id DESC`, userID)
	if err != nil {
		return nil, mapError(err, "order")
	}
	defer rows.Close()

	list := make([]domain.OrderSummary, 0)
	for rows.Next() {
		s, _, err := scanOrderSummary(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *s)
	}
	return list, rows.Err()
}

func (r *PGOrderRepository) GetDetail(ctx context.Context, userID, orderID int64) (*domain.OrderDetail, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	summary, airline, err := scanOrderSummary(tx.QueryRow(ctx, orderSummarySelect+`
		WHERE o.id = $1 AND o.user_id = $2
		GROUP BY o.id`, orderID, userID))
	if err != nil {
		return nil, mapError(err, "order")
	}
	detail := &domain.OrderDetail{OrderSummary: *summary, AirlineName: airline, Tickets: []domain.Ticket{}}

	rows, err := tx.Query(ctx, `SELECT id, row_no, seat, flight_id, order_id FROM tickets
		WHERE order_id = $1 ORDER BY row_no, seat`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.Row, &t.Seat, &t.FlightID, &t.OrderID); err != nil {
			return nil, err
		}
		detail.Tickets = append(detail.Tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	return detail, tx.Commit(ctx)
}

func (r *PGOrderRepository) PricingBasis(ctx context.Context, orderID int64) (*domain.PricingBasis, error) {
	var (
		p        domain.PricingBasis
		src, dst string
	)
	err := r.db.QueryRow(ctx, `SELECT o.id, o.user_id, o.status, count(t.id), COALESCE(max(r.distance), 0),
			COALESCE(min(src.iata_code), ''), COALESCE(min(dst.iata_code), '')
		FROM orders o
		LEFT JOIN tickets t ON t.order_id = o.id
		LEFT JOIN flights f ON f.id = t.flight_id
		LEFT JOIN routes r ON r.id = f.route_id
		LEFT JOIN airports src ON src.id = r.source_id
		LEFT JOIN airports dst ON dst.id = r.destination_id
		WHERE o.id = $1
		GROUP BY o.id`, orderID).
		Scan(&p.OrderID, &p.UserID, &p.Status, &p.TicketCount, &p.Distance, &src, &dst)
	if err != nil {
		return nil, mapError(err, "order")
	}
	p.RouteName = src + " - " + dst
	return &p, nil
}

func scanOrderSummary(row pgx.Row) (*domain.OrderSummary, string, error) {
	var (
		s         domain.OrderSummary
		route     domain.Route
		departure *time.Time
		airline   string
	)
	err := row.Scan(&s.ID, &s.Status, &s.CreatedAt, &s.NumberOfTickets,
		&route.Source.IATACode, &route.Source.NearestCity,
		&route.Destination.IATACode, &route.Destination.NearestCity,
		&departure, &airline)
	if err != nil {
		return nil, "", err
	}
	if s.NumberOfTickets > 0 {
		s.RouteLabel = route.Label()
	}
	if departure != nil {
		s.DepartureTime = *departure
	}
	return &s, airline, nil
}

var _ OrderRepository = (*PGOrderRepository)(nil)
