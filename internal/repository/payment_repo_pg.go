package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	// List returns every payment when all is set, otherwise only payments of the user's orders.
	List(ctx context.Context, userID int64, all bool) ([]domain.Payment, error)
	GetByID(ctx context.Context, id, userID int64, all bool) (*domain.Payment, error)
	// ConfirmBySession marks the payment and its order paid. changed is false
	// when the payment was already paid.
	ConfirmBySession(ctx context.Context, sessionID string) (p *domain.Payment, changed bool, err error)
	ListPending(ctx context.Context, before time.Time, limit int) ([]domain.Payment, error)
}

type PGPaymentRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) PaymentRepository {
	return &PGPaymentRepository{db: db}
}

const paymentColumns = `p.id, p.order_id, p.status, p.session_id, p.session_url, p.amount_cents, p.created_at, p.updated_at`

func (r *PGPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	if p.Status == "" {
		p.Status = domain.PaymentStatusPending
	}
	err := r.db.QueryRow(ctx, `INSERT INTO payments (status, order_id, session_url, session_id, amount_cents)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`,
		p.Status, p.OrderID, p.SessionURL, p.SessionID, p.AmountCents).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return mapError(err, "payment")
}

func (r *PGPaymentRepository) List(ctx context.Context, userID int64, all bool) ([]domain.Payment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+paymentColumns+` FROM payments p
		LEFT JOIN orders o ON o.id = p.order_id
		WHERE $2 OR o.user_id = $1
		ORDER BY p.id DESC`, userID, all)
	if err != nil {
		return nil, mapError(err, "payment")
	}
	return collectPayments(rows)
}

func (r *PGPaymentRepository) GetByID(ctx context.Context, id, userID int64, all bool) (*domain.Payment, error) {
	p, err := scanPayment(r.db.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments p
		LEFT JOIN orders o ON o.id = p.order_id
		WHERE p.id = $1 AND ($3 OR o.user_id = $2)`, id, userID, all))
	if err != nil {
		return nil, mapError(err, "payment")
	}
	return p, nil
}

func (r *PGPaymentRepository) ConfirmBySession(ctx context.Context, sessionID string) (*domain.Payment, bool, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback(ctx)

	p, err := scanPayment(tx.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments p
		WHERE p.session_id = $1 FOR UPDATE`, sessionID))
	if err != nil {
		return nil, false, mapError(err, "payment")
	}

	changed := false
	if p.Status != domain.PaymentStatusPaid {
		if err := tx.QueryRow(ctx, `UPDATE payments SET status=$1, updated_at=now() WHERE id=$2 RETURNING updated_at`,
			domain.PaymentStatusPaid, p.ID).Scan(&p.UpdatedAt); err != nil {
			return nil, false, mapError(err, "payment")
		}
		p.Status = domain.PaymentStatusPaid
		changed = true
	}

	cmd, err := tx.Exec(ctx, `UPDATE orders SET status=$1 WHERE id=$2 AND status <> $1`, domain.OrderStatusPaid, p.OrderID)
	if err != nil {
		return nil, false, mapError(err, "order")
	}
	if cmd.RowsAffected() > 0 {
		changed = true
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, err
	}
	return p, changed, nil
}

func (r *PGPaymentRepository) ListPending(ctx context.Context, before time.Time, limit int) ([]domain.Payment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+paymentColumns+` FROM payments p
		WHERE p.status = $1 AND p.created_at <= $2
		ORDER BY p.created_at
		LIMIT $3`, domain.PaymentStatusPending, before, limit)
	if err != nil {
		return nil, mapError(err, "payment")
	}
	return collectPayments(rows)
}

func collectPayments(rows pgx.Rows) ([]domain.Payment, error) {
	defer rows.Close()
	list := make([]domain.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *p)
	}
	return list, rows.Err()
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	if err := row.Scan(&p.ID, &p.OrderID, &p.Status, &p.SessionID, &p.SessionURL, &p.AmountCents, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

var _ PaymentRepository = (*PGPaymentRepository)(nil)
