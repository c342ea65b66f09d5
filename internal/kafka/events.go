package kafka

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	EventOrderCreated   = "order_created"
	EventPaymentPending = "payment_pending"
	EventPaymentPaid    = "payment_paid"
)

type OrderEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OrderID    int64     `json:"order_id"`
	UserID     int64     `json:"user_id"`
	FlightID   int64     `json:"flight_id"`
	Seats      []string  `json:"seats"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

type PaymentEvent struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	PaymentID   int64     `json:"payment_id"`
	OrderID     int64     `json:"order_id"`
	UserID      int64     `json:"user_id,omitempty"`
	SessionID   string    `json:"session_id"`
	AmountCents int64     `json:"amount_cents"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Notification is the subset of either event the notifier reads.
type Notification struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	OrderID     int64    `json:"order_id"`
	UserID      int64    `json:"user_id"`
	Seats       []string `json:"seats,omitempty"`
	AmountCents int64    `json:"amount_cents,omitempty"`
	Status      string   `json:"status"`
}

func NewEventID() string {
	return uuid.NewString()
}

// OrderKey partitions events by order so one order's events stay ordered.
func OrderKey(orderID int64) string {
	return "order-" + strconv.FormatInt(orderID, 10)
}
