package domain

import (
	"fmt"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusNotPaid PaymentStatus = "not paid"
)

type Payment struct {
	ID          int64
	OrderID     int64
	Status      PaymentStatus
	SessionID   string
	SessionURL  string
	AmountCents int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FormatAmount renders minor units as a two-decimal string, 1250 -> "12.50".
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

type User struct {
	ID      int64
	Email   string
	IsStaff bool
}
