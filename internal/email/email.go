package email

import (
	"context"
	"fmt"
	"log"

	"github.com/Domenick1991/airport/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, n kafka.Notification) error {
	log.Print(Compose(n))
	return nil
}

// Compose renders the notification line sent to the order owner.
func Compose(n kafka.Notification) string {
	switch n.Type {
	case kafka.EventOrderCreated:
		return fmt.Sprintf("send email to user %d: order %d created, seats %v", n.UserID, n.OrderID, n.Seats)
	case kafka.EventPaymentPending:
		return fmt.Sprintf("send email to user %d: order %d awaiting payment", n.UserID, n.OrderID)
	case kafka.EventPaymentPaid:
		return fmt.Sprintf("send email about order %d: payment received", n.OrderID)
	default:
		return fmt.Sprintf("send email about order %d: %s", n.OrderID, n.Type)
	}
}
