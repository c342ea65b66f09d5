package domain

import (
	"strconv"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusNotPaid OrderStatus = "not paid"
)

type Order struct {
	ID        int64
	UserID    int64
	Status    OrderStatus
	CreatedAt time.Time
	Tickets   []Ticket
}

type Ticket struct {
	ID       int64
	Row      int
	Seat     string
	FlightID int64
	OrderID  int64
}

// Label renders the seat as "12C".
func (t Ticket) Label() string {
	return strconv.Itoa(t.Row) + t.Seat
}

type TicketRequest struct {
	FlightID int64
	Row      int
	Seat     string
}

// NormalizeTickets upper-cases seat letters in place.
func NormalizeTickets(tickets []TicketRequest) {
	for i := range tickets {
		tickets[i].Seat = strings.ToUpper(strings.TrimSpace(tickets[i].Seat))
	}
}

// SingleFlight returns the flight shared by every request. All tickets of an
// order must reference the same flight.
func SingleFlight(tickets []TicketRequest) (int64, error) {
	if len(tickets) == 0 {
		return 0, NewValidationError(CodeEmptyOrder, map[string]string{
			"tickets": "this list may not be empty",
		})
	}
	flightID := tickets[0].FlightID
	for _, t := range tickets[1:] {
		if t.FlightID != flightID {
			return 0, NewValidationError(CodeMixedFlight, map[string]string{
				"tickets": "All tickets in an order must refer to the same flight.",
			})
		}
	}
	return flightID, nil
}

type OrderSummary struct {
	ID              int64
	RouteLabel      string
	DepartureTime   time.Time
	NumberOfTickets int
	Status          OrderStatus
	CreatedAt       time.Time
}

type OrderDetail struct {
	OrderSummary
	AirlineName string
	Tickets     []Ticket
}

// PricingBasis carries what checkout needs to price an order.
type PricingBasis struct {
	OrderID     int64
	UserID      int64
	Status      OrderStatus
	TicketCount int
	Distance    int
	RouteName   string
}

// Amount is distance * ticket count * unit rate, in minor currency units.
func (p PricingBasis) Amount(unitRate int64) int64 {
	return int64(p.Distance) * int64(p.TicketCount) * unitRate
}
