package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/service/booking"
	"github.com/Domenick1991/airport/internal/service/payments"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	booking  booking.BookingUseCase
	payments payments.PaymentUseCase
}

func NewOrderHandler(booking booking.BookingUseCase, payments payments.PaymentUseCase) *OrderHandler {
	return &OrderHandler{booking: booking, payments: payments}
}

func (h *OrderHandler) Register(router *gin.RouterGroup) {
	router.GET("/orders", h.list)
	router.POST("/orders", h.create)
	router.GET("/orders/:id", h.get)
	router.POST("/orders/:id/checkout", h.checkout)
}

type ticketRequest struct {
	Row    int    `json:"row"`
	Seat   string `json:"seat"`
	Flight int64  `json:"flight" binding:"required"`
}

type createOrderRequest struct {
	Tickets []ticketRequest `json:"tickets" binding:"dive"`
}

type ticketResponse struct {
	ID     int64  `json:"id"`
	Row    int    `json:"row"`
	Seat   string `json:"seat"`
	Flight int64  `json:"flight"`
}

type orderResponse struct {
	ID        int64            `json:"id"`
	Status    string           `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	Tickets   []ticketResponse `json:"tickets"`
}

type orderListResponse struct {
	ID              int64      `json:"id"`
	Route           string     `json:"route"`
	DepartureTime   *time.Time `json:"departure_time"`
	NumberOfTickets int        `json:"number_of_tickets"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
}

type orderDetailResponse struct {
	orderListResponse
	Airline string           `json:"airline"`
	Tickets []ticketResponse `json:"tickets"`
}

func toTicket(t domain.Ticket) ticketResponse {
	return ticketResponse{ID: t.ID, Row: t.Row, Seat: t.Seat, Flight: t.FlightID}
}

func toOrderList(o domain.OrderSummary) orderListResponse {
	resp := orderListResponse{
		ID:              o.ID,
		Route:           o.RouteLabel,
		NumberOfTickets: o.NumberOfTickets,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
	}
	if !o.DepartureTime.IsZero() {
		dep := o.DepartureTime
		resp.DepartureTime = &dep
	}
	return resp
}

func (h *OrderHandler) list(c *gin.Context) {
	list, err := h.booking.ListOrders(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, toOrderList))
}

func (h *OrderHandler) get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	order, err := h.booking.GetOrder(c.Request.Context(), currentUser(c).ID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderDetailResponse{
		orderListResponse: toOrderList(order.OrderSummary),
		Airline:           order.AirlineName,
		Tickets:           mapSlice(order.Tickets, toTicket),
	})
}

func (h *OrderHandler) create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	tickets := make([]domain.TicketRequest, 0, len(req.Tickets))
	for _, t := range req.Tickets {
		tickets = append(tickets, domain.TicketRequest{FlightID: t.Flight, Row: t.Row, Seat: t.Seat})
	}

	order, err := h.booking.CreateOrder(c.Request.Context(), currentUser(c).ID, tickets)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderResponse{
		ID:        order.ID,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
		Tickets:   mapSlice(order.Tickets, toTicket),
	})
}

// checkout opens a payment session for the order and returns the payment
// carrying the hosted checkout URL.
func (h *OrderHandler) checkout(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	payment, err := h.payments.OpenCheckout(c.Request.Context(), currentUser(c).ID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPayment(*payment))
}
