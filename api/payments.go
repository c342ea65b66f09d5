package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/service/payments"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service payments.PaymentUseCase
}

func NewPaymentHandler(service payments.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// RegisterPublic mounts the provider redirect targets, which carry no identity.
func (h *PaymentHandler) RegisterPublic(router *gin.RouterGroup) {
	router.GET("/success", h.success)
	router.GET("/cancel", h.cancel)
}

func (h *PaymentHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
}

type paymentResponse struct {
	ID         int64     `json:"id"`
	Status     string    `json:"status"`
	Order      int64     `json:"order"`
	SessionURL string    `json:"session_url"`
	SessionID  string    `json:"session_id"`
	MoneyToPay string    `json:"money_to_pay"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toPayment(p domain.Payment) paymentResponse {
	return paymentResponse{
		ID:         p.ID,
		Status:     string(p.Status),
		Order:      p.OrderID,
		SessionURL: p.SessionURL,
		SessionID:  p.SessionID,
		MoneyToPay: domain.FormatAmount(p.AmountCents),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (h *PaymentHandler) list(c *gin.Context) {
	user := currentUser(c)
	list, err := h.service.List(c.Request.Context(), user.ID, user.IsStaff)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, toPayment))
}

func (h *PaymentHandler) get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	user := currentUser(c)
	p, err := h.service.Get(c.Request.Context(), id, user.ID, user.IsStaff)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPayment(*p))
}

func (h *PaymentHandler) success(c *gin.Context) {
	p, err := h.service.ConfirmPayment(c.Request.Context(), c.Query("session_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment was successful", "payment": toPayment(*p)})
}

func (h *PaymentHandler) cancel(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Payment can be paid later. The session is available for 24 hours."})
}
