package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentHandler_successIsPublic(t *testing.T) {
	s := newTestServer(t)
	s.payments.On("ConfirmPayment", mock.Anything, "cs_test_1").
		Return(&domain.Payment{ID: 4, OrderID: 21, Status: domain.PaymentStatusPaid, AmountCents: 6500}, nil)

	w := s.do(http.MethodGet, "/api/payments/success?session_id=cs_test_1", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"paid"`)
}

func TestPaymentHandler_successErrors(t *testing.T) {
	s := newTestServer(t)
	s.payments.On("ConfirmPayment", mock.Anything, "").
		Return(nil, domain.NewValidationError(domain.CodeInvalid, map[string]string{"session_id": "this field is required"}))
	s.payments.On("ConfirmPayment", mock.Anything, "cs_unknown").Return(nil, domain.NotFound("payment"))

	w := s.do(http.MethodGet, "/api/payments/success", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/payments/success?session_id=cs_unknown", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentHandler_cancel(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/payments/cancel", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "paid later")
}

func TestPaymentHandler_listScopesByUser(t *testing.T) {
	s := newTestServer(t)
	s.payments.On("List", mock.Anything, customer.ID, false).Return([]domain.Payment{{ID: 4, AmountCents: 1250}}, nil)
	s.payments.On("List", mock.Anything, staff.ID, true).Return([]domain.Payment{{ID: 4}, {ID: 5}}, nil)

	w := s.do(http.MethodGet, "/api/payments", customer, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []paymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "12.50", list[0].MoneyToPay)

	w = s.do(http.MethodGet, "/api/payments", staff, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	w = s.do(http.MethodGet, "/api/payments", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPaymentHandler_get(t *testing.T) {
	s := newTestServer(t)
	s.payments.On("Get", mock.Anything, int64(4), customer.ID, false).Return(&domain.Payment{ID: 4}, nil)
	s.payments.On("Get", mock.Anything, int64(5), customer.ID, false).Return(nil, domain.NotFound("payment"))
	s.payments.On("Get", mock.Anything, int64(6), customer.ID, false).Return(nil, fmt.Errorf("payment: connection reset"))

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/payments/4", customer, "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/payments/5", customer, "").Code)
	assert.Equal(t, http.StatusInternalServerError, s.do(http.MethodGet, "/api/payments/6", customer, "").Code)
}
