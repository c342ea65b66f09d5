package api

import (
	"context"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context, filter domain.FlightFilter) ([]domain.FlightSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlightSummary), args.Error(1)
}

func (m *MockFlightUseCase) Get(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightDetail), args.Error(1)
}

func (m *MockFlightUseCase) Create(ctx context.Context, flight *domain.Flight) (*domain.FlightDetail, error) {
	args := m.Called(ctx, flight)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightDetail), args.Error(1)
}

func (m *MockFlightUseCase) Update(ctx context.Context, flight *domain.Flight) (*domain.FlightDetail, error) {
	args := m.Called(ctx, flight)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlightDetail), args.Error(1)
}

func (m *MockFlightUseCase) SeatsLeft(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateOrder(ctx context.Context, userID int64, tickets []domain.TicketRequest) (*domain.Order, error) {
	args := m.Called(ctx, userID, tickets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockBookingUseCase) ListOrders(ctx context.Context, userID int64) ([]domain.OrderSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderSummary), args.Error(1)
}

func (m *MockBookingUseCase) GetOrder(ctx context.Context, userID, orderID int64) (*domain.OrderDetail, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderDetail), args.Error(1)
}

type MockPaymentUseCase struct {
	mock.Mock
}

func (m *MockPaymentUseCase) OpenCheckout(ctx context.Context, userID, orderID int64) (*domain.Payment, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentUseCase) ConfirmPayment(ctx context.Context, sessionID string) (*domain.Payment, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentUseCase) List(ctx context.Context, userID int64, staff bool) ([]domain.Payment, error) {
	args := m.Called(ctx, userID, staff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentUseCase) Get(ctx context.Context, id, userID int64, staff bool) (*domain.Payment, error) {
	args := m.Called(ctx, id, userID, staff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentUseCase) ReconcilePending(ctx context.Context, olderThan time.Duration, limit int) (int, error) {
	args := m.Called(ctx, olderThan, limit)
	return args.Int(0), args.Error(1)
}

type testServer struct {
	router    *gin.Engine
	users     *MockUsers
	inventory *MockInventoryUseCase
	flights   *MockFlightUseCase
	booking   *MockBookingUseCase
	payments  *MockPaymentUseCase
}

var (
	customer = &domain.User{ID: 7, Email: "user@example.com"}
	staff    = &domain.User{ID: 1, Email: "admin@example.com", IsStaff: true}
)

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &testServer{
		users:     &MockUsers{},
		inventory: &MockInventoryUseCase{},
		flights:   &MockFlightUseCase{},
		booking:   &MockBookingUseCase{},
		payments:  &MockPaymentUseCase{},
	}
	s.users.On("GetByID", mock.Anything, customer.ID).Return(customer, nil).Maybe()
	s.users.On("GetByID", mock.Anything, staff.ID).Return(staff, nil).Maybe()

	s.router = NewRouter(Handlers{
		Inventory: NewInventoryHandler(s.inventory),
		Flights:   NewFlightHandler(s.flights),
		Orders:    NewOrderHandler(s.booking, s.payments),
		Payments:  NewPaymentHandler(s.payments),
		Users:     s.users,
	})
	t.Cleanup(func() {
		s.inventory.AssertExpectations(t)
		s.flights.AssertExpectations(t)
		s.booking.AssertExpectations(t)
		s.payments.AssertExpectations(t)
	})
	return s
}

// do sends a request as user; a nil user sends no identity header.
func (s *testServer) do(method, path string, user *domain.User, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != nil {
		req.Header.Set(UserIDHeader, strconv.FormatInt(user.ID, 10))
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}
