package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestIdentity_rejectsUnknownUser(t *testing.T) {
	s := newTestServer(t)
	s.users.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.NotFound("user"))

	req := httptest.NewRequest(http.MethodGet, "/api/airport/orders", nil)
	req.Header.Set(UserIDHeader, "404")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIdentity_rejectsMalformedHeader(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/airport/orders", nil)
	req.Header.Set(UserIDHeader, "admin")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestLog_echoesRequestID(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))

	w = s.do(http.MethodGet, "/healthz", nil, "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestStaffWrites_allowsReads(t *testing.T) {
	s := newTestServer(t)
	s.inventory.On("ListCrew", mock.Anything).Return([]domain.Crew{{ID: 1, FirstName: "Olena", LastName: "Petrenko"}}, nil)

	w := s.do(http.MethodGet, "/api/airport/crew", customer, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"full_name":"Olena Petrenko"`)
}
