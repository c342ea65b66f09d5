package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", domain.NewValidationError(domain.CodeEmptyOrder, map[string]string{"tickets": "this list may not be empty"}), http.StatusBadRequest, domain.CodeEmptyOrder},
		{"conflict", fmt.Errorf("create order: %w", domain.ErrSeatAlreadyBooked), http.StatusConflict, "seat-already-booked"},
		{"not found", domain.NotFound("order"), http.StatusNotFound, "order not found"},
		{"provider", fmt.Errorf("%w: stripe: timeout", domain.ErrProviderUnavailable), http.StatusBadGateway, domain.ErrProviderUnavailable.Error()},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/airport/orders", nil)

			writeError(c, tt.err)

			require.Equal(t, tt.status, w.Code)
			var body errorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.body, body.Error)
		})
	}
}

func TestQueryIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	c.Request = httptest.NewRequest(http.MethodGet, "/flights?routes=1,%202", nil)
	ids, err := queryIDs(c, "routes")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)

	ids, err = queryIDs(c, "crew")
	require.NoError(t, err)
	assert.Nil(t, ids)

	c.Request = httptest.NewRequest(http.MethodGet, "/flights?routes=1,x", nil)
	_, err = queryIDs(c, "routes")
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	_, err := pathID(c, "id")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
