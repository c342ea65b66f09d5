package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInventoryHandler_listAircraftByType(t *testing.T) {
	s := newTestServer(t)
	s.inventory.On("ListAircraft", mock.Anything, []int64{1, 2}).Return([]domain.Aircraft{
		{ID: 3, Registration: "UR-PSA", ProductionYear: 2015, Rows: 30, SeatsInRow: 6, AircraftTypeName: "Boeing 737-800"},
	}, nil)

	w := s.do(http.MethodGet, "/api/airport/aircraft?types=1,2", customer, "")

	require.Equal(t, http.StatusOK, w.Code)
	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.EqualValues(t, 180, body[0]["capacity"])
	assert.NotContains(t, body[0], "rows")
}

func TestInventoryHandler_createAirline(t *testing.T) {
	s := newTestServer(t)
	s.inventory.On("CreateAirline", mock.Anything, mock.MatchedBy(func(a *domain.Airline) bool {
		return a.Name == "Ukraine International" && a.IATACode == "ps"
	})).Run(func(args mock.Arguments) {
		a := args.Get(1).(*domain.Airline)
		a.ID = 11
		a.IATACode = "PS"
	}).Return(nil)

	w := s.do(http.MethodPost, "/api/airport/airlines", staff, `{"name":"Ukraine International","iata_code":"ps","country":"Ukraine"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 11, body["id"])
	assert.Equal(t, "PS", body["iata_code"])
}

func TestInventoryHandler_missingField(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/airport/crew", staff, `{"first_name":"Olena","license_number":"ABC12345"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "this field is required", body.Fields["last_name"])
}

func TestInventoryHandler_duplicate(t *testing.T) {
	s := newTestServer(t)
	verr := domain.NewValidationError(domain.CodeInvalid, map[string]string{"iata_code": "airport with this iata_code already exists."})
	s.inventory.On("CreateAirport", mock.Anything, mock.Anything).Return(verr)

	w := s.do(http.MethodPost, "/api/airport/airports", staff, `{"iata_code":"KBP","name":"Boryspil","nearest_city":"Kyiv"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestInventoryHandler_routes(t *testing.T) {
	s := newTestServer(t)
	route := domain.Route{
		ID:          4,
		Distance:    7500,
		Source:      domain.Airport{IATACode: "JFK", NearestCity: "New York"},
		Destination: domain.Airport{IATACode: "KBP", NearestCity: "Kyiv"},
	}
	s.inventory.On("ListRoutes", mock.Anything, []string{"jfk"}, []string(nil)).Return([]domain.Route{route}, nil)
	s.inventory.On("GetRoute", mock.Anything, int64(4)).Return(&route, nil)

	w := s.do(http.MethodGet, "/api/airport/routes?sources=jfk", customer, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"JFK - KBP"`)

	w = s.do(http.MethodGet, "/api/airport/routes/4", customer, "")
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Kyiv", body["destination"].(map[string]any)["nearest_city"])
}

func TestInventoryHandler_getAirlineNotFound(t *testing.T) {
	s := newTestServer(t)
	s.inventory.On("GetAirline", mock.Anything, "zz").Return(nil, domain.NotFound("airline"))

	w := s.do(http.MethodGet, "/api/airport/airlines/zz", customer, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
