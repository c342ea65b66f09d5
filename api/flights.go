package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/flights", h.list)
	router.POST("/flights", h.create)
	router.GET("/flights/:id", h.get)
	router.PUT("/flights/:id", h.update)
}

type flightRequest struct {
	FlightNumber  string    `json:"flight_number" binding:"required"`
	Airline       int64     `json:"airline" binding:"required"`
	Route         int64     `json:"route" binding:"required"`
	Aircraft      int64     `json:"aircraft" binding:"required"`
	DepartureTime time.Time `json:"departure_time" binding:"required"`
	ArrivalTime   time.Time `json:"arrival_time" binding:"required"`
	Status        string    `json:"status"`
	Crew          []int64   `json:"crew"`
}

func (r flightRequest) toDomain(id int64) *domain.Flight {
	return &domain.Flight{
		ID:            id,
		FlightNumber:  r.FlightNumber,
		AirlineID:     r.Airline,
		RouteID:       r.Route,
		AircraftID:    r.Aircraft,
		DepartureTime: r.DepartureTime,
		ArrivalTime:   r.ArrivalTime,
		Status:        domain.FlightStatus(r.Status),
		CrewIDs:       r.Crew,
	}
}

type flightListResponse struct {
	ID            int64     `json:"id"`
	FlightNumber  string    `json:"flight_number"`
	Airline       string    `json:"airline"`
	Route         string    `json:"route"`
	Aircraft      string    `json:"aircraft"`
	SeatsLeft     int       `json:"seats_left"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Status        string    `json:"status"`
}

type flightAircraftResponse struct {
	Registration string `json:"registration"`
	AircraftType string `json:"aircraft_type"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	Capacity     int    `json:"capacity"`
}

type flightDetailResponse struct {
	ID            int64                  `json:"id"`
	FlightNumber  string                 `json:"flight_number"`
	Airline       string                 `json:"airline"`
	Route         string                 `json:"route"`
	Aircraft      flightAircraftResponse `json:"aircraft"`
	Crew          []string               `json:"crew"`
	TakenPlaces   []string               `json:"taken_places"`
	SeatsLeft     int                    `json:"seats_left"`
	DepartureTime time.Time              `json:"departure_time"`
	ArrivalTime   time.Time              `json:"arrival_time"`
	Status        string                 `json:"status"`
}

func toFlightList(f domain.FlightSummary) flightListResponse {
	return flightListResponse{
		ID:            f.ID,
		FlightNumber:  f.FlightNumber,
		Airline:       f.AirlineName,
		Route:         f.RouteName,
		Aircraft:      f.Aircraft.Registration,
		SeatsLeft:     f.SeatsLeft,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		Status:        string(f.Status),
	}
}

func toFlightDetail(f domain.FlightDetail) flightDetailResponse {
	crew := f.CrewNames
	if crew == nil {
		crew = []string{}
	}
	taken := f.TakenSeats
	if taken == nil {
		taken = []string{}
	}
	return flightDetailResponse{
		ID:           f.ID,
		FlightNumber: f.FlightNumber,
		Airline:      f.AirlineName,
		Route:        f.RouteName,
		Aircraft: flightAircraftResponse{
			Registration: f.Aircraft.Registration,
			AircraftType: f.Aircraft.AircraftTypeName,
			Rows:         f.Aircraft.Rows,
			SeatsInRow:   f.Aircraft.SeatsInRow,
			Capacity:     f.Aircraft.Capacity(),
		},
		Crew:          crew,
		TakenPlaces:   taken,
		SeatsLeft:     f.SeatsLeft,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		Status:        string(f.Status),
	}
}

func (h *FlightHandler) list(c *gin.Context) {
	routes, err := queryIDs(c, "routes")
	if err != nil {
		writeError(c, err)
		return
	}
	crew, err := queryIDs(c, "crew")
	if err != nil {
		writeError(c, err)
		return
	}
	filter := domain.FlightFilter{RouteIDs: routes, CrewIDs: crew}
	for _, st := range queryList(c, "statuses") {
		filter.Statuses = append(filter.Statuses, domain.FlightStatus(st))
	}

	list, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, toFlightList))
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	flight, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightDetail(*flight))
}

func (h *FlightHandler) create(c *gin.Context) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	flight, err := h.service.Create(c.Request.Context(), req.toDomain(0))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFlightDetail(*flight))
}

func (h *FlightHandler) update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		writeError(c, err)
		return
	}
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	flight, err := h.service.Update(c.Request.Context(), req.toDomain(id))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightDetail(*flight))
}
