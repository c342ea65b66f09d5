package domain

import (
	"strconv"
	"strings"
	"time"
)

type FlightStatus string

const (
	FlightStatusOnTime    FlightStatus = "on_time"
	FlightStatusDelayed   FlightStatus = "delayed"
	FlightStatusCancelled FlightStatus = "cancelled"
)

func (s FlightStatus) Valid() bool {
	switch s {
	case FlightStatusOnTime, FlightStatusDelayed, FlightStatusCancelled:
		return true
	}
	return false
}

type Flight struct {
	ID            int64
	FlightNumber  string
	AirlineID     int64
	RouteID       int64
	AircraftID    int64
	DepartureTime time.Time
	ArrivalTime   time.Time
	Status        FlightStatus
	CrewIDs       []int64
}

func (f *Flight) Normalize() {
	f.FlightNumber = strings.TrimSpace(f.FlightNumber)
	if f.Status == "" {
		f.Status = FlightStatusOnTime
	}
}

func (f Flight) Validate() error {
	errs := fieldErrors{}
	errs.required("flight_number", f.FlightNumber, 55)
	errs.positiveID("airline", f.AirlineID)
	errs.positiveID("route", f.RouteID)
	errs.positiveID("aircraft", f.AircraftID)
	if f.DepartureTime.IsZero() {
		errs["departure_time"] = "this field is required"
	}
	if f.ArrivalTime.IsZero() {
		errs["arrival_time"] = "this field is required"
	}
	if !f.DepartureTime.IsZero() && !f.ArrivalTime.IsZero() && !f.ArrivalTime.After(f.DepartureTime) {
		errs["arrival_time"] = "arrival time must be after departure time"
	}
	if !f.Status.Valid() {
		errs["status"] = `"` + string(f.Status) + `" is not a valid choice`
	}
	return errs.err()
}

// SeatLayout is the seat grid of the aircraft operating a flight.
type SeatLayout struct {
	Rows       int
	SeatsInRow int
}

func (l SeatLayout) Capacity() int {
	return l.Rows * l.SeatsInRow
}

// MaxSeat is the last seat letter of a row, chr(64+seats_in_row).
func (l SeatLayout) MaxSeat() string {
	return string(rune('A' + l.SeatsInRow - 1))
}

// Validate checks 1 <= row <= Rows and 'A' <= seat <= MaxSeat.
func (l SeatLayout) Validate(row int, seat string) error {
	maxSeat := l.MaxSeat()
	seatOK := len(seat) == 1 && seat >= "A" && seat <= maxSeat
	rowOK := row >= 1 && row <= l.Rows
	if seatOK && rowOK {
		return nil
	}
	return NewValidationError(CodeSeatOutOfRange, map[string]string{
		"seat": "seat must be in range from A to " + maxSeat,
		"row":  "row must be in range from 1 to " + strconv.Itoa(l.Rows),
	})
}

type FlightFilter struct {
	RouteIDs []int64
	CrewIDs  []int64
	Statuses []FlightStatus
}

// FlightSummary is the listing projection of a flight with its seats-left annotation.
type FlightSummary struct {
	ID            int64
	FlightNumber  string
	AirlineName   string
	RouteName     string
	Aircraft      Aircraft
	SeatsLeft     int
	DepartureTime time.Time
	ArrivalTime   time.Time
	Status        FlightStatus
}

type FlightDetail struct {
	FlightSummary
	CrewNames  []string
	TakenSeats []string
}
