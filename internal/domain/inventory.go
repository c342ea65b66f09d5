package domain

import (
	"regexp"
	"strings"
	"time"
)

const (
	MinProductionYear = 1900
	// MaxSeatsInRow keeps the last seat letter within A..Z.
	MaxSeatsInRow = 26
)

var licenseRe = regexp.MustCompile(`^[A-Z]{3}[0-9]{5,}$`)

type Manufacturer struct {
	ID      int64
	Name    string
	Country string
}

func (m Manufacturer) Validate() error {
	f := fieldErrors{}
	f.required("name", m.Name, 20)
	f.required("country", m.Country, 100)
	return f.err()
}

type AircraftType struct {
	ID               int64
	Name             string
	ManufacturerID   int64
	ManufacturerName string
}

func (t AircraftType) Validate() error {
	f := fieldErrors{}
	f.required("name", t.Name, 55)
	f.positiveID("manufacturer", t.ManufacturerID)
	return f.err()
}

type Aircraft struct {
	ID               int64
	Registration     string
	ProductionYear   int
	Rows             int
	SeatsInRow       int
	AircraftTypeID   int64
	AircraftTypeName string
}

func (a Aircraft) Capacity() int {
	return a.Rows * a.SeatsInRow
}

func (a Aircraft) Age(now time.Time) int {
	return now.Year() - a.ProductionYear
}

func (a Aircraft) Layout() SeatLayout {
	return SeatLayout{Rows: a.Rows, SeatsInRow: a.SeatsInRow}
}

func (a *Aircraft) Normalize() {
	a.Registration = strings.ToUpper(strings.TrimSpace(a.Registration))
}

func (a Aircraft) Validate(now time.Time) error {
	f := fieldErrors{}
	f.required("registration", a.Registration, 10)
	if a.ProductionYear < MinProductionYear || a.ProductionYear > now.Year() {
		f["production_year"] = "production year must be between 1900 and the current year"
	}
	if a.Rows < 1 {
		f["rows"] = "rows must be a positive number"
	}
	if a.SeatsInRow < 1 || a.SeatsInRow > MaxSeatsInRow {
		f["seats_in_row"] = "seats in row must be in range from 1 to 26"
	}
	f.positiveID("aircraft_type", a.AircraftTypeID)
	return f.err()
}

type Airline struct {
	ID       int64
	Name     string
	IATACode string
	ICAOCode string
	Callsign string
	Country  string
	Notes    string
}

func (a *Airline) Normalize() {
	a.IATACode = strings.ToUpper(strings.TrimSpace(a.IATACode))
	a.ICAOCode = strings.ToUpper(strings.TrimSpace(a.ICAOCode))
	a.Callsign = strings.ToUpper(strings.TrimSpace(a.Callsign))
}

func (a Airline) Validate() error {
	f := fieldErrors{}
	f.required("name", a.Name, 100)
	f.maxLen("iata_code", a.IATACode, 2)
	f.maxLen("icao_code", a.ICAOCode, 3)
	f.maxLen("callsign", a.Callsign, 50)
	f.required("country", a.Country, 100)
	return f.err()
}

type Airport struct {
	ID          int64
	IATACode    string
	ICAOCode    string
	Name        string
	NearestCity string
	Info        string
}

func (a *Airport) Normalize() {
	a.IATACode = strings.ToUpper(strings.TrimSpace(a.IATACode))
	a.ICAOCode = strings.ToUpper(strings.TrimSpace(a.ICAOCode))
}

func (a Airport) Validate() error {
	f := fieldErrors{}
	f.maxLen("iata_code", a.IATACode, 3)
	f.maxLen("icao_code", a.ICAOCode, 4)
	f.required("name", a.Name, 255)
	f.required("nearest_city", a.NearestCity, 155)
	return f.err()
}

// Label renders an airport as "JFK (New York)".
func (a Airport) Label() string {
	return a.IATACode + " (" + a.NearestCity + ")"
}

type Crew struct {
	ID            int64
	FirstName     string
	LastName      string
	LicenseNumber string
}

func (c Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}

func (c Crew) Validate() error {
	f := fieldErrors{}
	f.required("first_name", c.FirstName, 55)
	f.required("last_name", c.LastName, 55)
	if len(c.LicenseNumber) > 15 || !licenseRe.MatchString(c.LicenseNumber) {
		f["license_number"] = "License should start with 3 capital letters followed by min 5 digits"
	}
	return f.err()
}

type Route struct {
	ID            int64
	SourceID      int64
	DestinationID int64
	Distance      int
	Source        Airport
	Destination   Airport
}

// Name is the short form used in listings, e.g. "JFK - KBP".
func (r Route) Name() string {
	return r.Source.IATACode + " - " + r.Destination.IATACode
}

// Label is the long form, e.g. "JFK (New York) - KBP (Kyiv)".
func (r Route) Label() string {
	return r.Source.Label() + " - " + r.Destination.Label()
}

func (r Route) Validate() error {
	f := fieldErrors{}
	f.positiveID("source", r.SourceID)
	f.positiveID("destination", r.DestinationID)
	if r.SourceID > 0 && r.SourceID == r.DestinationID {
		f["destination"] = "destination must differ from source"
	}
	if r.Distance <= 0 {
		f["distance"] = "distance must be a positive number"
	}
	return f.err()
}
