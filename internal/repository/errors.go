package repository

import (
	"errors"
	"fmt"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"

	ticketSeatConstraint = "tickets_flight_row_seat_key"
	nonFieldErrors       = "non_field_errors"
)

// uniqueFields maps unique constraints and indexes to the request field they guard.
var uniqueFields = map[string]string{
	"aircraft_registration_key":     "registration",
	"airlines_name_key":             "name",
	"airlines_iata_code_key":        "iata_code",
	"airlines_icao_code_key":        "icao_code",
	"airlines_callsign_key":         "callsign",
	"airports_name_key":             "name",
	"airports_iata_code_key":        "iata_code",
	"airports_icao_code_key":        "icao_code",
	"crew_license_number_key":       "license_number",
	"routes_source_destination_key": nonFieldErrors,
	"payments_session_id_key":       "session_id",
}

var foreignKeyFields = map[string]string{
	"aircraft_types_manufacturer_id_fkey": "manufacturer",
	"aircraft_aircraft_type_id_fkey":      "aircraft_type",
	"routes_source_id_fkey":               "source",
	"routes_destination_id_fkey":          "destination",
	"flights_airline_id_fkey":             "airline",
	"flights_route_id_fkey":               "route",
	"flights_aircraft_id_fkey":            "aircraft",
	"flight_crew_crew_id_fkey":            "crew",
	"tickets_flight_id_fkey":              "flight",
	"orders_user_id_fkey":                 "user",
}

// mapError translates pgx/PostgreSQL failures into domain errors. resource
// names the entity for not-found and duplicate messages.
func mapError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if pgErr.ConstraintName == ticketSeatConstraint {
				return domain.ErrSeatAlreadyBooked
			}
			field, ok := uniqueFields[pgErr.ConstraintName]
			if !ok {
				field = nonFieldErrors
			}
			msg := resource + " with this " + field + " already exists."
			if field == nonFieldErrors {
				msg = resource + " already exists."
			}
			return domain.NewValidationError(domain.CodeInvalid, map[string]string{field: msg})
		case pgForeignKeyViolation:
			field, ok := foreignKeyFields[pgErr.ConstraintName]
			if !ok {
				field = nonFieldErrors
			}
			return domain.NewValidationError(domain.CodeInvalid, map[string]string{field: "object does not exist."})
		case pgCheckViolation:
			return domain.NewValidationError(domain.CodeInvalid, map[string]string{nonFieldErrors: pgErr.Message})
		}
	}
	return fmt.Errorf("%s: %w", resource, err)
}
