package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepositories(t *testing.T) {
	pool := &pgxpool.Pool{}
	assert.NotNil(t, NewAircraftRepository(pool))
	assert.NotNil(t, NewAirlineRepository(pool))
	assert.NotNil(t, NewAirportRepository(pool))
	assert.NotNil(t, NewCrewRepository(pool))
	assert.NotNil(t, NewRouteRepository(pool))
	assert.NotNil(t, NewFlightRepository(pool))
	assert.NotNil(t, NewOrderRepository(pool))
	assert.NotNil(t, NewPaymentRepository(pool))
	assert.NotNil(t, NewUserRepository(pool))
}

func TestMapError_Nil(t *testing.T) {
	assert.NoError(t, mapError(nil, "flight"))
}

func TestMapError_NoRows(t *testing.T) {
	err := mapError(pgx.ErrNoRows, "flight")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "flight not found")
}

func TestMapError_SeatUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: ticketSeatConstraint}
	err := mapError(fmt.Errorf("insert ticket: %w", pgErr), "ticket")

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, domain.ErrSeatAlreadyBooked, err)
}

func TestMapError_UniqueField(t *testing.T) {
	err := mapError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "airlines_iata_code_key"}, "airline")

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, domain.CodeInvalid, verr.Code)
	assert.Equal(t, "airline with this iata_code already exists.", verr.Fields["iata_code"])
}

func TestMapError_UniqueTogether(t *testing.T) {
	err := mapError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "routes_source_destination_key"}, "route")

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "route already exists.", verr.Fields[nonFieldErrors])
}

func TestMapError_ForeignKey(t *testing.T) {
	err := mapError(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "flights_route_id_fkey"}, "flight")

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "object does not exist.", verr.Fields["route"])
}

func TestMapError_Check(t *testing.T) {
	err := mapError(&pgconn.PgError{Code: pgCheckViolation, Message: "violates check constraint"}, "aircraft")

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "violates check constraint", verr.Fields[nonFieldErrors])
}

func TestMapError_Other(t *testing.T) {
	cause := errors.New("connection reset")
	err := mapError(cause, "order")

	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "order: connection reset")
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
