package repository

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	List(ctx context.Context, filter domain.FlightFilter) ([]domain.FlightSummary, error)
	GetDetail(ctx context.Context, id int64) (*domain.FlightDetail, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	SeatLayout(ctx context.Context, flightID int64) (domain.SeatLayout, error)
	SeatsLeft(ctx context.Context, flightID int64) (int, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

// seats_left is capacity minus booked tickets, evaluated in the same statement.
const flightSelect = `SELECT f.id, f.flight_number, al.name, src.iata_code, dst.iata_code,
		a.id, a.registration, a.production_year, a.rows, a.seats_in_row, a.aircraft_type_id, ty.name,
		a.rows * a.seats_in_row - (SELECT count(*) FROM tickets t WHERE t.flight_id = f.id) AS seats_left,
		f.departure_time, f.arrival_time, f.status
	FROM flights f
	JOIN airlines al ON al.id = f.airline_id
	JOIN routes r ON r.id = f.route_id
	JOIN airports src ON src.id = r.source_id
	JOIN airports dst ON dst.id = r.destination_id
	JOIN aircraft a ON a.id = f.aircraft_id
	JOIN aircraft_types ty ON ty.id = a.aircraft_type_id`

func (r *PGFlightRepository) List(ctx context.Context, filter domain.FlightFilter) ([]domain.FlightSummary, error) {
	var statuses []string
	if filter.Statuses != nil {
		statuses = make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
	}

	rows, err := r.db.Query(ctx, flightSelect+`
		WHERE ($1::bigint[] IS NULL OR f.route_id = ANY($1))
		  AND ($2::bigint[] IS NULL OR EXISTS (
				SELECT 1 FROM flight_crew fc WHERE fc.flight_id = f.id AND fc.crew_id = ANY($2)))
		  AND ($3::text[] IS NULL OR f.status = ANY($3))
		ORDER BY f.departure_time, f.id`, filter.RouteIDs, filter.CrewIDs, statuses)
	if err != nil {
		return nil, mapError(err, "flight")
	}
	defer rows.Close()

	flights := make([]domain.FlightSummary, 0)
	for rows.Next() {
		f, err := scanFlightSummary(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

// GetDetail reads the flight, its crew and its taken seats from one snapshot.
func (r *PGFlightRepository) GetDetail(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	summary, err := scanFlightSummary(tx.QueryRow(ctx, flightSelect+` WHERE f.id=$1`, id))
	if err != nil {
		return nil, mapError(err, "flight")
	}
	detail := &domain.FlightDetail{FlightSummary: *summary, CrewNames: []string{}, TakenSeats: []string{}}

	crewRows, err := tx.Query(ctx, `SELECT c.first_name, c.last_name FROM crew c
		JOIN flight_crew fc ON fc.crew_id = c.id
		WHERE fc.flight_id = $1 ORDER BY c.id`, id)
	if err != nil {
		return nil, err
	}
	for crewRows.Next() {
		var c domain.Crew
		if err := crewRows.Scan(&c.FirstName, &c.LastName); err != nil {
			crewRows.Close()
			return nil, err
		}
		detail.CrewNames = append(detail.CrewNames, c.FullName())
	}
	crewRows.Close()
	if err := crewRows.Err(); err != nil {
		return nil, err
	}

	seatRows, err := tx.Query(ctx, `SELECT row_no, seat FROM tickets WHERE flight_id = $1 ORDER BY row_no, seat`, id)
	if err != nil {
		return nil, err
	}
	for seatRows.Next() {
		var t domain.Ticket
		if err := seatRows.Scan(&t.Row, &t.Seat); err != nil {
			seatRows.Close()
			return nil, err
		}
		detail.TakenSeats = append(detail.TakenSeats, t.Label())
	}
	seatRows.Close()
	if err := seatRows.Err(); err != nil {
		return nil, err
	}

	return detail, tx.Commit(ctx)
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO flights (flight_number, airline_id, route_id, aircraft_id, departure_time, arrival_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		flight.FlightNumber, flight.AirlineID, flight.RouteID, flight.AircraftID,
		flight.DepartureTime, flight.ArrivalTime, flight.Status).Scan(&flight.ID); err != nil {
		return mapError(err, "flight")
	}
	if err := setCrew(ctx, tx, flight.ID, flight.CrewIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `UPDATE flights SET flight_number=$1, airline_id=$2, route_id=$3, aircraft_id=$4,
		departure_time=$5, arrival_time=$6, status=$7 WHERE id=$8`,
		flight.FlightNumber, flight.AirlineID, flight.RouteID, flight.AircraftID,
		flight.DepartureTime, flight.ArrivalTime, flight.Status, flight.ID)
	if err != nil {
		return mapError(err, "flight")
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("flight")
	}
	if _, err := tx.Exec(ctx, `DELETE FROM flight_crew WHERE flight_id=$1`, flight.ID); err != nil {
		return err
	}
	if err := setCrew(ctx, tx, flight.ID, flight.CrewIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *PGFlightRepository) SeatLayout(ctx context.Context, flightID int64) (domain.SeatLayout, error) {
	var l domain.SeatLayout
	err := r.db.QueryRow(ctx, `SELECT a.rows, a.seats_in_row FROM flights f
		JOIN aircraft a ON a.id = f.aircraft_id WHERE f.id=$1`, flightID).Scan(&l.Rows, &l.SeatsInRow)
	if err != nil {
		return domain.SeatLayout{}, mapError(err, "flight")
	}
	return l, nil
}

func (r *PGFlightRepository) SeatsLeft(ctx context.Context, flightID int64) (int, error) {
	var left int
	err := r.db.QueryRow(ctx, `SELECT a.rows * a.seats_in_row - (SELECT count(*) FROM tickets t WHERE t.flight_id = f.id)
		FROM flights f JOIN aircraft a ON a.id = f.aircraft_id WHERE f.id=$1`, flightID).Scan(&left)
	if err != nil {
		return 0, mapError(err, "flight")
	}
	return left, nil
}

func setCrew(ctx context.Context, tx pgx.Tx, flightID int64, crewIDs []int64) error {
	if len(crewIDs) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `INSERT INTO flight_crew (flight_id, crew_id)
		SELECT $1, c FROM unnest($2::bigint[]) AS c ON CONFLICT DO NOTHING`, flightID, crewIDs)
	return mapError(err, "flight")
}

func scanFlightSummary(row pgx.Row) (*domain.FlightSummary, error) {
	var (
		f        domain.FlightSummary
		src, dst string
	)
	err := row.Scan(&f.ID, &f.FlightNumber, &f.AirlineName, &src, &dst,
		&f.Aircraft.ID, &f.Aircraft.Registration, &f.Aircraft.ProductionYear, &f.Aircraft.Rows, &f.Aircraft.SeatsInRow,
		&f.Aircraft.AircraftTypeID, &f.Aircraft.AircraftTypeName,
		&f.SeatsLeft, &f.DepartureTime, &f.ArrivalTime, &f.Status)
	if err != nil {
		return nil, err
	}
	f.RouteName = src + " - " + dst
	return &f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
