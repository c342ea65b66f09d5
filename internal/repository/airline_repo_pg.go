package repository

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirlineRepository interface {
	List(ctx context.Context) ([]domain.Airline, error)
	GetByIATA(ctx context.Context, iata string) (*domain.Airline, error)
	Create(ctx context.Context, a *domain.Airline) error
	UpdateByIATA(ctx context.Context, iata string, a *domain.Airline) error
}

type PGAirlineRepository struct {
	db *pgxpool.Pool
}

func NewAirlineRepository(db *pgxpool.Pool) AirlineRepository {
	return &PGAirlineRepository{db: db}
}

const airlineSelect = `SELECT id, name, iata_code, icao_code, callsign, country, notes FROM airlines`

func (r *PGAirlineRepository) List(ctx context.Context) ([]domain.Airline, error) {
	rows, err := r.db.Query(ctx, airlineSelect+` ORDER BY id`)
	if err != nil {
		return nil, mapError(err, "airline")
	}
	defer rows.Close()

	list := make([]domain.Airline, 0)
	for rows.Next() {
		a, err := scanAirline(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *a)
	}
	return list, rows.Err()
}

func (r *PGAirlineRepository) GetByIATA(ctx context.Context, iata string) (*domain.Airline, error) {
	a, err := scanAirline(r.db.QueryRow(ctx, airlineSelect+` WHERE iata_code=$1 AND iata_code <> ''`, iata))
	if err != nil {
		return nil, mapError(err, "airline")
	}
	return a, nil
}

func (r *PGAirlineRepository) Create(ctx context.Context, a *domain.Airline) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airlines (name, iata_code, icao_code, callsign, country, notes)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		a.Name, a.IATACode, a.ICAOCode, a.Callsign, a.Country, a.Notes).Scan(&a.ID)
	return mapError(err, "airline")
}

func (r *PGAirlineRepository) UpdateByIATA(ctx context.Context, iata string, a *domain.Airline) error {
	err := r.db.QueryRow(ctx, `UPDATE airlines SET name=$1, iata_code=$2, icao_code=$3, callsign=$4, country=$5, notes=$6
		WHERE iata_code=$7 AND iata_code <> '' RETURNING id`,
		a.Name, a.IATACode, a.ICAOCode, a.Callsign, a.Country, a.Notes, iata).Scan(&a.ID)
	return mapError(err, "airline")
}

func scanAirline(row pgx.Row) (*domain.Airline, error) {
	var a domain.Airline
	if err := row.Scan(&a.ID, &a.Name, &a.IATACode, &a.ICAOCode, &a.Callsign, &a.Country, &a.Notes); err != nil {
		return nil, err
	}
	return &a, nil
}

var _ AirlineRepository = (*PGAirlineRepository)(nil)
