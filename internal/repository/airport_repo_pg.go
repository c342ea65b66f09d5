package repository

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirportRepository interface {
	List(ctx context.Context) ([]domain.Airport, error)
	GetByIATA(ctx context.Context, iata string) (*domain.Airport, error)
	Create(ctx context.Context, a *domain.Airport) error
	UpdateByIATA(ctx context.Context, iata string, a *domain.Airport) error
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

const airportSelect = `SELECT id, iata_code, icao_code, name, nearest_city, info FROM airports`

func (r *PGAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, airportSelect+` ORDER BY id`)
	if err != nil {
		return nil, mapError(err, "airport")
	}
	defer rows.Close()

	list := make([]domain.Airport, 0)
	for rows.Next() {
		a, err := scanAirport(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *a)
	}
	return list, rows.Err()
}

func (r *PGAirportRepository) GetByIATA(ctx context.Context, iata string) (*domain.Airport, error) {
	a, err := scanAirport(r.db.QueryRow(ctx, airportSelect+` WHERE iata_code=$1 AND iata_code <> ''`, iata))
	if err != nil {
		return nil, mapError(err, "airport")
	}
	return a, nil
}

func (r *PGAirportRepository) Create(ctx context.Context, a *domain.Airport) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airports (iata_code, icao_code, name, nearest_city, info)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		a.IATACode, a.ICAOCode, a.Name, a.NearestCity, a.Info).Scan(&a.ID)
	return mapError(err, "airport")
}

func (r *PGAirportRepository) UpdateByIATA(ctx context.Context, iata string, a *domain.Airport) error {
	err := r.db.QueryRow(ctx, `UPDATE airports SET iata_code=$1, icao_code=$2, name=$3, nearest_city=$4, info=$5
		WHERE iata_code=$6 AND iata_code <> '' RETURNING id`,
		a.IATACode, a.ICAOCode, a.Name, a.NearestCity, a.Info, iata).Scan(&a.ID)
	return mapError(err, "airport")
}

func scanAirport(row pgx.Row) (*domain.Airport, error) {
	var a domain.Airport
	if err := row.Scan(&a.ID, &a.IATACode, &a.ICAOCode, &a.Name, &a.NearestCity, &a.Info); err != nil {
		return nil, err
	}
	return &a, nil
}

var _ AirportRepository = (*PGAirportRepository)(nil)
