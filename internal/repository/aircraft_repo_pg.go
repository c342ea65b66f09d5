package repository

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AircraftRepository interface {
	ListManufacturers(ctx context.Context) ([]domain.Manufacturer, error)
	CreateManufacturer(ctx context.Context, m *domain.Manufacturer) error
	ListTypes(ctx context.Context) ([]domain.AircraftType, error)
	CreateType(ctx context.Context, t *domain.AircraftType) error
	List(ctx context.Context, typeIDs []int64) ([]domain.Aircraft, error)
	GetByID(ctx context.Context, id int64) (*domain.Aircraft, error)
	Create(ctx context.Context, a *domain.Aircraft) error
	Update(ctx context.Context, a *domain.Aircraft) error
}

type PGAircraftRepository struct {
	db *pgxpool.Pool
}

func NewAircraftRepository(db *pgxpool.Pool) AircraftRepository {
	return &PGAircraftRepository{db: db}
}

const aircraftSelect = `SELECT a.id, a.registration, a.production_year, a.rows, a.seats_in_row, a.aircraft_type_id, ty.name
	FROM aircraft a JOIN aircraft_types ty ON ty.id = a.aircraft_type_id`

func (r *PGAircraftRepository) ListManufacturers(ctx context.Context) ([]domain.Manufacturer, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, country FROM aircraft_manufacturers ORDER BY id`)
	if err != nil {
		return nil, mapError(err, "manufacturer")
	}
	defer rows.Close()

	list := make([]domain.Manufacturer, 0)
	for rows.Next() {
		var m domain.Manufacturer
		if err := rows.Scan(&m.ID, &m.Name, &m.Country); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *PGAircraftRepository) CreateManufacturer(ctx context.Context, m *domain.Manufacturer) error {
	err := r.db.QueryRow(ctx, `INSERT INTO aircraft_manufacturers (name, country) VALUES ($1, $2) RETURNING id`, m.Name, m.Country).Scan(&m.ID)
	return mapError(err, "manufacturer")
}

func (r *PGAircraftRepository) ListTypes(ctx context.Context) ([]domain.AircraftType, error) {
	rows, err := r.db.Query(ctx, `SELECT ty.id, ty.name, ty.manufacturer_id, m.name
		FROM aircraft_types ty JOIN aircraft_manufacturers m ON m.id = ty.manufacturer_id
		ORDER BY ty.id`)
	if err != nil {
		return nil, mapError(err, "aircraft type")
	}
	defer rows.Close()

	list := make([]domain.AircraftType, 0)
	for rows.Next() {
		var t domain.AircraftType
		if err := rows.Scan(&t.ID, &t.Name, &t.ManufacturerID, &t.ManufacturerName); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGAircraftRepository) CreateType(ctx context.Context, t *domain.AircraftType) error {
	err := r.db.QueryRow(ctx, `INSERT INTO aircraft_types (name, manufacturer_id) VALUES ($1, $2) RETURNING id`, t.Name, t.ManufacturerID).Scan(&t.ID)
	return mapError(err, "aircraft type")
}

func (r *PGAircraftRepository) List(ctx context.Context, typeIDs []int64) ([]domain.Aircraft, error) {
	rows, err := r.db.Query(ctx, aircraftSelect+`
		WHERE ($1::bigint[] IS NULL OR a.aircraft_type_id = ANY($1))
		ORDER BY a.id`, typeIDs)
	if err != nil {
		return nil, mapError(err, "aircraft")
	}
	defer rows.Close()

	list := make([]domain.Aircraft, 0)
	for rows.Next() {
		a, err := scanAircraft(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *a)
	}
	return list, rows.Err()
}

func (r *PGAircraftRepository) GetByID(ctx context.Context, id int64) (*domain.Aircraft, error) {
	a, err := scanAircraft(r.db.QueryRow(ctx, aircraftSelect+` WHERE a.id=$1`, id))
	if err != nil {
		return nil, mapError(err, "aircraft")
	}
	return a, nil
}

func (r *PGAircraftRepository) Create(ctx context.Context, a *domain.Aircraft) error {
	err := r.db.QueryRow(ctx, `INSERT INTO aircraft (registration, production_year, rows, seats_in_row, aircraft_type_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		a.Registration, a.ProductionYear, a.Rows, a.SeatsInRow, a.AircraftTypeID).Scan(&a.ID)
	return mapError(err, "aircraft")
}

func (r *PGAircraftRepository) Update(ctx context.Context, a *domain.Aircraft) error {
	cmd, err := r.db.Exec(ctx, `UPDATE aircraft SET registration=$1, production_year=$2, rows=$3, seats_in_row=$4, aircraft_type_id=$5
		WHERE id=$6`, a.Registration, a.ProductionYear, a.Rows, a.SeatsInRow, a.AircraftTypeID, a.ID)
	if err != nil {
		return mapError(err, "aircraft")
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("aircraft")
	}
	return nil
}

func scanAircraft(row pgx.Row) (*domain.Aircraft, error) {
	var a domain.Aircraft
	if err := row.Scan(&a.ID, &a.Registration, &a.ProductionYear, &a.Rows, &a.SeatsInRow, &a.AircraftTypeID, &a.AircraftTypeName); err != nil {
		return nil, err
	}
	return &a, nil
}

var _ AircraftRepository = (*PGAircraftRepository)(nil)
