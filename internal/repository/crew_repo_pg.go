package repository

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CrewRepository interface {
	List(ctx context.Context) ([]domain.Crew, error)
	GetByID(ctx context.Context, id int64) (*domain.Crew, error)
	Create(ctx context.Context, c *domain.Crew) error
	Update(ctx context.Context, c *domain.Crew) error
}

type PGCrewRepository struct {
	db *pgxpool.Pool
}

func NewCrewRepository(db *pgxpool.Pool) CrewRepository {
	return &PGCrewRepository{db: db}
}

func (r *PGCrewRepository) List(ctx context.Context) ([]domain.Crew, error) {
	rows, err := r.db.Query(ctx, `SELECT id, first_name, last_name, license_number FROM crew ORDER BY id`)
	if err != nil {
		return nil, mapError(err, "crew")
	}
	defer rows.Close()

	list := make([]domain.Crew, 0)
	for rows.Next() {
		var c domain.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.LicenseNumber); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *PGCrewRepository) GetByID(ctx context.Context, id int64) (*domain.Crew, error) {
	var c domain.Crew
	err := r.db.QueryRow(ctx, `SELECT id, first_name, last_name, license_number FROM crew WHERE id=$1`, id).
		Scan(&c.ID, &c.FirstName, &c.LastName, &c.LicenseNumber)
	if err != nil {
		return nil, mapError(err, "crew")
	}
	return &c, nil
}

func (r *PGCrewRepository) Create(ctx context.Context, c *domain.Crew) error {
	err := r.db.QueryRow(ctx, `INSERT INTO crew (first_name, last_name, license_number) VALUES ($1, $2, $3) RETURNING id`,
		c.FirstName, c.LastName, c.LicenseNumber).Scan(&c.ID)
	return mapError(err, "crew")
}

func (r *PGCrewRepository) Update(ctx context.Context, c *domain.Crew) error {
	cmd, err := r.db.Exec(ctx, `UPDATE crew SET first_name=$1, last_name=$2, license_number=$3 WHERE id=$4`,
		c.FirstName, c.LastName, c.LicenseNumber, c.ID)
	if err != nil {
		return mapError(err, "crew")
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("crew")
	}
	return nil
}

var _ CrewRepository = (*PGCrewRepository)(nil)
