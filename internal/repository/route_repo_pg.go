package repository

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RouteRepository interface {
	// List filters by source/destination IATA codes; nil means no filter.
	List(ctx context.Context, sources, destinations []string) ([]domain.Route, error)
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
	Create(ctx context.Context, r *domain.Route) error
	Update(ctx context.Context, r *domain.Route) error
}

type PGRouteRepository struct {
	db *pgxpool.Pool
}

func NewRouteRepository(db *pgxpool.Pool) RouteRepository {
	return &PGRouteRepository{db: db}
}

const routeSelect = `SELECT r.id, r.source_id, r.destination_id, r.distance,
		src.id, src.iata_code, src.icao_code, src.name, src.nearest_city, src.info,
		dst.id, dst.iata_code, dst.icao_code, dst.name, dst.nearest_city, dst.info
	FROM routes r
	JOIN airports src ON src.id = r.source_id
	JOIN airports dst ON dst.id = r.destination_id`

func (r *PGRouteRepository) List(ctx context.Context, sources, destinations []string) ([]domain.Route, error) {
	rows, err := r.db.Query(ctx, routeSelect+`
		WHERE ($1::text[] IS NULL OR src.iata_code = ANY($1))
		  AND ($2::text[] IS NULL OR dst.iata_code = ANY($2))
		ORDER BY r.id`, sources, destinations)
	if err != nil {
		return nil, mapError(err, "route")
	}
	defer rows.Close()

	list := make([]domain.Route, 0)
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *route)
	}
	return list, rows.Err()
}

func (r *PGRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	route, err := scanRoute(r.db.QueryRow(ctx, routeSelect+` WHERE r.id=$1`, id))
	if err != nil {
		return nil, mapError(err, "route")
	}
	return route, nil
}

func (r *PGRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	err := r.db.QueryRow(ctx, `INSERT INTO routes (source_id, destination_id, distance) VALUES ($1, $2, $3) RETURNING id`,
		route.SourceID, route.DestinationID, route.Distance).Scan(&route.ID)
	return mapError(err, "route")
}

func (r *PGRouteRepository) Update(ctx context.Context, route *domain.Route) error {
	cmd, err := r.db.Exec(ctx, `UPDATE routes SET source_id=$1, destination_id=$2, distance=$3 WHERE id=$4`,
		route.SourceID, route.DestinationID, route.Distance, route.ID)
	if err != nil {
		return mapError(err, "route")
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("route")
	}
	return nil
}

func scanRoute(row pgx.Row) (*domain.Route, error) {
	var r domain.Route
	err := row.Scan(&r.ID, &r.SourceID, &r.DestinationID, &r.Distance,
		&r.Source.ID, &r.Source.IATACode, &r.Source.ICAOCode, &r.Source.Name, &r.Source.NearestCity, &r.Source.Info,
		&r.Destination.ID, &r.Destination.IATACode, &r.Destination.ICAOCode, &r.Destination.Name, &r.Destination.NearestCity, &r.Destination.Info)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

var _ RouteRepository = (*PGRouteRepository)(nil)
