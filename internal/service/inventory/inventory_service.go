package inventory

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/airport/internal/cache"
	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/repository"
)

type InventoryUseCase interface {
	ListManufacturers(ctx context.Context) ([]domain.Manufacturer, error)
	CreateManufacturer(ctx context.Context, m *domain.Manufacturer) error
	ListAircraftTypes(ctx context.Context) ([]domain.AircraftType, error)
	CreateAircraftType(ctx context.Context, t *domain.AircraftType) error
	ListAircraft(ctx context.Context, typeIDs []int64) ([]domain.Aircraft, error)
	GetAircraft(ctx context.Context, id int64) (*domain.Aircraft, error)
	CreateAircraft(ctx context.Context, a *domain.Aircraft) (*domain.Aircraft, error)
	UpdateAircraft(ctx context.Context, a *domain.Aircraft) (*domain.Aircraft, error)
	ListAirlines(ctx context.Context) ([]domain.Airline, error)
	GetAirline(ctx context.Context, iata string) (*domain.Airline, error)
	CreateAirline(ctx context.Context, a *domain.Airline) error
	UpdateAirline(ctx context.Context, iata string, a *domain.Airline) error
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	GetAirport(ctx context.Context, iata string) (*domain.Airport, error)
	CreateAirport(ctx context.Context, a *domain.Airport) error
	UpdateAirport(ctx context.Context, iata string, a *domain.Airport) error
	ListCrew(ctx context.Context) ([]domain.Crew, error)
	GetCrew(ctx context.Context, id int64) (*domain.Crew, error)
	CreateCrew(ctx context.Context, c *domain.Crew) error
	UpdateCrew(ctx context.Context, c *domain.Crew) error
	ListRoutes(ctx context.Context, sources, destinations []string) ([]domain.Route, error)
	GetRoute(ctx context.Context, id int64) (*domain.Route, error)
	CreateRoute(ctx context.Context, r *domain.Route) (*domain.Route, error)
	UpdateRoute(ctx context.Context, r *domain.Route) (*domain.Route, error)
}

// Cache stores reference lists. A nil Cache disables caching.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, keys ...string) error
	InvalidatePattern(ctx context.Context, pattern string) error
}

type InventoryService struct {
	aircraft repository.AircraftRepository
	airlines repository.AirlineRepository
	airports repository.AirportRepository
	crew     repository.CrewRepository
	routes   repository.RouteRepository
	cache    Cache
	now      func() time.Time
}

type InventoryServiceOption func(*InventoryService)

func WithCache(c Cache) InventoryServiceOption {
	return func(s *InventoryService) {
		s.cache = c
	}
}

func WithClock(now func() time.Time) InventoryServiceOption {
	return func(s *InventoryService) {
		s.now = now
	}
}

func NewInventoryService(
	aircraft repository.AircraftRepository,
	airlines repository.AirlineRepository,
	airports repository.AirportRepository,
	crew repository.CrewRepository,
	routes repository.RouteRepository,
	opts ...InventoryServiceOption,
) *InventoryService {
	s := &InventoryService{
		aircraft: aircraft,
		airlines: airlines,
		airports: airports,
		crew:     crew,
		routes:   routes,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// cachedList serves key from the cache and falls back to load on a miss or
// cache failure.
func cachedList[T any](ctx context.Context, c Cache, key string, load func() ([]T, error)) ([]T, error) {
	if c != nil {
		var cached []T
		if ok, err := c.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		} else if err != nil {
			log.Printf("WARNING: cache read %s: %v", key, err)
		}
	}

	list, err := load()
	if err != nil {
		return nil, err
	}
	if c != nil {
		if err := c.SetJSON(ctx, key, list); err != nil {
			log.Printf("WARNING: cache write %s: %v", key, err)
		}
	}
	return list, nil
}

func (s *InventoryService) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		log.Printf("WARNING: cache invalidate %v: %v", keys, err)
	}
}

func (s *InventoryService) invalidatePattern(ctx context.Context, pattern string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidatePattern(ctx, pattern); err != nil {
		log.Printf("WARNING: cache invalidate %s: %v", pattern, err)
	}
}

func (s *InventoryService) ListManufacturers(ctx context.Context) ([]domain.Manufacturer, error) {
	return cachedList(ctx, s.cache, cache.KeyManufacturers, func() ([]domain.Manufacturer, error) {
		return s.aircraft.ListManufacturers(ctx)
	})
}

func (s *InventoryService) CreateManufacturer(ctx context.Context, m *domain.Manufacturer) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := s.aircraft.CreateManufacturer(ctx, m); err != nil {
		return err
	}
	s.invalidate(ctx, cache.KeyManufacturers)
	return nil
}

func (s *InventoryService) ListAircraftTypes(ctx context.Context) ([]domain.AircraftType, error) {
	return cachedList(ctx, s.cache, cache.KeyAircraftTypes, func() ([]domain.AircraftType, error) {
		return s.aircraft.ListTypes(ctx)
	})
}

func (s *InventoryService) CreateAircraftType(ctx context.Context, t *domain.AircraftType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := s.aircraft.CreateType(ctx, t); err != nil {
		return err
	}
	s.invalidate(ctx, cache.KeyAircraftTypes)
	return nil
}

func (s *InventoryService) ListAircraft(ctx context.Context, typeIDs []int64) ([]domain.Aircraft, error) {
	return cachedList(ctx, s.cache, cache.AircraftKey(idsKey(typeIDs)), func() ([]domain.Aircraft, error) {
		return s.aircraft.List(ctx, typeIDs)
	})
}

func (s *InventoryService) GetAircraft(ctx context.Context, id int64) (*domain.Aircraft, error) {
	return s.aircraft.GetByID(ctx, id)
}

func (s *InventoryService) CreateAircraft(ctx context.Context, a *domain.Aircraft) (*domain.Aircraft, error) {
	a.Normalize()
	if err := a.Validate(s.now()); err != nil {
		return nil, err
	}
	if err := s.aircraft.Create(ctx, a); err != nil {
		return nil, err
	}
	s.invalidatePattern(ctx, cache.AircraftPattern)
	return s.aircraft.GetByID(ctx, a.ID)
}

func (s *InventoryService) UpdateAircraft(ctx context.Context, a *domain.Aircraft) (*domain.Aircraft, error) {
	a.Normalize()
	if err := a.Validate(s.now()); err != nil {
		return nil, err
	}
	if err := s.aircraft.Update(ctx, a); err != nil {
		return nil, err
	}
	s.invalidatePattern(ctx, cache.AircraftPattern)
	return s.aircraft.GetByID(ctx, a.ID)
}

func (s *InventoryService) ListAirlines(ctx context.Context) ([]domain.Airline, error) {
	return cachedList(ctx, s.cache, cache.KeyAirlines, func() ([]domain.Airline, error) {
		return s.airlines.List(ctx)
	})
}

func (s *InventoryService) GetAirline(ctx context.Context, iata string) (*domain.Airline, error) {
	return s.airlines.GetByIATA(ctx, strings.ToUpper(iata))
}

func (s *InventoryService) CreateAirline(ctx context.Context, a *domain.Airline) error {
	a.Normalize()
	if err := a.Validate(); err != nil {
		return err
	}
	if err := s.airlines.Create(ctx, a); err != nil {
		return err
	}
	s.invalidate(ctx, cache.KeyAirlines)
	return nil
}

// UpdateAirline replaces the airline currently known by iata.
func (s *InventoryService) UpdateAirline(ctx context.Context, iata string, a *domain.Airline) error {
	a.Normalize()
	if err := a.Validate(); err != nil {
		return err
	}
	if err := s.airlines.UpdateByIATA(ctx, strings.ToUpper(iata), a); err != nil {
		return err
	}
	s.invalidate(ctx, cache.KeyAirlines)
	return nil
}

func (s *InventoryService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	return cachedList(ctx, s.cache, cache.KeyAirports, func() ([]domain.Airport, error) {
		return s.airports.List(ctx)
	})
}

func (s *InventoryService) GetAirport(ctx context.Context, iata string) (*domain.Airport, error) {
	return s.airports.GetByIATA(ctx, strings.ToUpper(iata))
}

func (s *InventoryService) CreateAirport(ctx context.Context, a *domain.Airport) error {
	a.Normalize()
	if err := a.Validate(); err != nil {
		return err
	}
	if err := s.airports.Create(ctx, a); err != nil {
		return err
	}
	s.invalidate(ctx, cache.KeyAirports)
	return nil
}

// UpdateAirport also drops cached routes, which embed airport data.
func (s *InventoryService) UpdateAirport(ctx context.Context, iata string, a *domain.Airport) error {
	a.Normalize()
	if err := a.Validate(); err != nil {
		return err
	}
	if err := s.airports.UpdateByIATA(ctx, strings.ToUpper(iata), a); err != nil {
		return err
	}
	s.invalidate(ctx, cache.KeyAirports)
	s.invalidatePattern(ctx, cache.RoutePattern)
	return nil
}

func (s *InventoryService) ListCrew(ctx context.Context) ([]domain.Crew, error) {
	return cachedList(ctx, s.cache, cache.KeyCrew, func() ([]domain.Crew, error) {
		return s.crew.List(ctx)
	})
}

func (s *InventoryService) GetCrew(ctx context.Context, id int64) (*domain.Crew, error) {
	return s.crew.GetByID(ctx, id)
}

func (s *InventoryService) CreateCrew(ctx context.Context, c *domain.Crew) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := s.crew.Create(ctx, c); err != nil {
		return err
	}
	s.invalidate(ctx, cache.KeyCrew)
	return nil
}

func (s *InventoryService) UpdateCrew(ctx context.Context, c *domain.Crew) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := s.crew.Update(ctx, c); err != nil {
		return err
	}
	s.invalidate(ctx, cache.KeyCrew)
	return nil
}

// ListRoutes filters by source and destination IATA codes, case-insensitively.
func (s *InventoryService) ListRoutes(ctx context.Context, sources, destinations []string) ([]domain.Route, error) {
	sources, destinations = upperAll(sources), upperAll(destinations)
	key := cache.RouteKey(strings.Join(sources, ",") + "|" + strings.Join(destinations, ","))
	return cachedList(ctx, s.cache, key, func() ([]domain.Route, error) {
		return s.routes.List(ctx, sources, destinations)
	})
}

func (s *InventoryService) GetRoute(ctx context.Context, id int64) (*domain.Route, error) {
	return s.routes.GetByID(ctx, id)
}

func (s *InventoryService) CreateRoute(ctx context.Context, r *domain.Route) (*domain.Route, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := s.routes.Create(ctx, r); err != nil {
		return nil, err
	}
	s.invalidatePattern(ctx, cache.RoutePattern)
	return s.routes.GetByID(ctx, r.ID)
}

func (s *InventoryService) UpdateRoute(ctx context.Context, r *domain.Route) (*domain.Route, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := s.routes.Update(ctx, r); err != nil {
		return nil, err
	}
	s.invalidatePattern(ctx, cache.RoutePattern)
	return s.routes.GetByID(ctx, r.ID)
}

func upperAll(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.ToUpper(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func idsKey(ids []int64) string {
	if ids == nil {
		return "all"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

var _ InventoryUseCase = (*InventoryService)(nil)
