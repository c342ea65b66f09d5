package api

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockInventoryUseCase struct {
	mock.Mock
}

func (m *MockInventoryUseCase) ListManufacturers(ctx context.Context) ([]domain.Manufacturer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Manufacturer), args.Error(1)
}

func (m *MockInventoryUseCase) CreateManufacturer(ctx context.Context, v *domain.Manufacturer) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockInventoryUseCase) ListAircraftTypes(ctx context.Context) ([]domain.AircraftType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AircraftType), args.Error(1)
}

func (m *MockInventoryUseCase) CreateAircraftType(ctx context.Context, v *domain.AircraftType) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockInventoryUseCase) ListAircraft(ctx context.Context, typeIDs []int64) ([]domain.Aircraft, error) {
	args := m.Called(ctx, typeIDs)
	return args.Get(0).([]domain.Aircraft), args.Error(1)
}

func (m *MockInventoryUseCase) GetAircraft(ctx context.Context, id int64) (*domain.Aircraft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Aircraft), args.Error(1)
}

func (m *MockInventoryUseCase) CreateAircraft(ctx context.Context, v *domain.Aircraft) (*domain.Aircraft, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Aircraft), args.Error(1)
}

func (m *MockInventoryUseCase) UpdateAircraft(ctx context.Context, v *domain.Aircraft) (*domain.Aircraft, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Aircraft), args.Error(1)
}

func (m *MockInventoryUseCase) ListAirlines(ctx context.Context) ([]domain.Airline, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airline), args.Error(1)
}

func (m *MockInventoryUseCase) GetAirline(ctx context.Context, iata string) (*domain.Airline, error) {
	args := m.Called(ctx, iata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airline), args.Error(1)
}

func (m *MockInventoryUseCase) CreateAirline(ctx context.Context, v *domain.Airline) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockInventoryUseCase) UpdateAirline(ctx context.Context, iata string, v *domain.Airline) error {
	return m.Called(ctx, iata, v).Error(0)
}

func (m *MockInventoryUseCase) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockInventoryUseCase) GetAirport(ctx context.Context, iata string) (*domain.Airport, error) {
	args := m.Called(ctx, iata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockInventoryUseCase) CreateAirport(ctx context.Context, v *domain.Airport) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockInventoryUseCase) UpdateAirport(ctx context.Context, iata string, v *domain.Airport) error {
	return m.Called(ctx, iata, v).Error(0)
}

func (m *MockInventoryUseCase) ListCrew(ctx context.Context) ([]domain.Crew, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Crew), args.Error(1)
}

func (m *MockInventoryUseCase) GetCrew(ctx context.Context, id int64) (*domain.Crew, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crew), args.Error(1)
}

func (m *MockInventoryUseCase) CreateCrew(ctx context.Context, v *domain.Crew) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockInventoryUseCase) UpdateCrew(ctx context.Context, v *domain.Crew) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockInventoryUseCase) ListRoutes(ctx context.Context, sources, destinations []string) ([]domain.Route, error) {
	args := m.Called(ctx, sources, destinations)
	return args.Get(0).([]domain.Route), args.Error(1)
}

func (m *MockInventoryUseCase) GetRoute(ctx context.Context, id int64) (*domain.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockInventoryUseCase) CreateRoute(ctx context.Context, v *domain.Route) (*domain.Route, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockInventoryUseCase) UpdateRoute(ctx context.Context, v *domain.Route) (*domain.Route, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}
