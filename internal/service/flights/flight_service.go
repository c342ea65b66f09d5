package flights

import (
	"context"

	"github.com/Domenick1991/airport/internal/domain"
	"github.com/Domenick1991/airport/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context, filter domain.FlightFilter) ([]domain.FlightSummary, error)
	Get(ctx context.Context, id int64) (*domain.FlightDetail, error)
	Create(ctx context.Context, flight *domain.Flight) (*domain.FlightDetail, error)
	Update(ctx context.Context, flight *domain.Flight) (*domain.FlightDetail, error)
	SeatsLeft(ctx context.Context, id int64) (int, error)
}

// FlightService reads flights straight from storage: seats_left changes with
// every order, so flight listings are not cached.
type FlightService struct {
	repo repository.FlightRepository
}

func NewFlightService(repo repository.FlightRepository) *FlightService {
	return &FlightService{repo: repo}
}

func (s *FlightService) List(ctx context.Context, filter domain.FlightFilter) ([]domain.FlightSummary, error) {
	for _, st := range filter.Statuses {
		if !st.Valid() {
			return nil, domain.NewValidationError(domain.CodeInvalid, map[string]string{
				"statuses": `"` + string(st) + `" is not a valid choice`,
			})
		}
	}
	return s.repo.List(ctx, filter)
}

func (s *FlightService) Get(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	return s.repo.GetDetail(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, flight *domain.Flight) (*domain.FlightDetail, error) {
	flight.Normalize()
	if err := flight.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}
	return s.repo.GetDetail(ctx, flight.ID)
}

func (s *FlightService) Update(ctx context.Context, flight *domain.Flight) (*domain.FlightDetail, error) {
	flight.Normalize()
	if err := flight.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, flight); err != nil {
		return nil, err
	}
	return s.repo.GetDetail(ctx, flight.ID)
}

// SeatsLeft is advisory: a later order may still fail on an already taken seat.
func (s *FlightService) SeatsLeft(ctx context.Context, id int64) (int, error) {
	return s.repo.SeatsLeft(ctx, id)
}

var _ FlightUseCase = (*FlightService)(nil)
