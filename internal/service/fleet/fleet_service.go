package fleet

import (
	"context"
	"errors"

	"github.com/ghoomlo/cab-booking/internal/domain"
	"github.com/ghoomlo/cab-booking/internal/repository"
)

type FleetUseCase interface {
	AddVehicle(ctx context.Context, details domain.VehicleDetails) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, details domain.VehicleDetails) (*domain.Vehicle, error)
	UpdateVehiclePrices(ctx context.Context, id string, rate, minKilometers float64) (*domain.Vehicle, error)
	RemoveVehicle(ctx context.Context, id string) error
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
}

type FleetService struct {
	vehicles repository.VehicleRepository
}

func NewFleetService(vehicles repository.VehicleRepository) *FleetService {
	return &FleetService{vehicles: vehicles}
}

func (s *FleetService) AddVehicle(ctx context.Context, details domain.VehicleDetails) (*domain.Vehicle, error) {
	if details.Name == "" || details.Type == "" || details.RegistrationNumber == "" {
		return nil, errors.New("name, type and registrationNumber are required")
	}
	if details.Rate <= 0 || details.SeatCount <= 0 {
		return nil, errors.New("rate and seatCount must be positive")
	}

	vehicle := &domain.Vehicle{
		Name:               details.Name,
		Type:               details.Type,
		RegistrationNumber: details.RegistrationNumber,
		Rate:               details.Rate,
		Images:             details.Images,
		SeatCount:          details.SeatCount,
		MinKilometers:      details.MinKilometers,
	}
	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *FleetService) UpdateVehicle(ctx context.Context, id string, details domain.VehicleDetails) (*domain.Vehicle, error) {
	return s.vehicles.Update(ctx, id, details)
}

// UpdateVehiclePrices patches rate and minKilometers only.
func (s *FleetService) UpdateVehiclePrices(ctx context.Context, id string, rate, minKilometers float64) (*domain.Vehicle, error) {
	if rate <= 0 {
		return nil, errors.New("rate must be positive")
	}
	return s.vehicles.UpdatePrices(ctx, id, rate, minKilometers)
}

func (s *FleetService) RemoveVehicle(ctx context.Context, id string) error {
	return s.vehicles.Delete(ctx, id)
}

func (s *FleetService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicles.List(ctx)
}

var _ FleetUseCase = (*FleetService)(nil)
