package fleet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ghoomlo/cab-booking/internal/domain"
)

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, id string, details domain.VehicleDetails) (*domain.Vehicle, error) {
	args := m.Called(ctx, id, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) UpdatePrices(ctx context.Context, id string, rate, minKilometers float64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id, rate, minKilometers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func validDetails() domain.VehicleDetails {
	return domain.VehicleDetails{
		Name:               "Swift Dzire",
		Type:               "Sedan",
		RegistrationNumber: "DL01AB1234",
		Rate:               12.5,
		SeatCount:          4,
		MinKilometers:      50,
	}
}

func TestAddVehicle(t *testing.T) {
	repo := &MockVehicleRepository{}
	service := NewFleetService(repo)

	ctx := context.Background()
	repo.On("Create", ctx, mock.Anything).Return(nil).Once()

	vehicle, err := service.AddVehicle(ctx, validDetails())

	assert.NoError(t, err)
	assert.Equal(t, "Swift Dzire", vehicle.Name)
	assert.Equal(t, "DL01AB1234", vehicle.RegistrationNumber)
	repo.AssertExpectations(t)
}

func TestAddVehicleValidation(t *testing.T) {
	service := NewFleetService(&MockVehicleRepository{})
	ctx := context.Background()

	missingName := validDetails()
	missingName.Name = ""
	_, err := service.AddVehicle(ctx, missingName)
	assert.Error(t, err)

	zeroRate := validDetails()
	zeroRate.Rate = 0
	_, err = service.AddVehicle(ctx, zeroRate)
	assert.Error(t, err)

	noSeats := validDetails()
	noSeats.SeatCount = 0
	_, err = service.AddVehicle(ctx, noSeats)
	assert.Error(t, err)
}

func TestAddVehicleDuplicateRegistration(t *testing.T) {
	repo := &MockVehicleRepository{}
	service := NewFleetService(repo)

	ctx := context.Background()
	repo.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicateRegistration).Once()

	_, err := service.AddVehicle(ctx, validDetails())
	assert.ErrorIs(t, err, domain.ErrDuplicateRegistration)
}

func TestUpdateVehiclePrices(t *testing.T) {
	repo := &MockVehicleRepository{}
	service := NewFleetService(repo)

	ctx := context.Background()
	updated := &domain.Vehicle{Name: "Swift Dzire", Rate: 15, MinKilometers: 60}
	repo.On("UpdatePrices", ctx, "v1", 15.0, 60.0).Return(updated, nil).Once()

	vehicle, err := service.UpdateVehiclePrices(ctx, "v1", 15, 60)

	assert.NoError(t, err)
	assert.Equal(t, 15.0, vehicle.Rate)
	assert.Equal(t, 60.0, vehicle.MinKilometers)
	repo.AssertExpectations(t)
}

func TestUpdateVehiclePricesRejectsNonPositiveRate(t *testing.T) {
	service := NewFleetService(&MockVehicleRepository{})

	_, err := service.UpdateVehiclePrices(context.Background(), "v1", 0, 60)
	assert.Error(t, err)
}

func TestUpdateVehicleNotFound(t *testing.T) {
	repo := &MockVehicleRepository{}
	service := NewFleetService(repo)

	ctx := context.Background()
	repo.On("Update", ctx, "missing", mock.Anything).Return(nil, domain.ErrNotFound).Once()

	_, err := service.UpdateVehicle(ctx, "missing", validDetails())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListVehicles(t *testing.T) {
	repo := &MockVehicleRepository{}
	service := NewFleetService(repo)

	ctx := context.Background()
	fleet := []domain.Vehicle{{Name: "Swift Dzire"}, {Name: "Innova"}}
	repo.On("List", ctx).Return(fleet, nil).Once()

	got, err := service.ListVehicles(ctx)

	assert.NoError(t, err)
	assert.Equal(t, fleet, got)
}
