package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
)

var driverProfile = driver.Profile{Name: "Ravi Kumar", LicenseNumber: "MH12-2019-0042"}

func TestCreateDriverCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name          string
		codeTaken     bool
		licenseTaken  bool
		wantErrParam  string
		wantAddCalled bool
	}{
		{name: "success", wantAddCalled: true},
		{name: "code taken", codeTaken: true, wantErrParam: "driverCode"},
		{name: "license taken", licenseTaken: true, wantErrParam: "licenseNumber"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewCreateDriverCommand(kernel.NewUUID(), "DRV-001", driverProfile)
			require.NoError(t, err)

			drivers := new(MockDriverRepository)
			uow := new(MockUoW)
			uow.On("DriverRepository").Return(drivers).Once()
			drivers.On("ExistsByCode", ctx, "DRV-001").Return(tt.codeTaken, nil).Once()
			drivers.On("ExistsByLicenseNumber", ctx, driverProfile.LicenseNumber).Return(tt.licenseTaken, nil).Maybe()
			if tt.wantAddCalled {
				expectCommit(ctx, uow)
				drivers.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once()
			} else {
				expectRollback(ctx, uow)
			}

			h := commands.NewCreateDriverCommandHandler(driverUoWFactory{uow}, clockz.NewFakeClock())
			err = h.Handle(ctx, cmd)

			if tt.wantErrParam == "" {
				require.NoError(t, err)
				drivers.AssertExpectations(t)
				return
			}
			var exists *errs.ObjectAlreadyExistsError
			require.ErrorAs(t, err, &exists)
			assert.Equal(t, tt.wantErrParam, exists.ParamName)
			drivers.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateDriverCommandHandler_Handle_NameIsRequired(t *testing.T) {
	cmd, err := commands.NewCreateDriverCommand(kernel.NewUUID(), "DRV-001", driver.Profile{LicenseNumber: "L-1"})
	require.NoError(t, err)

	h := commands.NewCreateDriverCommandHandler(driverUoWFactory{new(MockUoW)}, clockz.NewFakeClock())
	require.ErrorIs(t, h.Handle(t.Context(), cmd), driver.ErrNameIsRequired)
}

func TestMarkDriverOnTripCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	clock := clockz.NewFakeClock()
	d, err := driver.NewDriver(kernel.NewUUID(), "DRV-001", driverProfile, clock.Now())
	require.NoError(t, err)
	tripID := kernel.NewUUID()

	drivers := new(MockDriverRepository)
	uow := new(MockUoW)
	expectCommit(ctx, uow)
	uow.On("DriverRepository").Return(drivers).Once()
	drivers.On("Get", ctx, d.ID()).Return(d, nil).Once()
	drivers.On("Update", ctx, d).Return(nil).Once()

	cmd, err := commands.NewMarkDriverOnTripCommand(d.ID(), tripID)
	require.NoError(t, err)

	h := commands.NewMarkDriverOnTripCommandHandler(driverUoWFactory{uow}, clock)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, driver.OnTrip, d.Status())
	assert.False(t, d.Availability().IsAvailable)
	require.NotNil(t, d.Availability().CurrentTripID)
	assert.Equal(t, tripID, *d.Availability().CurrentTripID)
	assert.Equal(t, 1, d.Stats().TotalTrips)
}

func TestNewMarkDriverOnTripCommand_TripIsRequired(t *testing.T) {
	_, err := commands.NewMarkDriverOnTripCommand(kernel.NewUUID(), kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestMarkDriverAvailableCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	clock := clockz.NewFakeClock()
	d, err := driver.NewDriver(kernel.NewUUID(), "DRV-001", driverProfile, clock.Now())
	require.NoError(t, err)
	require.NoError(t, d.MarkOnTrip(kernel.NewUUID(), clock.Now()))

	drivers := new(MockDriverRepository)
	uow := new(MockUoW)
	expectCommit(ctx, uow)
	uow.On("DriverRepository").Return(drivers).Once()
	drivers.On("Get", ctx, d.ID()).Return(d, nil).Once()
	drivers.On("Update", ctx, d).Return(nil).Once()

	cmd, err := commands.NewMarkDriverAvailableCommand(d.ID())
	require.NoError(t, err)

	h := commands.NewMarkDriverAvailableCommandHandler(driverUoWFactory{uow}, clock)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, driver.Active, d.Status())
	assert.True(t, d.Availability().IsAvailable)
	assert.Nil(t, d.Availability().CurrentTripID)
}

func TestCreateVehicleCommandHandler_Handle_RegistrationTaken(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateVehicleCommand(kernel.NewUUID(), "VEH-001", vehicle.Registration{RegistrationNumber: "MH12AB1234"})
	require.NoError(t, err)

	vehicles := new(MockVehicleRepository)
	uow := new(MockUoW)
	expectRollback(ctx, uow)
	uow.On("VehicleRepository").Return(vehicles).Once()
	vehicles.On("ExistsByCode", ctx, "VEH-001").Return(false, nil).Once()
	vehicles.On("ExistsByRegistrationNumber", ctx, "MH12AB1234").Return(true, nil).Once()

	h := commands.NewCreateVehicleCommandHandler(vehicleUoWFactory{uow}, clockz.NewFakeClock())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectAlreadyExists)
	vehicles.AssertExpectations(t)
}

func TestCreateVehicleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateVehicleCommand(kernel.NewUUID(), "VEH-001", vehicle.Registration{RegistrationNumber: "MH12AB1234"})
	require.NoError(t, err)

	vehicles := new(MockVehicleRepository)
	uow := new(MockUoW)
	expectCommit(ctx, uow)
	uow.On("VehicleRepository").Return(vehicles).Once()
	vehicles.On("ExistsByCode", ctx, "VEH-001").Return(false, nil).Once()
	vehicles.On("ExistsByRegistrationNumber", ctx, "MH12AB1234").Return(false, nil).Once()
	vehicles.On("Add", ctx, mock.AnythingOfType("*vehicle.Vehicle")).Return(nil).Once()

	h := commands.NewCreateVehicleCommandHandler(vehicleUoWFactory{uow}, clockz.NewFakeClock())
	require.NoError(t, h.Handle(ctx, cmd))
	vehicles.AssertExpectations(t)
}

func TestUpdateVehicleLocationCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	clock := clockz.NewFakeClock()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "VEH-001", vehicle.Registration{RegistrationNumber: "MH12AB1234"}, clock.Now())
	require.NoError(t, err)

	vehicles := new(MockVehicleRepository)
	uow := new(MockUoW)
	expectCommit(ctx, uow)
	uow.On("VehicleRepository").Return(vehicles).Once()
	vehicles.On("Get", ctx, v.ID()).Return(v, nil).Once()
	vehicles.On("Update", ctx, v).Return(nil).Once()

	odometer := decimal.RequireFromString("15230.5")
	cmd, err := commands.NewUpdateVehicleLocationCommand(v.ID(), 18.52, 73.85, &odometer)
	require.NoError(t, err)

	h := commands.NewUpdateVehicleLocationCommandHandler(vehicleUoWFactory{uow}, clock)
	require.NoError(t, h.Handle(ctx, cmd))

	telemetry := v.Telemetry()
	require.NotNil(t, telemetry.LastLocation)
	assert.Equal(t, "18.52, 73.85", telemetry.LastLocation.String())
	assert.True(t, odometer.Equal(telemetry.CurrentOdometerReading))
}

func TestNewUpdateVehicleLocationCommand_AcceptsAnyFiniteCoordinates(t *testing.T) {
	cmd, err := commands.NewUpdateVehicleLocationCommand(kernel.NewUUID(), -120, 361, nil)

	require.NoError(t, err)
	assert.Equal(t, "-120, 361", cmd.Location().String())
	assert.Nil(t, cmd.Odometer())
}
