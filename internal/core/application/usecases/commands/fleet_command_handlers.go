package commands

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// CreateDriverCommandHandler rejects a driver whose code or license number is taken.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	clock      ports.Clock
}

func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory, clock ports.Clock) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := driver.NewDriver(cmd.DriverID(), cmd.Code(), cmd.Profile(), h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		repo := uow.DriverRepository()

		exists, existsErr := repo.ExistsByCode(ctx, d.Code())
		if existsErr != nil {
			return existsErr
		}
		if exists {
			return errs.NewObjectAlreadyExistsError("driverCode", d.Code())
		}

		exists, existsErr = repo.ExistsByLicenseNumber(ctx, d.Profile().LicenseNumber)
		if existsErr != nil {
			return existsErr
		}
		if exists {
			return errs.NewObjectAlreadyExistsError("licenseNumber", d.Profile().LicenseNumber)
		}

		return repo.Add(ctx, d)
	})
}

type MarkDriverOnTripCommandHandler struct {
	uowFactory DriverUoWFactory
	clock      ports.Clock
}

func NewMarkDriverOnTripCommandHandler(uowFactory DriverUoWFactory, clock ports.Clock) MarkDriverOnTripCommandHandler {
	return MarkDriverOnTripCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h MarkDriverOnTripCommandHandler) Handle(ctx context.Context, cmd MarkDriverOnTripCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		repo := uow.DriverRepository()
		d, err := repo.Get(ctx, cmd.DriverID())
		if err != nil {
			return err
		}
		if err = d.MarkOnTrip(cmd.TripID(), h.clock.Now()); err != nil {
			return err
		}
		return repo.Update(ctx, d)
	})
}

type MarkDriverAvailableCommandHandler struct {
	uowFactory DriverUoWFactory
	clock      ports.Clock
}

func NewMarkDriverAvailableCommandHandler(uowFactory DriverUoWFactory, clock ports.Clock) MarkDriverAvailableCommandHandler {
	return MarkDriverAvailableCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h MarkDriverAvailableCommandHandler) Handle(ctx context.Context, cmd MarkDriverAvailableCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		repo := uow.DriverRepository()
		d, err := repo.Get(ctx, cmd.DriverID())
		if err != nil {
			return err
		}
		d.MarkAvailable(h.clock.Now())
		return repo.Update(ctx, d)
	})
}

type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
	clock      ports.Clock
}

func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory, clock ports.Clock) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	v, err := vehicle.NewVehicle(cmd.VehicleID(), cmd.Code(), cmd.Registration(), h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		repo := uow.VehicleRepository()

		exists, existsErr := repo.ExistsByCode(ctx, v.Code())
		if existsErr != nil {
			return existsErr
		}
		if exists {
			return errs.NewObjectAlreadyExistsError("vehicleCode", v.Code())
		}

		number := v.Registration().RegistrationNumber
		exists, existsErr = repo.ExistsByRegistrationNumber(ctx, number)
		if existsErr != nil {
			return existsErr
		}
		if exists {
			return errs.NewObjectAlreadyExistsError("registrationNumber", number)
		}

		return repo.Add(ctx, v)
	})
}

type UpdateVehicleLocationCommandHandler struct {
	uowFactory VehicleUoWFactory
	clock      ports.Clock
}

func NewUpdateVehicleLocationCommandHandler(uowFactory VehicleUoWFactory, clock ports.Clock) UpdateVehicleLocationCommandHandler {
	return UpdateVehicleLocationCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h UpdateVehicleLocationCommandHandler) Handle(ctx context.Context, cmd UpdateVehicleLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		repo := uow.VehicleRepository()
		v, err := repo.Get(ctx, cmd.VehicleID())
		if err != nil {
			return err
		}
		if err = v.UpdateLocation(cmd.Location(), cmd.Odometer(), h.clock.Now()); err != nil {
			return err
		}
		return repo.Update(ctx, v)
	})
}
