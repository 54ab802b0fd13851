package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateDriverCommandIsNotConstructed  = errors.New("CreateDriverCommand must be created via NewCreateDriverCommand constructor")
	ErrCreateVehicleCommandIsNotConstructed = errors.New("CreateVehicleCommand must be created via NewCreateVehicleCommand constructor")
	ErrDriverCodeIsRequired                 = errs.NewValueIsRequiredError("driverCode")
	ErrVehicleCodeIsRequired                = errs.NewValueIsRequiredError("vehicleCode")
)

type CreateDriverCommand struct {
	driverID kernel.UUID
	code     string
	profile  driver.Profile

	guard guard.ConstructorGuard
}

func NewCreateDriverCommand(driverID kernel.UUID, code string, profile driver.Profile) (CreateDriverCommand, error) {
	code = strings.TrimSpace(code)

	var codeErr error
	if code == "" {
		codeErr = ErrDriverCodeIsRequired
	}
	if err := errors.Join(driverID.Validate(), codeErr); err != nil {
		return CreateDriverCommand{}, err
	}

	return CreateDriverCommand{
		driverID: driverID,
		code:     code,
		profile:  profile,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c CreateDriverCommand) Code() string {
	return c.code
}

func (c CreateDriverCommand) Profile() driver.Profile {
	return c.profile
}

// MarkDriverOnTripCommand commits a driver to a trip.
type MarkDriverOnTripCommand struct {
	aggregateRef
	tripID kernel.UUID
}

func NewMarkDriverOnTripCommand(driverID, tripID kernel.UUID) (MarkDriverOnTripCommand, error) {
	ref, refErr := newAggregateRef(driverID)
	if err := errors.Join(refErr, tripID.Validate()); err != nil {
		return MarkDriverOnTripCommand{}, err
	}
	return MarkDriverOnTripCommand{aggregateRef: ref, tripID: tripID}, nil
}

func (c MarkDriverOnTripCommand) DriverID() kernel.UUID {
	return c.id
}

func (c MarkDriverOnTripCommand) TripID() kernel.UUID {
	return c.tripID
}

type MarkDriverAvailableCommand struct{ aggregateRef }

func NewMarkDriverAvailableCommand(driverID kernel.UUID) (MarkDriverAvailableCommand, error) {
	ref, err := newAggregateRef(driverID)
	return MarkDriverAvailableCommand{ref}, err
}

func (c MarkDriverAvailableCommand) DriverID() kernel.UUID {
	return c.id
}

type CreateVehicleCommand struct {
	vehicleID    kernel.UUID
	code         string
	registration vehicle.Registration

	guard guard.ConstructorGuard
}

func NewCreateVehicleCommand(vehicleID kernel.UUID, code string, registration vehicle.Registration) (CreateVehicleCommand, error) {
	code = strings.TrimSpace(code)

	var codeErr error
	if code == "" {
		codeErr = ErrVehicleCodeIsRequired
	}
	if err := errors.Join(vehicleID.Validate(), codeErr); err != nil {
		return CreateVehicleCommand{}, err
	}

	return CreateVehicleCommand{
		vehicleID:    vehicleID,
		code:         code,
		registration: registration,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

func (c CreateVehicleCommand) Code() string {
	return c.code
}

func (c CreateVehicleCommand) Registration() vehicle.Registration {
	return c.registration
}

// UpdateVehicleLocationCommand carries a position report. The odometer reading is optional.
type UpdateVehicleLocationCommand struct {
	aggregateRef
	location kernel.GeoPoint
	odometer *decimal.Decimal
}

func NewUpdateVehicleLocationCommand(
	vehicleID kernel.UUID,
	latitude, longitude float64,
	odometer *decimal.Decimal,
) (UpdateVehicleLocationCommand, error) {
	ref, refErr := newAggregateRef(vehicleID)
	location, locErr := kernel.NewReportedGeoPoint(latitude, longitude)
	if err := errors.Join(refErr, locErr); err != nil {
		return UpdateVehicleLocationCommand{}, err
	}
	return UpdateVehicleLocationCommand{aggregateRef: ref, location: location, odometer: odometer}, nil
}

func (c UpdateVehicleLocationCommand) VehicleID() kernel.UUID {
	return c.id
}

func (c UpdateVehicleLocationCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c UpdateVehicleLocationCommand) Odometer() *decimal.Decimal {
	return c.odometer
}
