// Package vehicle implements the Vehicle aggregate: registration data and last-known
// position of a fleet unit.
package vehicle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/ddd"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const aggregateType = "vehicle"

const (
	EventCreated         = "vehicle.created"
	EventLocationUpdated = "vehicle.location_updated"
)

var (
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	ErrCodeIsRequired          = errs.NewValueIsRequiredError("vehicleCode")
	ErrRegistrationIsRequired  = errs.NewValueIsRequiredError("registrationNumber")
)

type Registration struct {
	RegistrationNumber string
	VehicleTypeCode    string
	Make               string
	Model              string
}

// Telemetry is the last reported position and odometer reading.
type Telemetry struct {
	CurrentDriverID        *kernel.UUID
	LastLocation           *kernel.GeoPoint
	LastLocationAt         *time.Time
	CurrentOdometerReading decimal.Decimal
}

type Vehicle struct {
	ddd.AggregateBase

	id           kernel.UUID
	code         string
	registration Registration
	status       Status
	telemetry    Telemetry

	guard guard.ConstructorGuard
}

func NewVehicle(id kernel.UUID, code string, registration Registration, now time.Time) (*Vehicle, error) {
	v := &Vehicle{
		status: Active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setCode(code),
		v.setRegistration(registration),
	); err != nil {
		return nil, err
	}

	v.RecordEvent(ddd.Event{
		Name:          EventCreated,
		AggregateType: aggregateType,
		AggregateID:   v.id.String(),
		OccurredAt:    now,
		Payload:       map[string]any{"vehicleCode": v.code},
	})
	return v, nil
}

func RestoreVehicle(
	id kernel.UUID,
	code string,
	registration Registration,
	status Status,
	telemetry Telemetry,
	version int64,
) (*Vehicle, error) {
	v := &Vehicle{
		telemetry: telemetry,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setCode(code),
		v.setRegistration(registration),
		v.setStatus(status),
		kernel.ValidateOptionalUUIDs(telemetry.CurrentDriverID),
	); err != nil {
		return nil, err
	}

	v.SetVersion(version)
	return v, nil
}

func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

func (v *Vehicle) Code() string {
	return v.code
}

func (v *Vehicle) Registration() Registration {
	return v.registration
}

func (v *Vehicle) Status() Status {
	return v.status
}

func (v *Vehicle) Telemetry() Telemetry {
	return v.telemetry
}

// UpdateLocation stores the reported position. The odometer reading is kept as given
// when present, even if it is lower than the previous one.
func (v *Vehicle) UpdateLocation(location kernel.GeoPoint, odometer *decimal.Decimal, now time.Time) error {
	if err := location.Validate(); err != nil {
		return err
	}
	if odometer != nil && odometer.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("odometerReading", fmt.Errorf("%s is negative", odometer))
	}

	v.telemetry.LastLocation = &location
	v.telemetry.LastLocationAt = &now
	if odometer != nil {
		v.telemetry.CurrentOdometerReading = *odometer
	}

	v.RecordEvent(ddd.Event{
		Name:          EventLocationUpdated,
		AggregateType: aggregateType,
		AggregateID:   v.id.String(),
		OccurredAt:    now,
		Payload: map[string]any{
			"latitude":  location.Latitude(),
			"longitude": location.Longitude(),
		},
	})
	return nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrCodeIsRequired
	}
	v.code = code
	return nil
}

func (v *Vehicle) setRegistration(r Registration) error {
	r.RegistrationNumber = strings.TrimSpace(r.RegistrationNumber)
	if r.RegistrationNumber == "" {
		return ErrRegistrationIsRequired
	}
	v.registration = r
	return nil
}

func (v *Vehicle) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	v.status = status
	return nil
}
