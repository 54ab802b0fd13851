package driver

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

const aggregateType = "driver"

const (
	EventCreated         = "driver.created"
	EventMarkedOnTrip    = "driver.marked_on_trip"
	EventMarkedAvailable = "driver.marked_available"
)

var (
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	ErrCodeIsRequired         = errs.NewValueIsRequiredError("driverCode")
	ErrNameIsRequired         = errs.NewValueIsRequiredError("name")
	ErrLicenseIsRequired      = errs.NewValueIsRequiredError("licenseNumber")
)

type Profile struct {
	Name          string
	LicenseNumber string
	Phone         string
}

// Availability is the lock part of the driver: available drivers have no current trip,
// drivers OnTrip are never available.
type Availability struct {
	IsAvailable   bool
	CurrentTripID *kernel.UUID
}

type Stats struct {
	TotalTrips           int
	TotalDistanceCovered decimal.Decimal
	AccidentCount        int
}

type Driver struct {
	ddd.AggregateBase

	id           kernel.UUID
	code         string
	profile      Profile
	status       Status
	availability Availability
	stats        Stats

	guard guard.ConstructorGuard
}

// NewDriver creates an Active, available driver with zeroed counters.
func NewDriver(id kernel.UUID, code string, profile Profile, now time.Time) (*Driver, error) {
	d := &Driver{
		status:       Active,
		availability: Availability{IsAvailable: true},
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setCode(code),
		d.setProfile(profile),
	); err != nil {
		return nil, err
	}

	d.record(EventCreated, now, map[string]any{"driverCode": d.code})
	return d, nil
}

func RestoreDriver(
	id kernel.UUID,
	code string,
	profile Profile,
	status Status,
	availability Availability,
	stats Stats,
	version int64,
) (*Driver, error) {
	d := &Driver{
		stats: stats,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setCode(code),
		d.setProfile(profile),
		d.setStatus(status),
		d.setAvailability(status, availability),
	); err != nil {
		return nil, err
	}

	d.SetVersion(version)
	return d, nil
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) ID() kernel.UUID {
	return d.id
}

func (d *Driver) Code() string {
	return d.code
}

func (d *Driver) Profile() Profile {
	return d.profile
}

func (d *Driver) Status() Status {
	return d.status
}

func (d *Driver) Availability() Availability {
	return d.availability
}

func (d *Driver) Stats() Stats {
	return d.stats
}

// MarkOnTrip commits the driver to tripID and counts the trip. The previous state is not
// checked.
func (d *Driver) MarkOnTrip(tripID kernel.UUID, now time.Time) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	d.status = OnTrip
	d.availability = Availability{IsAvailable: false, CurrentTripID: &tripID}
	d.stats.TotalTrips++

	d.record(EventMarkedOnTrip, now, map[string]any{
		"tripId":     tripID.String(),
		"totalTrips": d.stats.TotalTrips,
	})
	return nil
}

// MarkAvailable releases the driver.
func (d *Driver) MarkAvailable(now time.Time) {
	if d.status == Active && d.availability.IsAvailable && d.availability.CurrentTripID == nil {
		return
	}

	d.status = Active
	d.availability = Availability{IsAvailable: true}
	d.record(EventMarkedAvailable, now, nil)
}

func (d *Driver) record(name string, now time.Time, payload map[string]any) {
	d.RecordEvent(ddd.Event{
		Name:          name,
		AggregateType: aggregateType,
		AggregateID:   d.id.String(),
		OccurredAt:    now,
		Payload:       payload,
	})
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrCodeIsRequired
	}
	d.code = code
	return nil
}

func (d *Driver) setProfile(p Profile) error {
	p.Name = strings.TrimSpace(p.Name)
	p.LicenseNumber = strings.TrimSpace(p.LicenseNumber)

	var errList []error
	if p.Name == "" {
		errList = append(errList, ErrNameIsRequired)
	}
	if p.LicenseNumber == "" {
		errList = append(errList, ErrLicenseIsRequired)
	}
	if len(errList) > 0 {
		return errors.Join(errList...)
	}

	d.profile = p
	return nil
}

func (d *Driver) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Driver) setAvailability(status Status, a Availability) error {
	if a.IsAvailable && a.CurrentTripID != nil {
		return errs.NewValueIsInvalidErrorWithCause("availability", errors.New("available driver has a current trip"))
	}
	if status == OnTrip && a.IsAvailable {
		return errs.NewValueIsInvalidErrorWithCause("availability", fmt.Errorf("driver in %s status is available", status))
	}
	if err := kernel.ValidateOptionalUUIDs(a.CurrentTripID); err != nil {
		return err
	}
	d.availability = a
	return nil
}
