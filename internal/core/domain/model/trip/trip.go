package trip

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/ddd"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const aggregateType = "trip"

const (
	EventCreated         = "trip.created"
	EventScheduled       = "trip.scheduled"
	EventStarted         = "trip.started"
	EventCompleted       = "trip.completed"
	EventCancelled       = "trip.cancelled"
	EventLocationUpdated = "trip.location_updated"
)

var (
	ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip constructor")
	ErrNumberIsRequired     = errs.NewValueIsRequiredError("tripNumber")
	ErrVehicleIsRequired    = errs.NewValueIsRequiredError("vehicleId")
	ErrDriverIsRequired     = errs.NewValueIsRequiredError("driverId")
)

// Plan is the caller-controlled part of a trip.
type Plan struct {
	VehicleID       kernel.UUID
	DriverID        kernel.UUID
	CoDriverID      *kernel.UUID
	RouteID         *kernel.UUID
	PlannedStartAt  *time.Time
	PlannedEndAt    *time.Time
	PlannedDistance decimal.Decimal
	Stops           []Stop
	Expenses        Expenses
}

// Progress is stamped by the lifecycle methods.
type Progress struct {
	ActualStartAt         *time.Time
	ActualEndAt           *time.Time
	ActualDistance        decimal.Decimal
	ActualDurationMinutes *int
	CurrentLocation       *kernel.GeoPoint
	LastLocationUpdateAt  *time.Time
	IsDeliveryConfirmed   bool
	CancellationReason    string
}

type Trip struct {
	ddd.AggregateBase

	id       kernel.UUID
	number   string
	status   Status
	plan     Plan
	progress Progress

	guard guard.ConstructorGuard
}

// NewTrip creates a Planned trip.
func NewTrip(id kernel.UUID, number string, plan Plan, now time.Time) (*Trip, error) {
	t := &Trip{
		status: Planned,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setNumber(number),
		t.setPlan(plan),
	); err != nil {
		return nil, err
	}

	t.record(EventCreated, now, map[string]any{
		"tripNumber": t.number,
		"vehicleId":  t.plan.VehicleID.String(),
		"driverId":   t.plan.DriverID.String(),
	})
	return t, nil
}

func RestoreTrip(id kernel.UUID, number string, status Status, plan Plan, progress Progress, version int64) (*Trip, error) {
	t := &Trip{
		progress: progress,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setNumber(number),
		t.setStatus(status),
		t.setPlan(plan),
	); err != nil {
		return nil, err
	}

	t.SetVersion(version)
	return t, nil
}

func (t *Trip) Validate() error {
	if t == nil {
		return ErrTripIsNotConstructed
	}
	return t.guard.Validate(ErrTripIsNotConstructed)
}

func (t *Trip) ID() kernel.UUID {
	return t.id
}

func (t *Trip) Number() string {
	return t.number
}

func (t *Trip) Status() Status {
	return t.status
}

func (t *Trip) Progress() Progress {
	return t.progress
}

func (t *Trip) VehicleID() kernel.UUID {
	return t.plan.VehicleID
}

func (t *Trip) DriverID() kernel.UUID {
	return t.plan.DriverID
}

func (t *Trip) Plan() Plan {
	p := t.plan
	p.Stops = slices.Clone(t.plan.Stops)
	return p
}

func (t *Trip) Schedule(now time.Time) error {
	next, err := t.status.Schedule()
	if err != nil {
		return err
	}
	t.status = next
	t.record(EventScheduled, now, nil)
	return nil
}

// Start moves a Scheduled trip to InProgress and stamps the actual start time.
func (t *Trip) Start(now time.Time) error {
	next, err := t.status.Start()
	if err != nil {
		return err
	}
	t.status = next
	t.progress.ActualStartAt = &now
	t.record(EventStarted, now, nil)
	return nil
}

// Complete moves an InProgress trip to Completed. The duration is left unset when the
// trip has no actual start time.
func (t *Trip) Complete(now time.Time) error {
	next, err := t.status.Complete()
	if err != nil {
		return err
	}
	t.status = next
	t.progress.ActualEndAt = &now
	t.progress.IsDeliveryConfirmed = true

	payload := map[string]any{}
	if start := t.progress.ActualStartAt; start != nil {
		minutes := int(math.Floor(now.Sub(*start).Minutes()))
		t.progress.ActualDurationMinutes = &minutes
		payload["actualDurationMinutes"] = minutes
	}
	t.record(EventCompleted, now, payload)
	return nil
}

// Cancel is accepted from any status.
func (t *Trip) Cancel(reason string, now time.Time) {
	t.status = Cancelled
	t.progress.CancellationReason = reason
	t.record(EventCancelled, now, map[string]any{"reason": reason})
}

// UpdateLocation overwrites the current position whatever the status.
func (t *Trip) UpdateLocation(location kernel.GeoPoint, now time.Time) error {
	if err := location.Validate(); err != nil {
		return err
	}
	t.progress.CurrentLocation = &location
	t.progress.LastLocationUpdateAt = &now
	t.record(EventLocationUpdated, now, map[string]any{
		"latitude":  location.Latitude(),
		"longitude": location.Longitude(),
	})
	return nil
}

// CurrentLocationText renders the last known position as "lat, lon", or "Unknown".
func (t *Trip) CurrentLocationText() string {
	if t.progress.CurrentLocation == nil {
		return kernel.UnknownLocation
	}
	return t.progress.CurrentLocation.String()
}

func (t *Trip) record(name string, now time.Time, payload map[string]any) {
	t.RecordEvent(ddd.Event{
		Name:          name,
		AggregateType: aggregateType,
		AggregateID:   t.id.String(),
		OccurredAt:    now,
		Payload:       payload,
	})
}

func (t *Trip) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Trip) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrNumberIsRequired
	}
	t.number = number
	return nil
}

func (t *Trip) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}

func (t *Trip) setPlan(p Plan) error {
	var errList []error
	if p.VehicleID.Validate() != nil {
		errList = append(errList, ErrVehicleIsRequired)
	}
	if p.DriverID.Validate() != nil {
		errList = append(errList, ErrDriverIsRequired)
	}
	if err := kernel.ValidateOptionalUUIDs(p.CoDriverID, p.RouteID); err != nil {
		errList = append(errList, err)
	}
	if p.PlannedDistance.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("plannedDistance", fmt.Errorf("%s is negative", p.PlannedDistance)))
	}
	if err := p.Expenses.validate(); err != nil {
		errList = append(errList, err)
	}
	stops, err := normalizeStops(p.Stops)
	if err != nil {
		errList = append(errList, err)
	}
	if len(errList) > 0 {
		return errors.Join(errList...)
	}

	p.Stops = stops
	t.plan = p
	return nil
}
