package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/trip"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateTripCommandIsNotConstructed = errors.New("CreateTripCommand must be created via NewCreateTripCommand constructor")
	ErrTripNumberIsRequired              = errs.NewValueIsRequiredError("tripNumber")
)

// CreateTripCommand plans a new trip. Vehicle and driver are mandatory; the trip starts
// Planned whatever the caller asks for.
type CreateTripCommand struct { //nolint:recvcheck //using for validation
	tripID kernel.UUID
	number string
	plan   trip.Plan

	guard guard.ConstructorGuard
}

func NewCreateTripCommand(tripID kernel.UUID, number string, plan trip.Plan) (CreateTripCommand, error) {
	cmd := CreateTripCommand{
		plan:  plan,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tripID.Validate(),
		cmd.setNumber(number),
	); err != nil {
		return CreateTripCommand{}, err
	}

	cmd.tripID = tripID
	return cmd, nil
}

func (c CreateTripCommand) Validate() error {
	return c.guard.Validate(ErrCreateTripCommandIsNotConstructed)
}

func (c CreateTripCommand) TripID() kernel.UUID {
	return c.tripID
}

func (c CreateTripCommand) Number() string {
	return c.number
}

func (c CreateTripCommand) Plan() trip.Plan {
	return c.plan
}

func (c *CreateTripCommand) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrTripNumberIsRequired
	}
	c.number = number
	return nil
}

type ScheduleTripCommand struct{ aggregateRef }

func NewScheduleTripCommand(tripID kernel.UUID) (ScheduleTripCommand, error) {
	ref, err := newAggregateRef(tripID)
	return ScheduleTripCommand{ref}, err
}

func (c ScheduleTripCommand) TripID() kernel.UUID {
	return c.id
}

type StartTripCommand struct{ aggregateRef }

func NewStartTripCommand(tripID kernel.UUID) (StartTripCommand, error) {
	ref, err := newAggregateRef(tripID)
	return StartTripCommand{ref}, err
}

func (c StartTripCommand) TripID() kernel.UUID {
	return c.id
}

type CompleteTripCommand struct{ aggregateRef }

func NewCompleteTripCommand(tripID kernel.UUID) (CompleteTripCommand, error) {
	ref, err := newAggregateRef(tripID)
	return CompleteTripCommand{ref}, err
}

func (c CompleteTripCommand) TripID() kernel.UUID {
	return c.id
}

type CancelTripCommand struct {
	aggregateRef
	reason string
}

func NewCancelTripCommand(tripID kernel.UUID, reason string) (CancelTripCommand, error) {
	ref, err := newAggregateRef(tripID)
	return CancelTripCommand{aggregateRef: ref, reason: strings.TrimSpace(reason)}, err
}

func (c CancelTripCommand) TripID() kernel.UUID {
	return c.id
}

func (c CancelTripCommand) Reason() string {
	return c.reason
}

type UpdateTripLocationCommand struct {
	aggregateRef
	location kernel.GeoPoint
}

func NewUpdateTripLocationCommand(tripID kernel.UUID, latitude, longitude float64) (UpdateTripLocationCommand, error) {
	ref, refErr := newAggregateRef(tripID)
	location, locErr := kernel.NewReportedGeoPoint(latitude, longitude)
	if err := errors.Join(refErr, locErr); err != nil {
		return UpdateTripLocationCommand{}, err
	}
	return UpdateTripLocationCommand{aggregateRef: ref, location: location}, nil
}

func (c UpdateTripLocationCommand) TripID() kernel.UUID {
	return c.id
}

func (c UpdateTripLocationCommand) Location() kernel.GeoPoint {
	return c.location
}
