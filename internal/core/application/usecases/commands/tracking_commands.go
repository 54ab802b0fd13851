package commands

import (
	"context"
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRecordTrackingEventCommandIsNotConstructed = errors.New(
	"RecordTrackingEventCommand must be created via NewRecordTrackingEventCommand constructor",
)

// RecordTrackingEventCommand records a manual event. An empty number is generated from
// the event id and the current time.
type RecordTrackingEventCommand struct {
	eventID kernel.UUID
	number  string
	details tracking.Details

	guard guard.ConstructorGuard
}

func NewRecordTrackingEventCommand(eventID kernel.UUID, number string, details tracking.Details) (RecordTrackingEventCommand, error) {
	if err := errors.Join(
		eventID.Validate(),
		kernel.ValidateOptionalUUIDs(details.ShipmentID, details.TripID),
	); err != nil {
		return RecordTrackingEventCommand{}, err
	}
	return RecordTrackingEventCommand{
		eventID: eventID,
		number:  strings.TrimSpace(number),
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RecordTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrRecordTrackingEventCommandIsNotConstructed)
}

func (c RecordTrackingEventCommand) EventID() kernel.UUID {
	return c.eventID
}

func (c RecordTrackingEventCommand) Number() string {
	return c.number
}

func (c RecordTrackingEventCommand) Details() tracking.Details {
	return c.details
}

type UpdateTrackingEventCommand struct {
	aggregateRef
	details tracking.Details
}

func NewUpdateTrackingEventCommand(eventID kernel.UUID, details tracking.Details) (UpdateTrackingEventCommand, error) {
	ref, refErr := newAggregateRef(eventID)
	if err := errors.Join(refErr, kernel.ValidateOptionalUUIDs(details.ShipmentID, details.TripID)); err != nil {
		return UpdateTrackingEventCommand{}, err
	}
	return UpdateTrackingEventCommand{aggregateRef: ref, details: details}, nil
}

func (c UpdateTrackingEventCommand) EventID() kernel.UUID {
	return c.id
}

func (c UpdateTrackingEventCommand) Details() tracking.Details {
	return c.details
}

type ResolveTrackingEventCommand struct {
	aggregateRef
	notes string
}

func NewResolveTrackingEventCommand(eventID kernel.UUID, notes string) (ResolveTrackingEventCommand, error) {
	ref, err := newAggregateRef(eventID)
	return ResolveTrackingEventCommand{aggregateRef: ref, notes: strings.TrimSpace(notes)}, err
}

func (c ResolveTrackingEventCommand) EventID() kernel.UUID {
	return c.id
}

func (c ResolveTrackingEventCommand) Notes() string {
	return c.notes
}

type DeleteTrackingEventCommand struct{ aggregateRef }

func NewDeleteTrackingEventCommand(eventID kernel.UUID) (DeleteTrackingEventCommand, error) {
	ref, err := newAggregateRef(eventID)
	return DeleteTrackingEventCommand{ref}, err
}

func (c DeleteTrackingEventCommand) EventID() kernel.UUID {
	return c.id
}

type RecordTrackingEventCommandHandler struct {
	uowFactory TrackingEventUoWFactory
	clock      ports.Clock
}

func NewRecordTrackingEventCommandHandler(uowFactory TrackingEventUoWFactory, clock ports.Clock) RecordTrackingEventCommandHandler {
	return RecordTrackingEventCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h RecordTrackingEventCommandHandler) Handle(ctx context.Context, cmd RecordTrackingEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock.Now()
	number := cmd.Number()
	if number == "" {
		number = tracking.GenerateNumber(cmd.EventID(), now)
	}

	e, err := tracking.NewEvent(cmd.EventID(), number, cmd.Details(), now)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		repo := uow.TrackingEventRepository()
		exists, existsErr := repo.ExistsByNumber(ctx, e.Number())
		if existsErr != nil {
			return existsErr
		}
		if exists {
			return errs.NewObjectAlreadyExistsError("eventNumber", e.Number())
		}
		return repo.Add(ctx, e)
	})
}

type UpdateTrackingEventCommandHandler struct {
	uowFactory TrackingEventUoWFactory
	clock      ports.Clock
}

func NewUpdateTrackingEventCommandHandler(uowFactory TrackingEventUoWFactory, clock ports.Clock) UpdateTrackingEventCommandHandler {
	return UpdateTrackingEventCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h UpdateTrackingEventCommandHandler) Handle(ctx context.Context, cmd UpdateTrackingEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		repo := uow.TrackingEventRepository()
		e, err := repo.Get(ctx, cmd.EventID())
		if err != nil {
			return err
		}
		if err = e.Update(cmd.Details(), h.clock.Now()); err != nil {
			return err
		}
		return repo.Update(ctx, e)
	})
}

type ResolveTrackingEventCommandHandler struct {
	uowFactory TrackingEventUoWFactory
	clock      ports.Clock
}

func NewResolveTrackingEventCommandHandler(uowFactory TrackingEventUoWFactory, clock ports.Clock) ResolveTrackingEventCommandHandler {
	return ResolveTrackingEventCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h ResolveTrackingEventCommandHandler) Handle(ctx context.Context, cmd ResolveTrackingEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		repo := uow.TrackingEventRepository()
		e, err := repo.Get(ctx, cmd.EventID())
		if err != nil {
			return err
		}
		e.Resolve(cmd.Notes(), h.clock.Now())
		return repo.Update(ctx, e)
	})
}

type DeleteTrackingEventCommandHandler struct {
	uowFactory TrackingEventUoWFactory
}

func NewDeleteTrackingEventCommandHandler(uowFactory TrackingEventUoWFactory) DeleteTrackingEventCommandHandler {
	return DeleteTrackingEventCommandHandler{uowFactory: uowFactory}
}

func (h DeleteTrackingEventCommandHandler) Handle(ctx context.Context, cmd DeleteTrackingEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		repo := uow.TrackingEventRepository()
		e, err := repo.Get(ctx, cmd.EventID())
		if err != nil {
			return err
		}
		return repo.Delete(ctx, e)
	})
}
