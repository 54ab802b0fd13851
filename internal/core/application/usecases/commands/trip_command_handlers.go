package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/domain/model/trip"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

type CreateTripCommandHandler struct {
	uowFactory TripUoWFactory
	clock      ports.Clock
}

func NewCreateTripCommandHandler(uowFactory TripUoWFactory, clock ports.Clock) CreateTripCommandHandler {
	return CreateTripCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h CreateTripCommandHandler) Handle(ctx context.Context, cmd CreateTripCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	t, err := trip.NewTrip(cmd.TripID(), cmd.Number(), cmd.Plan(), h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		repo := uow.TripRepository()
		exists, existsErr := repo.ExistsByNumber(ctx, t.Number())
		if existsErr != nil {
			return existsErr
		}
		if exists {
			return errs.NewObjectAlreadyExistsError("tripNumber", t.Number())
		}
		return repo.Add(ctx, t)
	})
}

type ScheduleTripCommandHandler struct {
	uowFactory TripUoWFactory
	clock      ports.Clock
}

func NewScheduleTripCommandHandler(uowFactory TripUoWFactory, clock ports.Clock) ScheduleTripCommandHandler {
	return ScheduleTripCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h ScheduleTripCommandHandler) Handle(ctx context.Context, cmd ScheduleTripCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeTrip(ctx, h.uowFactory, h.clock, cmd.TripID(),
		func(t *trip.Trip, now time.Time) (*correlatedEvent, error) {
			return nil, t.Schedule(now)
		})
}

type StartTripCommandHandler struct {
	uowFactory TripUoWFactory
	clock      ports.Clock
}

func NewStartTripCommandHandler(uowFactory TripUoWFactory, clock ports.Clock) StartTripCommandHandler {
	return StartTripCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h StartTripCommandHandler) Handle(ctx context.Context, cmd StartTripCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeTrip(ctx, h.uowFactory, h.clock, cmd.TripID(),
		func(t *trip.Trip, now time.Time) (*correlatedEvent, error) {
			if err := t.Start(now); err != nil {
				return nil, err
			}
			return &correlatedEvent{
				eventType:    tracking.TypeTripStarted,
				locationName: t.CurrentLocationText(),
				description:  "Trip " + t.Number() + " started",
			}, nil
		})
}

// CompleteTripCommandHandler completes an InProgress trip. The driver and the vehicle are
// not released here; callers mark the driver available separately.
type CompleteTripCommandHandler struct {
	uowFactory TripUoWFactory
	clock      ports.Clock
}

func NewCompleteTripCommandHandler(uowFactory TripUoWFactory, clock ports.Clock) CompleteTripCommandHandler {
	return CompleteTripCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h CompleteTripCommandHandler) Handle(ctx context.Context, cmd CompleteTripCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeTrip(ctx, h.uowFactory, h.clock, cmd.TripID(),
		func(t *trip.Trip, now time.Time) (*correlatedEvent, error) {
			if err := t.Complete(now); err != nil {
				return nil, err
			}
			return &correlatedEvent{
				eventType:    tracking.TypeTripCompleted,
				locationName: t.CurrentLocationText(),
				description:  "Trip " + t.Number() + " completed",
			}, nil
		})
}

type CancelTripCommandHandler struct {
	uowFactory TripUoWFactory
	clock      ports.Clock
}

func NewCancelTripCommandHandler(uowFactory TripUoWFactory, clock ports.Clock) CancelTripCommandHandler {
	return CancelTripCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h CancelTripCommandHandler) Handle(ctx context.Context, cmd CancelTripCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeTrip(ctx, h.uowFactory, h.clock, cmd.TripID(),
		func(t *trip.Trip, now time.Time) (*correlatedEvent, error) {
			t.Cancel(cmd.Reason(), now)
			return &correlatedEvent{
				eventType:    tracking.TypeCancelled,
				severity:     tracking.SeverityWarning,
				locationName: t.CurrentLocationText(),
				description:  "Trip " + t.Number() + " cancelled: " + cmd.Reason(),
			}, nil
		})
}

type UpdateTripLocationCommandHandler struct {
	uowFactory TripUoWFactory
	clock      ports.Clock
}

func NewUpdateTripLocationCommandHandler(uowFactory TripUoWFactory, clock ports.Clock) UpdateTripLocationCommandHandler {
	return UpdateTripLocationCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h UpdateTripLocationCommandHandler) Handle(ctx context.Context, cmd UpdateTripLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeTrip(ctx, h.uowFactory, h.clock, cmd.TripID(),
		func(t *trip.Trip, now time.Time) (*correlatedEvent, error) {
			if err := t.UpdateLocation(cmd.Location(), now); err != nil {
				return nil, err
			}
			location := cmd.Location()
			return &correlatedEvent{
				eventType:    tracking.TypeLocationUpdate,
				locationName: t.CurrentLocationText(),
				location:     &location,
			}, nil
		})
}

func changeTrip(
	ctx context.Context,
	uowFactory TripUoWFactory,
	clock ports.Clock,
	tripID kernel.UUID,
	change func(t *trip.Trip, now time.Time) (*correlatedEvent, error),
) error {
	uow := uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		repo := uow.TripRepository()
		t, err := repo.Get(ctx, tripID)
		if err != nil {
			return err
		}

		now := clock.Now()
		correlated, err := change(t, now)
		if err != nil {
			return err
		}
		if err = repo.Update(ctx, t); err != nil {
			return err
		}
		if correlated == nil {
			return nil
		}

		id := t.ID()
		event, err := correlated.build(nil, &id, now)
		if err != nil {
			return err
		}
		return uow.TrackingEventRepository().Add(ctx, event)
	})
}
