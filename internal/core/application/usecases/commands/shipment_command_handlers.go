package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// CreateShipmentCommandHandler stores a new Draft shipment together with its item lines.
// A duplicate shipment number is reported as errs.ObjectAlreadyExistsError.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      ports.Clock
}

func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory, clock ports.Clock) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := buildItems(cmd.Items())
	if err != nil {
		return err
	}

	s, err := shipment.NewShipment(cmd.ShipmentID(), cmd.Number(), cmd.Details(), items, h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		repo := uow.ShipmentRepository()
		exists, existsErr := repo.ExistsByNumber(ctx, s.Number())
		if existsErr != nil {
			return existsErr
		}
		if exists {
			return errs.NewObjectAlreadyExistsError("shipmentNumber", s.Number())
		}
		return repo.Add(ctx, s)
	})
}

type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      ports.Clock
}

func NewUpdateShipmentCommandHandler(uowFactory ShipmentUoWFactory, clock ports.Clock) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := buildItems(cmd.Items())
	if err != nil {
		return err
	}

	return changeShipment(ctx, h.uowFactory, h.clock, cmd.ShipmentID(),
		func(s *shipment.Shipment, now time.Time) (*correlatedEvent, error) {
			return nil, s.Update(cmd.Details(), items, now)
		})
}

type ConfirmShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      ports.Clock
}

func NewConfirmShipmentCommandHandler(uowFactory ShipmentUoWFactory, clock ports.Clock) ConfirmShipmentCommandHandler {
	return ConfirmShipmentCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h ConfirmShipmentCommandHandler) Handle(ctx context.Context, cmd ConfirmShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeShipment(ctx, h.uowFactory, h.clock, cmd.ShipmentID(),
		func(s *shipment.Shipment, now time.Time) (*correlatedEvent, error) {
			return nil, s.Confirm(now)
		})
}

// DispatchShipmentCommandHandler moves a Confirmed shipment to Dispatched and records a
// Dispatched tracking event at the origin.
type DispatchShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      ports.Clock
}

func NewDispatchShipmentCommandHandler(uowFactory ShipmentUoWFactory, clock ports.Clock) DispatchShipmentCommandHandler {
	return DispatchShipmentCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h DispatchShipmentCommandHandler) Handle(ctx context.Context, cmd DispatchShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeShipment(ctx, h.uowFactory, h.clock, cmd.ShipmentID(),
		func(s *shipment.Shipment, now time.Time) (*correlatedEvent, error) {
			if err := s.Dispatch(now); err != nil {
				return nil, err
			}
			return &correlatedEvent{
				eventType:    tracking.TypeDispatched,
				locationName: s.Details().Origin.City(),
				description:  "Shipment " + s.Number() + " dispatched",
			}, nil
		})
}

type MarkShipmentInTransitCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      ports.Clock
}

func NewMarkShipmentInTransitCommandHandler(uowFactory ShipmentUoWFactory, clock ports.Clock) MarkShipmentInTransitCommandHandler {
	return MarkShipmentInTransitCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h MarkShipmentInTransitCommandHandler) Handle(ctx context.Context, cmd MarkShipmentInTransitCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeShipment(ctx, h.uowFactory, h.clock, cmd.ShipmentID(),
		func(s *shipment.Shipment, now time.Time) (*correlatedEvent, error) {
			s.MarkInTransit(now)
			return &correlatedEvent{
				eventType:    tracking.TypeInTransit,
				locationName: orUnknown(cmd.LocationName()),
				description:  "Shipment " + s.Number() + " in transit",
			}, nil
		})
}

type MarkShipmentOutForDeliveryCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      ports.Clock
}

func NewMarkShipmentOutForDeliveryCommandHandler(
	uowFactory ShipmentUoWFactory,
	clock ports.Clock,
) MarkShipmentOutForDeliveryCommandHandler {
	return MarkShipmentOutForDeliveryCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h MarkShipmentOutForDeliveryCommandHandler) Handle(ctx context.Context, cmd MarkShipmentOutForDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeShipment(ctx, h.uowFactory, h.clock, cmd.ShipmentID(),
		func(s *shipment.Shipment, now time.Time) (*correlatedEvent, error) {
			s.MarkOutForDelivery(now)
			return &correlatedEvent{
				eventType:    tracking.TypeOutForDelivery,
				locationName: s.Details().Destination.City(),
				description:  "Shipment " + s.Number() + " out for delivery",
			}, nil
		})
}

type MarkShipmentDeliveredCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      ports.Clock
}

func NewMarkShipmentDeliveredCommandHandler(uowFactory ShipmentUoWFactory, clock ports.Clock) MarkShipmentDeliveredCommandHandler {
	return MarkShipmentDeliveredCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h MarkShipmentDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkShipmentDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeShipment(ctx, h.uowFactory, h.clock, cmd.ShipmentID(),
		func(s *shipment.Shipment, now time.Time) (*correlatedEvent, error) {
			s.MarkDelivered(cmd.Confirmation(), now)
			description := "Shipment " + s.Number() + " delivered"
			if name := cmd.Confirmation().DeliveredToName; name != "" {
				description += " to " + name
			}
			return &correlatedEvent{
				eventType:    tracking.TypeDelivered,
				locationName: s.Details().Destination.City(),
				description:  description,
			}, nil
		})
}

type CancelShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      ports.Clock
}

func NewCancelShipmentCommandHandler(uowFactory ShipmentUoWFactory, clock ports.Clock) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeShipment(ctx, h.uowFactory, h.clock, cmd.ShipmentID(),
		func(s *shipment.Shipment, now time.Time) (*correlatedEvent, error) {
			if err := s.Cancel(cmd.Reason(), now); err != nil {
				return nil, err
			}
			return &correlatedEvent{
				eventType:    tracking.TypeCancelled,
				severity:     tracking.SeverityWarning,
				locationName: kernel.UnknownLocation,
				description:  "Shipment " + s.Number() + " cancelled: " + cmd.Reason(),
			}, nil
		})
}

// RemoveShipmentCommandHandler deletes a Draft or Cancelled shipment and its items.
// Tracking events and freight charges referencing it are kept.
type RemoveShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

func NewRemoveShipmentCommandHandler(uowFactory ShipmentUoWFactory) RemoveShipmentCommandHandler {
	return RemoveShipmentCommandHandler{uowFactory: uowFactory}
}

func (h RemoveShipmentCommandHandler) Handle(ctx context.Context, cmd RemoveShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		repo := uow.ShipmentRepository()
		s, err := repo.Get(ctx, cmd.ShipmentID())
		if err != nil {
			return err
		}
		if err = s.ValidateRemove(); err != nil {
			return err
		}
		return repo.Delete(ctx, s)
	})
}

// changeShipment loads the shipment, applies change and saves it. When change returns a
// correlated event it is written in the same transaction.
func changeShipment(
	ctx context.Context,
	uowFactory ShipmentUoWFactory,
	clock ports.Clock,
	shipmentID kernel.UUID,
	change func(s *shipment.Shipment, now time.Time) (*correlatedEvent, error),
) error {
	uow := uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		repo := uow.ShipmentRepository()
		s, err := repo.Get(ctx, shipmentID)
		if err != nil {
			return err
		}

		now := clock.Now()
		correlated, err := change(s, now)
		if err != nil {
			return err
		}
		if err = repo.Update(ctx, s); err != nil {
			return err
		}
		if correlated == nil {
			return nil
		}

		id := s.ID()
		event, err := correlated.build(&id, s.Details().TripID, now)
		if err != nil {
			return err
		}
		return uow.TrackingEventRepository().Add(ctx, event)
	})
}

func buildItems(fields []shipment.ItemFields) ([]*shipment.Item, error) {
	items := make([]*shipment.Item, 0, len(fields))
	for _, f := range fields {
		item, err := shipment.NewItem(kernel.NewUUID(), f)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
