package commands

import (
	"errors"
	"slices"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrUpdateShipmentCommandIsNotConstructed = errors.New(
		"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
	)
	ErrShipmentNumberIsRequired = errs.NewValueIsRequiredError("shipmentNumber")
)

// CreateShipmentCommand registers a new shipment. The caller cannot choose the initial
// status: every shipment starts in Draft.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(kernel.NewUUID(), "SHP-2025-0001", details, items)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	number     string
	details    shipment.Details
	items      []shipment.ItemFields

	guard guard.ConstructorGuard
}

func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	number string,
	details shipment.Details,
	items []shipment.ItemFields,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		details: details,
		items:   slices.Clone(items),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentID.Validate(),
		cmd.setNumber(number),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	cmd.shipmentID = shipmentID
	return cmd, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c CreateShipmentCommand) Number() string {
	return c.number
}

func (c CreateShipmentCommand) Details() shipment.Details {
	return c.details
}

func (c CreateShipmentCommand) Items() []shipment.ItemFields {
	return slices.Clone(c.items)
}

func (c *CreateShipmentCommand) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrShipmentNumberIsRequired
	}
	c.number = number
	return nil
}

// UpdateShipmentCommand replaces the descriptive fields and the item lines of a shipment.
// Status and lifecycle timestamps are not part of it.
type UpdateShipmentCommand struct {
	shipmentID kernel.UUID
	details    shipment.Details
	items      []shipment.ItemFields

	guard guard.ConstructorGuard
}

func NewUpdateShipmentCommand(
	shipmentID kernel.UUID,
	details shipment.Details,
	items []shipment.ItemFields,
) (UpdateShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return UpdateShipmentCommand{}, err
	}
	return UpdateShipmentCommand{
		shipmentID: shipmentID,
		details:    details,
		items:      slices.Clone(items),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

func (c UpdateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c UpdateShipmentCommand) Details() shipment.Details {
	return c.details
}

func (c UpdateShipmentCommand) Items() []shipment.ItemFields {
	return slices.Clone(c.items)
}

type ConfirmShipmentCommand struct{ aggregateRef }

func NewConfirmShipmentCommand(shipmentID kernel.UUID) (ConfirmShipmentCommand, error) {
	ref, err := newAggregateRef(shipmentID)
	return ConfirmShipmentCommand{ref}, err
}

func (c ConfirmShipmentCommand) ShipmentID() kernel.UUID {
	return c.id
}

type DispatchShipmentCommand struct{ aggregateRef }

func NewDispatchShipmentCommand(shipmentID kernel.UUID) (DispatchShipmentCommand, error) {
	ref, err := newAggregateRef(shipmentID)
	return DispatchShipmentCommand{ref}, err
}

func (c DispatchShipmentCommand) ShipmentID() kernel.UUID {
	return c.id
}

// MarkShipmentInTransitCommand optionally carries the place the shipment was seen at.
type MarkShipmentInTransitCommand struct {
	aggregateRef
	locationName string
}

func NewMarkShipmentInTransitCommand(shipmentID kernel.UUID, locationName string) (MarkShipmentInTransitCommand, error) {
	ref, err := newAggregateRef(shipmentID)
	return MarkShipmentInTransitCommand{aggregateRef: ref, locationName: strings.TrimSpace(locationName)}, err
}

func (c MarkShipmentInTransitCommand) ShipmentID() kernel.UUID {
	return c.id
}

func (c MarkShipmentInTransitCommand) LocationName() string {
	return c.locationName
}

type MarkShipmentOutForDeliveryCommand struct{ aggregateRef }

func NewMarkShipmentOutForDeliveryCommand(shipmentID kernel.UUID) (MarkShipmentOutForDeliveryCommand, error) {
	ref, err := newAggregateRef(shipmentID)
	return MarkShipmentOutForDeliveryCommand{ref}, err
}

func (c MarkShipmentOutForDeliveryCommand) ShipmentID() kernel.UUID {
	return c.id
}

type MarkShipmentDeliveredCommand struct {
	aggregateRef
	confirmation shipment.DeliveryConfirmation
}

func NewMarkShipmentDeliveredCommand(
	shipmentID kernel.UUID,
	confirmation shipment.DeliveryConfirmation,
) (MarkShipmentDeliveredCommand, error) {
	ref, err := newAggregateRef(shipmentID)
	return MarkShipmentDeliveredCommand{aggregateRef: ref, confirmation: confirmation}, err
}

func (c MarkShipmentDeliveredCommand) ShipmentID() kernel.UUID {
	return c.id
}

func (c MarkShipmentDeliveredCommand) Confirmation() shipment.DeliveryConfirmation {
	return c.confirmation
}

type CancelShipmentCommand struct {
	aggregateRef
	reason string
}

func NewCancelShipmentCommand(shipmentID kernel.UUID, reason string) (CancelShipmentCommand, error) {
	ref, err := newAggregateRef(shipmentID)
	return CancelShipmentCommand{aggregateRef: ref, reason: strings.TrimSpace(reason)}, err
}

func (c CancelShipmentCommand) ShipmentID() kernel.UUID {
	return c.id
}

func (c CancelShipmentCommand) Reason() string {
	return c.reason
}

type RemoveShipmentCommand struct{ aggregateRef }

func NewRemoveShipmentCommand(shipmentID kernel.UUID) (RemoveShipmentCommand, error) {
	ref, err := newAggregateRef(shipmentID)
	return RemoveShipmentCommand{ref}, err
}

func (c RemoveShipmentCommand) ShipmentID() kernel.UUID {
	return c.id
}
