package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/freight"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
)

// CreateFreightChargeCommand carries the caller terms only. Derived amounts are always
// computed by the charge itself.
type CreateFreightChargeCommand struct {
	aggregateRef
	terms freight.Terms
}

func NewCreateFreightChargeCommand(chargeID kernel.UUID, terms freight.Terms) (CreateFreightChargeCommand, error) {
	ref, refErr := newAggregateRef(chargeID)
	if err := errors.Join(refErr, kernel.ValidateOptionalUUIDs(terms.ShipmentID, terms.TripID)); err != nil {
		return CreateFreightChargeCommand{}, err
	}
	return CreateFreightChargeCommand{aggregateRef: ref, terms: terms}, nil
}

func (c CreateFreightChargeCommand) ChargeID() kernel.UUID {
	return c.id
}

func (c CreateFreightChargeCommand) Terms() freight.Terms {
	return c.terms
}

type UpdateFreightChargeCommand struct {
	aggregateRef
	terms freight.Terms
}

func NewUpdateFreightChargeCommand(chargeID kernel.UUID, terms freight.Terms) (UpdateFreightChargeCommand, error) {
	ref, refErr := newAggregateRef(chargeID)
	if err := errors.Join(refErr, kernel.ValidateOptionalUUIDs(terms.ShipmentID, terms.TripID)); err != nil {
		return UpdateFreightChargeCommand{}, err
	}
	return UpdateFreightChargeCommand{aggregateRef: ref, terms: terms}, nil
}

func (c UpdateFreightChargeCommand) ChargeID() kernel.UUID {
	return c.id
}

func (c UpdateFreightChargeCommand) Terms() freight.Terms {
	return c.terms
}

type DeleteFreightChargeCommand struct{ aggregateRef }

func NewDeleteFreightChargeCommand(chargeID kernel.UUID) (DeleteFreightChargeCommand, error) {
	ref, err := newAggregateRef(chargeID)
	return DeleteFreightChargeCommand{ref}, err
}

func (c DeleteFreightChargeCommand) ChargeID() kernel.UUID {
	return c.id
}

type CreateFreightChargeCommandHandler struct {
	uowFactory FreightChargeUoWFactory
	clock      ports.Clock
}

func NewCreateFreightChargeCommandHandler(uowFactory FreightChargeUoWFactory, clock ports.Clock) CreateFreightChargeCommandHandler {
	return CreateFreightChargeCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h CreateFreightChargeCommandHandler) Handle(ctx context.Context, cmd CreateFreightChargeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := freight.NewCharge(cmd.ChargeID(), cmd.Terms(), h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		return uow.FreightChargeRepository().Add(ctx, c)
	})
}

type UpdateFreightChargeCommandHandler struct {
	uowFactory FreightChargeUoWFactory
	clock      ports.Clock
}

func NewUpdateFreightChargeCommandHandler(uowFactory FreightChargeUoWFactory, clock ports.Clock) UpdateFreightChargeCommandHandler {
	return UpdateFreightChargeCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h UpdateFreightChargeCommandHandler) Handle(ctx context.Context, cmd UpdateFreightChargeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		repo := uow.FreightChargeRepository()
		c, err := repo.Get(ctx, cmd.ChargeID())
		if err != nil {
			return err
		}
		if err = c.Update(cmd.Terms(), h.clock.Now()); err != nil {
			return err
		}
		return repo.Update(ctx, c)
	})
}

type DeleteFreightChargeCommandHandler struct {
	uowFactory FreightChargeUoWFactory
}

func NewDeleteFreightChargeCommandHandler(uowFactory FreightChargeUoWFactory) DeleteFreightChargeCommandHandler {
	return DeleteFreightChargeCommandHandler{uowFactory: uowFactory}
}

func (h DeleteFreightChargeCommandHandler) Handle(ctx context.Context, cmd DeleteFreightChargeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		repo := uow.FreightChargeRepository()
		c, err := repo.Get(ctx, cmd.ChargeID())
		if err != nil {
			return err
		}
		return repo.Delete(ctx, c)
	})
}
