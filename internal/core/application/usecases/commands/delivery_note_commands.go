package commands

import (
	"context"
	"errors"
	"strings"

	"logistics/internal/core/domain/model/deliverynote"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateDeliveryNoteCommandIsNotConstructed = errors.New(
		"CreateDeliveryNoteCommand must be created via NewCreateDeliveryNoteCommand constructor",
	)
	ErrDeliveryNoteNumberIsRequired = errs.NewValueIsRequiredError("deliveryNoteNumber")
)

type CreateDeliveryNoteCommand struct {
	noteID     kernel.UUID
	number     string
	shipmentID *kernel.UUID
	summary    deliverynote.Summary

	guard guard.ConstructorGuard
}

func NewCreateDeliveryNoteCommand(
	noteID kernel.UUID,
	number string,
	shipmentID *kernel.UUID,
	summary deliverynote.Summary,
) (CreateDeliveryNoteCommand, error) {
	number = strings.TrimSpace(number)

	var numberErr error
	if number == "" {
		numberErr = ErrDeliveryNoteNumberIsRequired
	}
	if err := errors.Join(noteID.Validate(), numberErr, kernel.ValidateOptionalUUIDs(shipmentID)); err != nil {
		return CreateDeliveryNoteCommand{}, err
	}

	return CreateDeliveryNoteCommand{
		noteID:     noteID,
		number:     number,
		shipmentID: shipmentID,
		summary:    summary,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDeliveryNoteCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryNoteCommandIsNotConstructed)
}

func (c CreateDeliveryNoteCommand) DeliveryNoteID() kernel.UUID {
	return c.noteID
}

func (c CreateDeliveryNoteCommand) Number() string {
	return c.number
}

func (c CreateDeliveryNoteCommand) ShipmentID() *kernel.UUID {
	return c.shipmentID
}

func (c CreateDeliveryNoteCommand) Summary() deliverynote.Summary {
	return c.summary
}

type SubmitDeliveryNoteCommand struct{ aggregateRef }

func NewSubmitDeliveryNoteCommand(noteID kernel.UUID) (SubmitDeliveryNoteCommand, error) {
	ref, err := newAggregateRef(noteID)
	return SubmitDeliveryNoteCommand{ref}, err
}

func (c SubmitDeliveryNoteCommand) DeliveryNoteID() kernel.UUID {
	return c.id
}

type DeliverDeliveryNoteCommand struct {
	aggregateRef
	proof deliverynote.Proof
}

func NewDeliverDeliveryNoteCommand(noteID kernel.UUID, proof deliverynote.Proof) (DeliverDeliveryNoteCommand, error) {
	ref, err := newAggregateRef(noteID)
	return DeliverDeliveryNoteCommand{aggregateRef: ref, proof: proof}, err
}

func (c DeliverDeliveryNoteCommand) DeliveryNoteID() kernel.UUID {
	return c.id
}

func (c DeliverDeliveryNoteCommand) Proof() deliverynote.Proof {
	return c.proof
}

type CancelDeliveryNoteCommand struct{ aggregateRef }

func NewCancelDeliveryNoteCommand(noteID kernel.UUID) (CancelDeliveryNoteCommand, error) {
	ref, err := newAggregateRef(noteID)
	return CancelDeliveryNoteCommand{ref}, err
}

func (c CancelDeliveryNoteCommand) DeliveryNoteID() kernel.UUID {
	return c.id
}

type CreateDeliveryNoteCommandHandler struct {
	uowFactory DeliveryNoteUoWFactory
	clock      ports.Clock
}

func NewCreateDeliveryNoteCommandHandler(uowFactory DeliveryNoteUoWFactory, clock ports.Clock) CreateDeliveryNoteCommandHandler {
	return CreateDeliveryNoteCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h CreateDeliveryNoteCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	n, err := deliverynote.NewDeliveryNote(cmd.DeliveryNoteID(), cmd.Number(), cmd.ShipmentID(), cmd.Summary(), h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		repo := uow.DeliveryNoteRepository()
		exists, existsErr := repo.ExistsByNumber(ctx, n.Number())
		if existsErr != nil {
			return existsErr
		}
		if exists {
			return errs.NewObjectAlreadyExistsError("deliveryNoteNumber", n.Number())
		}
		return repo.Add(ctx, n)
	})
}

type SubmitDeliveryNoteCommandHandler struct {
	uowFactory DeliveryNoteUoWFactory
	clock      ports.Clock
}

func NewSubmitDeliveryNoteCommandHandler(uowFactory DeliveryNoteUoWFactory, clock ports.Clock) SubmitDeliveryNoteCommandHandler {
	return SubmitDeliveryNoteCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h SubmitDeliveryNoteCommandHandler) Handle(ctx context.Context, cmd SubmitDeliveryNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeDeliveryNote(ctx, h.uowFactory, cmd.DeliveryNoteID(), func(n *deliverynote.DeliveryNote) error {
		return n.Submit(h.clock.Now())
	})
}

// DeliverDeliveryNoteCommandHandler records the proof of delivery. A partial proof moves
// the note to PartiallyDelivered.
type DeliverDeliveryNoteCommandHandler struct {
	uowFactory DeliveryNoteUoWFactory
	clock      ports.Clock
}

func NewDeliverDeliveryNoteCommandHandler(uowFactory DeliveryNoteUoWFactory, clock ports.Clock) DeliverDeliveryNoteCommandHandler {
	return DeliverDeliveryNoteCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h DeliverDeliveryNoteCommandHandler) Handle(ctx context.Context, cmd DeliverDeliveryNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeDeliveryNote(ctx, h.uowFactory, cmd.DeliveryNoteID(), func(n *deliverynote.DeliveryNote) error {
		return n.Deliver(cmd.Proof(), h.clock.Now())
	})
}

type CancelDeliveryNoteCommandHandler struct {
	uowFactory DeliveryNoteUoWFactory
	clock      ports.Clock
}

func NewCancelDeliveryNoteCommandHandler(uowFactory DeliveryNoteUoWFactory, clock ports.Clock) CancelDeliveryNoteCommandHandler {
	return CancelDeliveryNoteCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h CancelDeliveryNoteCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeDeliveryNote(ctx, h.uowFactory, cmd.DeliveryNoteID(), func(n *deliverynote.DeliveryNote) error {
		return n.Cancel(h.clock.Now())
	})
}

func changeDeliveryNote(
	ctx context.Context,
	uowFactory DeliveryNoteUoWFactory,
	noteID kernel.UUID,
	change func(n *deliverynote.DeliveryNote) error,
) error {
	uow := uowFactory.Create()
	return inTransaction(ctx, uow, func() error {
		repo := uow.DeliveryNoteRepository()
		n, err := repo.Get(ctx, noteID)
		if err != nil {
			return err
		}
		if err = change(n); err != nil {
			return err
		}
		return repo.Update(ctx, n)
	})
}
