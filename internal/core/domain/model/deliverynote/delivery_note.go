// Package deliverynote implements the DeliveryNote aggregate: the document that travels
// with a consignment and comes back with the receiver's proof of delivery.
//
//	Draft ──> Submitted ──> Delivered | PartiallyDelivered
//	          InTransit ──┘
//	any status except Delivered ──> Cancelled
package deliverynote

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/ddd"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const aggregateType = "delivery_note"

const (
	EventCreated   = "delivery_note.created"
	EventSubmitted = "delivery_note.submitted"
	EventDelivered = "delivery_note.delivered"
	EventCancelled = "delivery_note.cancelled"
)

var (
	ErrDeliveryNoteIsNotConstructed = errors.New("DeliveryNote must be created via NewDeliveryNote constructor")
	ErrNumberIsRequired             = errs.NewValueIsRequiredError("deliveryNoteNumber")
	ErrReceiverIsRequired           = errs.NewValueIsRequiredError("receiverName")
)

type Summary struct {
	ItemCount     int
	TotalQuantity int
}

// Proof is what the receiver leaves behind.
type Proof struct {
	ReceiverName string
	SignatureURL string
	PhotoURLs    []string
	Partial      bool
}

type DeliveryNote struct {
	ddd.AggregateBase

	id          kernel.UUID
	number      string
	status      Status
	shipmentID  *kernel.UUID
	summary     Summary
	proof       Proof
	deliveredAt *time.Time

	guard guard.ConstructorGuard
}

func NewDeliveryNote(id kernel.UUID, number string, shipmentID *kernel.UUID, summary Summary, now time.Time) (*DeliveryNote, error) {
	n := &DeliveryNote{
		status: Draft,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setNumber(number),
		n.setShipmentID(shipmentID),
		n.setSummary(summary),
	); err != nil {
		return nil, err
	}

	n.record(EventCreated, now, map[string]any{"deliveryNoteNumber": n.number})
	return n, nil
}

func RestoreDeliveryNote(
	id kernel.UUID,
	number string,
	status Status,
	shipmentID *kernel.UUID,
	summary Summary,
	proof Proof,
	deliveredAt *time.Time,
	version int64,
) (*DeliveryNote, error) {
	n := &DeliveryNote{
		proof:       proof,
		deliveredAt: deliveredAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setNumber(number),
		n.setStatus(status),
		n.setShipmentID(shipmentID),
		n.setSummary(summary),
	); err != nil {
		return nil, err
	}

	n.SetVersion(version)
	return n, nil
}

func (n *DeliveryNote) Validate() error {
	if n == nil {
		return ErrDeliveryNoteIsNotConstructed
	}
	return n.guard.Validate(ErrDeliveryNoteIsNotConstructed)
}

func (n *DeliveryNote) ID() kernel.UUID {
	return n.id
}

func (n *DeliveryNote) Number() string {
	return n.number
}

func (n *DeliveryNote) Status() Status {
	return n.status
}

func (n *DeliveryNote) ShipmentID() *kernel.UUID {
	return n.shipmentID
}

func (n *DeliveryNote) Summary() Summary {
	return n.summary
}

func (n *DeliveryNote) Proof() Proof {
	p := n.proof
	p.PhotoURLs = slices.Clone(n.proof.PhotoURLs)
	return p
}

func (n *DeliveryNote) DeliveredAt() *time.Time {
	return n.deliveredAt
}

func (n *DeliveryNote) Submit(now time.Time) error {
	next, err := n.status.Submit()
	if err != nil {
		return err
	}
	n.status = next
	n.record(EventSubmitted, now, nil)
	return nil
}

// Deliver stores the proof and stamps the delivery time.
func (n *DeliveryNote) Deliver(proof Proof, now time.Time) error {
	proof.ReceiverName = strings.TrimSpace(proof.ReceiverName)
	if proof.ReceiverName == "" {
		return ErrReceiverIsRequired
	}
	next, err := n.status.Deliver(proof.Partial)
	if err != nil {
		return err
	}

	n.status = next
	n.proof = proof
	n.proof.PhotoURLs = slices.Clone(proof.PhotoURLs)
	n.deliveredAt = &now
	n.record(EventDelivered, now, map[string]any{
		"receiverName": proof.ReceiverName,
		"partial":      proof.Partial,
	})
	return nil
}

func (n *DeliveryNote) Cancel(now time.Time) error {
	next, err := n.status.Cancel()
	if err != nil {
		return err
	}
	n.status = next
	n.record(EventCancelled, now, nil)
	return nil
}

func (n *DeliveryNote) record(name string, now time.Time, payload map[string]any) {
	n.RecordEvent(ddd.Event{
		Name:          name,
		AggregateType: aggregateType,
		AggregateID:   n.id.String(),
		OccurredAt:    now,
		Payload:       payload,
	})
}

func (n *DeliveryNote) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *DeliveryNote) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrNumberIsRequired
	}
	n.number = number
	return nil
}

func (n *DeliveryNote) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	n.status = status
	return nil
}

func (n *DeliveryNote) setShipmentID(id *kernel.UUID) error {
	if err := kernel.ValidateOptionalUUIDs(id); err != nil {
		return err
	}
	n.shipmentID = id
	return nil
}

func (n *DeliveryNote) setSummary(s Summary) error {
	if s.ItemCount < 0 || s.TotalQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("summary", fmt.Errorf("counts must not be negative: %+v", s))
	}
	n.summary = s
	return nil
}
