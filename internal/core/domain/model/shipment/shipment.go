package shipment

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

const aggregateType = "shipment"

// Domain event names recorded by Shipment.
const (
	EventCreated        = "shipment.created"
	EventUpdated        = "shipment.updated"
	EventConfirmed      = "shipment.confirmed"
	EventDispatched     = "shipment.dispatched"
	EventInTransit      = "shipment.in_transit"
	EventOutForDelivery = "shipment.out_for_delivery"
	EventDelivered      = "shipment.delivered"
	EventCancelled      = "shipment.cancelled"
)

var (
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
	ErrNumberIsRequired         = errs.NewValueIsRequiredError("shipmentNumber")
)

// Packages aggregates the physical characteristics of the consignment.
type Packages struct {
	Count         int
	TotalWeight   decimal.Decimal
	TotalVolume   decimal.Decimal
	DeclaredValue decimal.Decimal
}

// Charges are the monetary totals of a shipment as supplied by the caller.
type Charges struct {
	FreightCharges decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
}

// Details is everything about a shipment the caller controls directly. Status and the
// progress stamps are owned by the lifecycle methods and cannot be set through Details.
type Details struct {
	Type              Type
	Priority          Priority
	Mode              Mode
	Origin            kernel.Address
	Destination       kernel.Address
	TripID            *kernel.UUID
	VehicleID         *kernel.UUID
	DriverID          *kernel.UUID
	RouteID           *kernel.UUID
	Packages          Packages
	PlannedPickupAt   *time.Time
	PlannedDeliveryAt *time.Time
	Charges           Charges
	Notes             string
}

// Progress holds the values stamped by lifecycle transitions.
type Progress struct {
	DispatchedAt       *time.Time
	ActualPickupAt     *time.Time
	ActualDeliveryAt   *time.Time
	DeliveredToName    string
	DeliveryRemarks    string
	CancellationReason string
}

// DeliveryConfirmation is what the receiving side reports when a shipment is delivered.
type DeliveryConfirmation struct {
	DeliveredToName string
	Remarks         string
}

// Shipment is the aggregate root for a consignment moving from origin to destination.
//
// Invariants:
//   - number is non-empty and unique (uniqueness is checked by the application layer)
//   - status is always a valid Status; new shipments start in Draft
//   - items are owned exclusively by the shipment
type Shipment struct {
	ddd.AggregateBase

	id       kernel.UUID
	number   string
	status   Status
	details  Details
	progress Progress
	items    []*Item

	guard guard.ConstructorGuard
}

// NewShipment creates a Draft shipment.
func NewShipment(id kernel.UUID, number string, details Details, items []*Item, now time.Time) (*Shipment, error) {
	s := &Shipment{
		status: Draft,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setNumber(number),
		s.setDetails(details),
		s.setItems(items),
	); err != nil {
		return nil, err
	}

	s.record(EventCreated, now, map[string]any{"shipmentNumber": s.number})
	return s, nil
}

// RestoreShipment rehydrates a shipment from storage without recording events.
func RestoreShipment(
	id kernel.UUID,
	number string,
	status Status,
	details Details,
	progress Progress,
	items []*Item,
	version int64,
) (*Shipment, error) {
	s := &Shipment{
		progress: progress,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setNumber(number),
		s.setStatus(status),
		s.setDetails(details),
		s.setItems(items),
	); err != nil {
		return nil, err
	}

	s.SetVersion(version)
	return s, nil
}

func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

func (s *Shipment) ID() kernel.UUID {
	return s.id
}

func (s *Shipment) Number() string {
	return s.number
}

func (s *Shipment) Status() Status {
	return s.status
}

func (s *Shipment) Details() Details {
	return s.details
}

func (s *Shipment) Progress() Progress {
	return s.progress
}

func (s *Shipment) Items() []*Item {
	out := make([]*Item, len(s.items))
	copy(out, s.items)
	return out
}

// Update replaces the caller-controlled details and the item lines. Status is untouched.
func (s *Shipment) Update(details Details, items []*Item, now time.Time) error {
	if err := errors.Join(s.setDetails(details), s.setItems(items)); err != nil {
		return err
	}
	s.record(EventUpdated, now, nil)
	return nil
}

// Confirm moves a Draft shipment to Confirmed.
func (s *Shipment) Confirm(now time.Time) error {
	next, err := s.status.Confirm()
	if err != nil {
		return err
	}
	s.status = next
	s.record(EventConfirmed, now, nil)
	return nil
}

// Dispatch moves a Confirmed shipment to Dispatched and stamps the dispatch date.
func (s *Shipment) Dispatch(now time.Time) error {
	next, err := s.status.Dispatch()
	if err != nil {
		return err
	}
	s.status = next
	s.progress.DispatchedAt = &now
	s.record(EventDispatched, now, nil)
	return nil
}

// MarkInTransit sets InTransit from any status.
func (s *Shipment) MarkInTransit(now time.Time) {
	s.status = InTransit
	s.record(EventInTransit, now, nil)
}

// MarkOutForDelivery sets OutForDelivery from any status.
func (s *Shipment) MarkOutForDelivery(now time.Time) {
	s.status = OutForDelivery
	s.record(EventOutForDelivery, now, nil)
}

// MarkDelivered sets Delivered from any status, stamps the actual delivery date and keeps
// the receiver's confirmation.
func (s *Shipment) MarkDelivered(confirmation DeliveryConfirmation, now time.Time) {
	s.status = Delivered
	s.progress.ActualDeliveryAt = &now
	s.progress.DeliveredToName = confirmation.DeliveredToName
	s.progress.DeliveryRemarks = confirmation.Remarks
	s.record(EventDelivered, now, map[string]any{"deliveredToName": confirmation.DeliveredToName})
}

// Cancel moves the shipment to Cancelled unless it has been delivered.
func (s *Shipment) Cancel(reason string, now time.Time) error {
	next, err := s.status.Cancel()
	if err != nil {
		return err
	}
	s.status = next
	s.progress.CancellationReason = reason
	s.record(EventCancelled, now, map[string]any{"reason": reason})
	return nil
}

// ValidateRemove reports whether the shipment may be deleted.
func (s *Shipment) ValidateRemove() error {
	return s.status.ValidateRemove()
}

func (s *Shipment) record(name string, now time.Time, payload map[string]any) {
	s.RecordEvent(ddd.Event{
		Name:          name,
		AggregateType: aggregateType,
		AggregateID:   s.id.String(),
		OccurredAt:    now,
		Payload:       payload,
	})
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrNumberIsRequired
	}
	s.number = number
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setDetails(d Details) error {
	if err := errors.Join(
		d.Type.Validate(),
		d.Priority.Validate(),
		d.Mode.Validate(),
		d.Origin.Validate(),
		d.Destination.Validate(),
		kernel.ValidateOptionalUUIDs(d.TripID, d.VehicleID, d.DriverID, d.RouteID),
		validatePackages(d.Packages),
	); err != nil {
		return err
	}
	s.details = d
	return nil
}

func (s *Shipment) setItems(items []*Item) error {
	seen := make(map[int]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		line := item.Fields().LineNumber
		if _, dup := seen[line]; dup {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("line number %d is used twice", line))
		}
		seen[line] = struct{}{}
	}

	s.items = make([]*Item, len(items))
	copy(s.items, items)
	return nil
}

func validatePackages(p Packages) error {
	if p.Count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("packageCount", fmt.Errorf("%d is negative", p.Count))
	}
	for name, v := range map[string]decimal.Decimal{
		"totalWeight":   p.TotalWeight,
		"totalVolume":   p.TotalVolume,
		"declaredValue": p.DeclaredValue,
	} {
		if v.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", v))
		}
	}
	return nil
}
