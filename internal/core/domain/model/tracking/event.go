package tracking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/ddd"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const aggregateType = "tracking_event"

const (
	DomainEventRecorded = "tracking.event_recorded"
	DomainEventUpdated  = "tracking.event_updated"
	DomainEventResolved = "tracking.event_resolved"
)

var (
	ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent constructor")
	ErrNumberIsRequired      = errs.NewValueIsRequiredError("eventNumber")
)

// Details is the correctable content of an event.
type Details struct {
	Type             EventType
	Severity         Severity
	ShipmentID       *kernel.UUID
	TripID           *kernel.UUID
	Timestamp        time.Time
	LocationName     string
	Location         *kernel.GeoPoint
	Description      string
	ExceptionType    string
	ExceptionDetails string
}

type Resolution struct {
	IsResolved bool
	ResolvedAt *time.Time
	Notes      string
}

type Event struct {
	ddd.AggregateBase

	id         kernel.UUID
	number     string
	details    Details
	resolution Resolution

	guard guard.ConstructorGuard
}

// GenerateNumber builds the event number used when the caller does not supply one.
func GenerateNumber(id kernel.UUID, now time.Time) string {
	return fmt.Sprintf("EVT-%d-%s", now.UnixMilli(), strings.ToUpper(id.String()[:8]))
}

// NewEvent records a new event. A zero timestamp defaults to now and a missing severity
// to Info.
func NewEvent(id kernel.UUID, number string, details Details, now time.Time) (*Event, error) {
	e := &Event{guard: guard.NewConstructorGuard()}

	if details.Timestamp.IsZero() {
		details.Timestamp = now
	}
	if details.Severity == "" {
		details.Severity = SeverityInfo
	}

	if err := errors.Join(
		e.setID(id),
		e.setNumber(number),
		e.setDetails(details),
	); err != nil {
		return nil, err
	}

	e.record(DomainEventRecorded, now)
	return e, nil
}

func RestoreEvent(id kernel.UUID, number string, details Details, resolution Resolution, version int64) (*Event, error) {
	e := &Event{
		resolution: resolution,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setNumber(number),
		e.setDetails(details),
	); err != nil {
		return nil, err
	}

	e.SetVersion(version)
	return e, nil
}

func (e *Event) Validate() error {
	if e == nil {
		return ErrEventIsNotConstructed
	}
	return e.guard.Validate(ErrEventIsNotConstructed)
}

func (e *Event) ID() kernel.UUID {
	return e.id
}

func (e *Event) Number() string {
	return e.number
}

func (e *Event) Details() Details {
	return e.details
}

func (e *Event) Resolution() Resolution {
	return e.resolution
}

// Update corrects the event content. The resolution is kept.
func (e *Event) Update(details Details, now time.Time) error {
	if details.Timestamp.IsZero() {
		details.Timestamp = e.details.Timestamp
	}
	if details.Severity == "" {
		details.Severity = e.details.Severity
	}
	if err := e.setDetails(details); err != nil {
		return err
	}
	e.record(DomainEventUpdated, now)
	return nil
}

// Resolve marks the event resolved. Resolving again overwrites the notes and the time.
func (e *Event) Resolve(notes string, now time.Time) {
	e.resolution = Resolution{IsResolved: true, ResolvedAt: &now, Notes: notes}
	e.record(DomainEventResolved, now)
}

func (e *Event) record(name string, now time.Time) {
	payload := map[string]any{
		"eventNumber": e.number,
		"eventType":   string(e.details.Type),
	}
	if e.details.ShipmentID != nil {
		payload["shipmentId"] = e.details.ShipmentID.String()
	}
	if e.details.TripID != nil {
		payload["tripId"] = e.details.TripID.String()
	}
	e.RecordEvent(ddd.Event{
		Name:          name,
		AggregateType: aggregateType,
		AggregateID:   e.id.String(),
		OccurredAt:    now,
		Payload:       payload,
	})
}

func (e *Event) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Event) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrNumberIsRequired
	}
	e.number = number
	return nil
}

func (e *Event) setDetails(d Details) error {
	var locationErr error
	if d.Location != nil {
		locationErr = d.Location.Validate()
	}
	var timestampErr error
	if d.Timestamp.IsZero() {
		timestampErr = errs.NewValueIsRequiredError("eventTimestamp")
	}

	if err := errors.Join(
		d.Type.Validate(),
		d.Severity.Validate(),
		kernel.ValidateOptionalUUIDs(d.ShipmentID, d.TripID),
		locationErr,
		timestampErr,
	); err != nil {
		return err
	}
	e.details = d
	return nil
}
