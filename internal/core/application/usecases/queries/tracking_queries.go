package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrackingEventView struct {
	ID               uuid.UUID  `json:"id"`
	EventNumber      string     `json:"eventNumber"`
	EventType        string     `json:"eventType"`
	Severity         string     `json:"severity"`
	ShipmentID       *uuid.UUID `json:"shipmentId,omitempty"`
	TripID           *uuid.UUID `json:"tripId,omitempty"`
	EventTimestamp   time.Time  `json:"eventTimestamp"`
	LocationName     string     `json:"locationName,omitempty"`
	Latitude         *float64   `json:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty"`
	Description      string     `json:"description,omitempty"`
	ExceptionType    string     `json:"exceptionType,omitempty"`
	ExceptionDetails string     `json:"exceptionDetails,omitempty"`
	IsResolved       bool       `json:"isResolved"`
	ResolvedAt       *time.Time `json:"resolvedAt,omitempty"`
	ResolutionNotes  string     `json:"resolutionNotes,omitempty"`
}

func trackingEventView(e *tracking.Event) TrackingEventView {
	d := e.Details()
	r := e.Resolution()
	view := TrackingEventView{
		ID:               e.ID().Bytes(),
		EventNumber:      e.Number(),
		EventType:        string(d.Type),
		Severity:         string(d.Severity),
		ShipmentID:       optionalID(d.ShipmentID),
		TripID:           optionalID(d.TripID),
		EventTimestamp:   d.Timestamp,
		LocationName:     d.LocationName,
		Description:      d.Description,
		ExceptionType:    d.ExceptionType,
		ExceptionDetails: d.ExceptionDetails,
		IsResolved:       r.IsResolved,
		ResolvedAt:       r.ResolvedAt,
		ResolutionNotes:  r.Notes,
	}
	if d.Location != nil {
		lat, lon := d.Location.Latitude(), d.Location.Longitude()
		view.Latitude, view.Longitude = &lat, &lon
	}
	return view
}

func trackingEventViews(events []*tracking.Event) []TrackingEventView {
	views := make([]TrackingEventView, 0, len(events))
	for _, e := range events {
		views = append(views, trackingEventView(e))
	}
	return views
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := id.Bytes()
	return &v
}

const selectTrackingEvents = `
	SELECT id, event_number, event_type, severity, shipment_id, trip_id, event_timestamp,
		location_name, latitude, longitude, description, exception_type, exception_details,
		is_resolved, resolved_at, resolution_notes
	FROM tracking_events`

type GetTrackingEventQuery struct{ byIDQuery }

func NewGetTrackingEventQuery(eventID kernel.UUID) (GetTrackingEventQuery, error) {
	q, err := newByIDQuery(eventID)
	return GetTrackingEventQuery{q}, err
}

type GetTrackingEventQueryHandler struct {
	db *gorm.DB
}

func NewGetTrackingEventQueryHandler(db *gorm.DB) GetTrackingEventQueryHandler {
	return GetTrackingEventQueryHandler{db: db}
}

func (h GetTrackingEventQueryHandler) Handle(ctx context.Context, query GetTrackingEventQuery) (TrackingEventView, error) {
	if err := query.Validate(); err != nil {
		return TrackingEventView{}, err
	}

	var view TrackingEventView
	found, err := selectOne(ctx, h.db, &view, selectTrackingEvents+` WHERE id = ?`, query.ID().Bytes())
	if err != nil {
		return TrackingEventView{}, err
	}
	if !found {
		return TrackingEventView{}, errs.NewObjectNotFoundError("eventId", query.ID())
	}
	return view, nil
}

// TrackingEventsFilter selects which events ListTrackingEventsQuery returns. ShipmentID
// and TripID are exclusive; with neither set every event is returned newest first.
type TrackingEventsFilter struct {
	ShipmentID *kernel.UUID
	TripID     *kernel.UUID
}

type ListTrackingEventsQuery struct {
	filter TrackingEventsFilter
	guard  guard.ConstructorGuard
}

func NewListTrackingEventsQuery(filter TrackingEventsFilter) (ListTrackingEventsQuery, error) {
	if err := kernel.ValidateOptionalUUIDs(filter.ShipmentID, filter.TripID); err != nil {
		return ListTrackingEventsQuery{}, err
	}
	if filter.ShipmentID != nil && filter.TripID != nil {
		return ListTrackingEventsQuery{}, errs.NewValueIsInvalidError("filter")
	}
	return ListTrackingEventsQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListTrackingEventsQuery) Validate() error {
	return q.guard.Validate(ErrQueryIsNotConstructed)
}

type ListTrackingEventsQueryHandler struct {
	db *gorm.DB
}

func NewListTrackingEventsQueryHandler(db *gorm.DB) ListTrackingEventsQueryHandler {
	return ListTrackingEventsQueryHandler{db: db}
}

// Handle returns the events of one shipment or trip oldest first, or all events newest
// first when the filter is empty.
func (h ListTrackingEventsQueryHandler) Handle(ctx context.Context, query ListTrackingEventsQuery) ([]TrackingEventView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	switch f := query.filter; {
	case f.ShipmentID != nil:
		return selectMany[TrackingEventView](ctx, h.db,
			selectTrackingEvents+` WHERE shipment_id = ? ORDER BY event_timestamp ASC, event_number ASC`,
			f.ShipmentID.Bytes())
	case f.TripID != nil:
		return selectMany[TrackingEventView](ctx, h.db,
			selectTrackingEvents+` WHERE trip_id = ? ORDER BY event_timestamp ASC, event_number ASC`,
			f.TripID.Bytes())
	default:
		return selectMany[TrackingEventView](ctx, h.db,
			selectTrackingEvents+` ORDER BY event_timestamp DESC, event_number DESC`)
	}
}
