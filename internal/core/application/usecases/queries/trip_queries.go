package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/trip"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TripStopView struct {
	Sequence         int        `json:"sequence"`
	LocationName     string     `json:"locationName"`
	PlannedArrivalAt *time.Time `json:"plannedArrivalAt,omitempty"`
}

type TripView struct {
	ID                    uuid.UUID       `json:"id"`
	TripNumber            string          `json:"tripNumber"`
	VehicleID             uuid.UUID       `json:"vehicleId"`
	DriverID              uuid.UUID       `json:"driverId"`
	CoDriverID            *uuid.UUID      `json:"coDriverId,omitempty"`
	RouteID               *uuid.UUID      `json:"routeId,omitempty"`
	Status                string          `json:"status"`
	PlannedStartAt        *time.Time      `json:"plannedStartTime,omitempty"`
	PlannedEndAt          *time.Time      `json:"plannedEndTime,omitempty"`
	ActualStartAt         *time.Time      `json:"actualStartTime,omitempty"`
	ActualEndAt           *time.Time      `json:"actualEndTime,omitempty"`
	PlannedDistance       decimal.Decimal `json:"plannedDistance"`
	ActualDistance        decimal.Decimal `json:"actualDistance"`
	ActualDurationMinutes *int            `json:"actualDurationMinutes,omitempty"`
	CurrentLatitude       *float64        `json:"currentLatitude,omitempty"`
	CurrentLongitude      *float64        `json:"currentLongitude,omitempty"`
	LastLocationUpdateAt  *time.Time      `json:"lastLocationUpdate,omitempty"`
	IsDeliveryConfirmed   bool            `json:"isDeliveryConfirmed"`
	CancellationReason    string          `json:"cancellationReason,omitempty"`
	Stops                 []TripStopView  `json:"stops" gorm:"serializer:json"`
	FuelExpense           decimal.Decimal `json:"fuelExpense"`
	TollExpense           decimal.Decimal `json:"tollExpense"`
	OtherExpense          decimal.Decimal `json:"otherExpense"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

const selectTrips = `
	SELECT id, trip_number, vehicle_id, driver_id, co_driver_id, route_id, status,
		planned_start_at, planned_end_at, actual_start_at, actual_end_at, planned_distance,
		actual_distance, actual_duration_minutes, current_latitude, current_longitude,
		last_location_update_at, is_delivery_confirmed, cancellation_reason, stops,
		fuel_expense, toll_expense, other_expense, created_at, updated_at
	FROM trips`

type GetTripQuery struct{ byIDQuery }

func NewGetTripQuery(tripID kernel.UUID) (GetTripQuery, error) {
	q, err := newByIDQuery(tripID)
	return GetTripQuery{q}, err
}

type GetTripQueryHandler struct {
	db *gorm.DB
}

func NewGetTripQueryHandler(db *gorm.DB) GetTripQueryHandler {
	return GetTripQueryHandler{db: db}
}

func (h GetTripQueryHandler) Handle(ctx context.Context, query GetTripQuery) (TripView, error) {
	if err := query.Validate(); err != nil {
		return TripView{}, err
	}

	var view TripView
	found, err := selectOne(ctx, h.db, &view, selectTrips+` WHERE id = ?`, query.ID().Bytes())
	if err != nil {
		return TripView{}, err
	}
	if !found {
		return TripView{}, errs.NewObjectNotFoundError("tripId", query.ID())
	}
	return view, nil
}

type ListTripsQuery struct{ statusFilter }

func NewListTripsQuery(status *trip.Status) (ListTripsQuery, error) {
	f, err := newStatusFilter(status)
	return ListTripsQuery{f}, err
}

type ListTripsQueryHandler struct {
	db *gorm.DB
}

func NewListTripsQueryHandler(db *gorm.DB) ListTripsQueryHandler {
	return ListTripsQueryHandler{db: db}
}

func (h ListTripsQueryHandler) Handle(ctx context.Context, query ListTripsQuery) ([]TripView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	sql, args := query.where(selectTrips, "created_at DESC, trip_number")
	return selectMany[TripView](ctx, h.db, sql, args...)
}

// TripTrackingView is the tracking page of a trip. Vehicle registration and driver name
// are empty when the referenced record no longer exists.
type TripTrackingView struct {
	TripID             uuid.UUID           `json:"tripId"`
	TripNumber         string              `json:"tripNumber"`
	Status             string              `json:"status"`
	VehicleNumber      string              `json:"vehicleNumber"`
	DriverName         string              `json:"driverName"`
	CurrentLocation    string              `json:"currentLocation"`
	LastLocationUpdate *time.Time          `json:"lastLocationUpdate,omitempty"`
	Events             []TrackingEventView `json:"events"`
}

type GetTripTrackingQuery struct{ byIDQuery }

func NewGetTripTrackingQuery(tripID kernel.UUID) (GetTripTrackingQuery, error) {
	q, err := newByIDQuery(tripID)
	return GetTripTrackingQuery{q}, err
}

type GetTripTrackingQueryHandler struct {
	db        *gorm.DB
	events    ports.TrackingEventRepository
	projector services.TrackingProjector
}

func NewGetTripTrackingQueryHandler(
	db *gorm.DB,
	events ports.TrackingEventRepository,
	projector services.TrackingProjector,
) GetTripTrackingQueryHandler {
	return GetTripTrackingQueryHandler{db: db, events: events, projector: projector}
}

// Handle reports the trip's own last position as "lat, lon", or "Unknown" if it never
// reported one. Events are listed newest first.
func (h GetTripTrackingQueryHandler) Handle(ctx context.Context, query GetTripTrackingQuery) (TripTrackingView, error) {
	if err := query.Validate(); err != nil {
		return TripTrackingView{}, err
	}

	var header struct {
		ID                   uuid.UUID
		TripNumber           string
		Status               string
		RegistrationNumber   *string
		DriverName           *string
		CurrentLatitude      *float64
		CurrentLongitude     *float64
		LastLocationUpdateAt *time.Time
	}
	found, err := selectOne(ctx, h.db, &header, `
		SELECT t.id, t.trip_number, t.status, v.registration_number, d.name AS driver_name,
			t.current_latitude, t.current_longitude, t.last_location_update_at
		FROM trips t
		LEFT JOIN vehicles v ON v.id = t.vehicle_id
		LEFT JOIN drivers d ON d.id = t.driver_id
		WHERE t.id = ?
	`, query.ID().Bytes())
	if err != nil {
		return TripTrackingView{}, err
	}
	if !found {
		return TripTrackingView{}, errs.NewObjectNotFoundError("tripId", query.ID())
	}

	current := kernel.UnknownLocation
	if header.CurrentLatitude != nil && header.CurrentLongitude != nil {
		point, pointErr := kernel.NewReportedGeoPoint(*header.CurrentLatitude, *header.CurrentLongitude)
		if pointErr != nil {
			return TripTrackingView{}, pointErr
		}
		current = point.String()
	}

	events, err := h.events.GetByTrip(ctx, query.ID())
	if err != nil {
		return TripTrackingView{}, err
	}

	view := TripTrackingView{
		TripID:             header.ID,
		TripNumber:         header.TripNumber,
		Status:             header.Status,
		CurrentLocation:    current,
		LastLocationUpdate: header.LastLocationUpdateAt,
		Events:             trackingEventViews(h.projector.Project(events).Events),
	}
	if header.RegistrationNumber != nil {
		view.VehicleNumber = *header.RegistrationNumber
	}
	if header.DriverName != nil {
		view.DriverName = *header.DriverName
	}
	return view, nil
}
