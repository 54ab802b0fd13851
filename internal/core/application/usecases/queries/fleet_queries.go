package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DriverView struct {
	ID                   uuid.UUID       `json:"id"`
	DriverCode           string          `json:"driverCode"`
	Name                 string          `json:"name"`
	LicenseNumber        string          `json:"licenseNumber"`
	Phone                string          `json:"phone,omitempty"`
	Status               string          `json:"status"`
	IsAvailable          bool            `json:"isAvailable"`
	CurrentTripID        *uuid.UUID      `json:"currentTripId,omitempty"`
	TotalTrips           int             `json:"totalTrips"`
	TotalDistanceCovered decimal.Decimal `json:"totalDistanceCovered"`
	AccidentCount        int             `json:"accidentCount"`
}

const selectDrivers = `
	SELECT id, driver_code, name, license_number, phone, status, is_available, current_trip_id,
		total_trips, total_distance_covered, accident_count
	FROM drivers`

type GetDriverQuery struct{ byIDQuery }

func NewGetDriverQuery(driverID kernel.UUID) (GetDriverQuery, error) {
	q, err := newByIDQuery(driverID)
	return GetDriverQuery{q}, err
}

type GetDriverQueryHandler struct {
	db *gorm.DB
}

func NewGetDriverQueryHandler(db *gorm.DB) GetDriverQueryHandler {
	return GetDriverQueryHandler{db: db}
}

func (h GetDriverQueryHandler) Handle(ctx context.Context, query GetDriverQuery) (DriverView, error) {
	if err := query.Validate(); err != nil {
		return DriverView{}, err
	}

	var view DriverView
	found, err := selectOne(ctx, h.db, &view, selectDrivers+` WHERE id = ?`, query.ID().Bytes())
	if err != nil {
		return DriverView{}, err
	}
	if !found {
		return DriverView{}, errs.NewObjectNotFoundError("driverId", query.ID())
	}
	return view, nil
}

type ListDriversQuery struct{ statusFilter }

func NewListDriversQuery(status *driver.Status) (ListDriversQuery, error) {
	f, err := newStatusFilter(status)
	return ListDriversQuery{f}, err
}

type ListDriversQueryHandler struct {
	db *gorm.DB
}

func NewListDriversQueryHandler(db *gorm.DB) ListDriversQueryHandler {
	return ListDriversQueryHandler{db: db}
}

func (h ListDriversQueryHandler) Handle(ctx context.Context, query ListDriversQuery) ([]DriverView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	sql, args := query.where(selectDrivers, "name, driver_code")
	return selectMany[DriverView](ctx, h.db, sql, args...)
}

type FindAvailableDriversQuery struct {
	guard guard.ConstructorGuard
}

func NewFindAvailableDriversQuery() FindAvailableDriversQuery {
	return FindAvailableDriversQuery{guard: guard.NewConstructorGuard()}
}

func (q FindAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrQueryIsNotConstructed)
}

// FindAvailableDriversQueryHandler lists Active drivers flagged available, by name.
type FindAvailableDriversQueryHandler struct {
	db *gorm.DB
}

func NewFindAvailableDriversQueryHandler(db *gorm.DB) FindAvailableDriversQueryHandler {
	return FindAvailableDriversQueryHandler{db: db}
}

func (h FindAvailableDriversQueryHandler) Handle(ctx context.Context, query FindAvailableDriversQuery) ([]DriverView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return selectMany[DriverView](ctx, h.db,
		selectDrivers+` WHERE status = ? AND is_available ORDER BY name, driver_code`, driver.Active.String())
}

type VehicleView struct {
	ID                     uuid.UUID       `json:"id"`
	VehicleCode            string          `json:"vehicleCode"`
	RegistrationNumber     string          `json:"registrationNumber"`
	VehicleTypeCode        string          `json:"vehicleTypeCode,omitempty"`
	Make                   string          `json:"make,omitempty"`
	Model                  string          `json:"model,omitempty"`
	Status                 string          `json:"status"`
	CurrentDriverID        *uuid.UUID      `json:"currentDriverId,omitempty"`
	LastLatitude           *float64        `json:"lastLatitude,omitempty"`
	LastLongitude          *float64        `json:"lastLongitude,omitempty"`
	LastLocationAt         *time.Time      `json:"lastLocationUpdate,omitempty"`
	CurrentOdometerReading decimal.Decimal `json:"currentOdometerReading"`
}

const selectVehicles = `
	SELECT id, vehicle_code, registration_number, vehicle_type_code, make, model, status,
		current_driver_id, last_latitude, last_longitude, last_location_at, current_odometer_reading
	FROM vehicles`

type GetVehicleQuery struct{ byIDQuery }

func NewGetVehicleQuery(vehicleID kernel.UUID) (GetVehicleQuery, error) {
	q, err := newByIDQuery(vehicleID)
	return GetVehicleQuery{q}, err
}

type GetVehicleQueryHandler struct {
	db *gorm.DB
}

func NewGetVehicleQueryHandler(db *gorm.DB) GetVehicleQueryHandler {
	return GetVehicleQueryHandler{db: db}
}

func (h GetVehicleQueryHandler) Handle(ctx context.Context, query GetVehicleQuery) (VehicleView, error) {
	if err := query.Validate(); err != nil {
		return VehicleView{}, err
	}

	var view VehicleView
	found, err := selectOne(ctx, h.db, &view, selectVehicles+` WHERE id = ?`, query.ID().Bytes())
	if err != nil {
		return VehicleView{}, err
	}
	if !found {
		return VehicleView{}, errs.NewObjectNotFoundError("vehicleId", query.ID())
	}
	return view, nil
}

type ListVehiclesQuery struct{ statusFilter }

func NewListVehiclesQuery(status *vehicle.Status) (ListVehiclesQuery, error) {
	f, err := newStatusFilter(status)
	return ListVehiclesQuery{f}, err
}

type ListVehiclesQueryHandler struct {
	db *gorm.DB
}

func NewListVehiclesQueryHandler(db *gorm.DB) ListVehiclesQueryHandler {
	return ListVehiclesQueryHandler{db: db}
}

func (h ListVehiclesQueryHandler) Handle(ctx context.Context, query ListVehiclesQuery) ([]VehicleView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	sql, args := query.where(selectVehicles, "vehicle_code")
	return selectMany[VehicleView](ctx, h.db, sql, args...)
}
