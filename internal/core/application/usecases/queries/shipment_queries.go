package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AddressView struct {
	Line1        string `json:"line1,omitempty"`
	Line2        string `json:"line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	Country      string `json:"country,omitempty"`
	ContactName  string `json:"contactName,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
}

type ShipmentItemView struct {
	ID                uuid.UUID       `json:"id"`
	LineNumber        int             `json:"lineNumber"`
	ProductCode       string          `json:"productCode"`
	Description       string          `json:"description,omitempty"`
	OrderedQuantity   int             `json:"orderedQuantity"`
	ShippedQuantity   int             `json:"shippedQuantity"`
	DeliveredQuantity int             `json:"deliveredQuantity"`
	DamagedQuantity   int             `json:"damagedQuantity"`
	ReturnedQuantity  int             `json:"returnedQuantity"`
	UnitWeight        decimal.Decimal `json:"unitWeight"`
}

type ShipmentView struct {
	ID                 uuid.UUID          `json:"id"`
	ShipmentNumber     string             `json:"shipmentNumber"`
	Type               string             `json:"shipmentType"`
	Priority           string             `json:"priority"`
	Mode               string             `json:"transportMode"`
	Status             string             `json:"status"`
	Origin             AddressView        `json:"origin"`
	Destination        AddressView        `json:"destination"`
	TripID             *uuid.UUID         `json:"tripId,omitempty"`
	VehicleID          *uuid.UUID         `json:"vehicleId,omitempty"`
	DriverID           *uuid.UUID         `json:"driverId,omitempty"`
	RouteID            *uuid.UUID         `json:"routeId,omitempty"`
	PackageCount       int                `json:"packageCount"`
	TotalWeight        decimal.Decimal    `json:"totalWeight"`
	TotalVolume        decimal.Decimal    `json:"totalVolume"`
	DeclaredValue      decimal.Decimal    `json:"declaredValue"`
	PlannedPickupAt    *time.Time         `json:"plannedPickupDate,omitempty"`
	PlannedDeliveryAt  *time.Time         `json:"plannedDeliveryDate,omitempty"`
	ActualPickupAt     *time.Time         `json:"actualPickupDate,omitempty"`
	ActualDeliveryAt   *time.Time         `json:"actualDeliveryDate,omitempty"`
	DispatchedAt       *time.Time         `json:"dispatchedDate,omitempty"`
	DeliveredToName    string             `json:"deliveredToName,omitempty"`
	DeliveryRemarks    string             `json:"deliveryRemarks,omitempty"`
	CancellationReason string             `json:"cancellationReason,omitempty"`
	FreightCharges     decimal.Decimal    `json:"freightCharges"`
	TaxAmount          decimal.Decimal    `json:"taxAmount"`
	TotalAmount        decimal.Decimal    `json:"totalAmount"`
	Notes              string             `json:"notes,omitempty"`
	Items              []ShipmentItemView `json:"items"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

type shipmentRow struct {
	ID                      uuid.UUID
	ShipmentNumber          string
	Type                    string
	Priority                string
	Mode                    string
	Status                  string
	OriginLine1             string
	OriginLine2             string
	OriginCity              string
	OriginState             string
	OriginPostalCode        string
	OriginCountry           string
	OriginContactName       string
	OriginContactPhone      string
	DestinationLine1        string
	DestinationLine2        string
	DestinationCity         string
	DestinationState        string
	DestinationPostalCode   string
	DestinationCountry      string
	DestinationContactName  string
	DestinationContactPhone string
	TripID                  *uuid.UUID
	VehicleID               *uuid.UUID
	DriverID                *uuid.UUID
	RouteID                 *uuid.UUID
	PackageCount            int
	TotalWeight             decimal.Decimal
	TotalVolume             decimal.Decimal
	DeclaredValue           decimal.Decimal
	PlannedPickupAt         *time.Time
	PlannedDeliveryAt       *time.Time
	ActualPickupAt          *time.Time
	ActualDeliveryAt        *time.Time
	DispatchedAt            *time.Time
	DeliveredToName         string
	DeliveryRemarks         string
	CancellationReason      string
	FreightCharges          decimal.Decimal
	TaxAmount               decimal.Decimal
	TotalAmount             decimal.Decimal
	Notes                   string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

func (r shipmentRow) view() ShipmentView {
	return ShipmentView{
		ID:             r.ID,
		ShipmentNumber: r.ShipmentNumber,
		Type:           r.Type,
		Priority:       r.Priority,
		Mode:           r.Mode,
		Status:         r.Status,
		Origin: AddressView{
			Line1: r.OriginLine1, Line2: r.OriginLine2, City: r.OriginCity, State: r.OriginState,
			PostalCode: r.OriginPostalCode, Country: r.OriginCountry,
			ContactName: r.OriginContactName, ContactPhone: r.OriginContactPhone,
		},
		Destination: AddressView{
			Line1: r.DestinationLine1, Line2: r.DestinationLine2, City: r.DestinationCity, State: r.DestinationState,
			PostalCode: r.DestinationPostalCode, Country: r.DestinationCountry,
			ContactName: r.DestinationContactName, ContactPhone: r.DestinationContactPhone,
		},
		TripID:             r.TripID,
		VehicleID:          r.VehicleID,
		DriverID:           r.DriverID,
		RouteID:            r.RouteID,
		PackageCount:       r.PackageCount,
		TotalWeight:        r.TotalWeight,
		TotalVolume:        r.TotalVolume,
		DeclaredValue:      r.DeclaredValue,
		PlannedPickupAt:    r.PlannedPickupAt,
		PlannedDeliveryAt:  r.PlannedDeliveryAt,
		ActualPickupAt:     r.ActualPickupAt,
		ActualDeliveryAt:   r.ActualDeliveryAt,
		DispatchedAt:       r.DispatchedAt,
		DeliveredToName:    r.DeliveredToName,
		DeliveryRemarks:    r.DeliveryRemarks,
		CancellationReason: r.CancellationReason,
		FreightCharges:     r.FreightCharges,
		TaxAmount:          r.TaxAmount,
		TotalAmount:        r.TotalAmount,
		Notes:              r.Notes,
		Items:              []ShipmentItemView{},
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

const selectShipments = `SELECT * FROM shipments`

type GetShipmentQuery struct{ byIDQuery }

func NewGetShipmentQuery(shipmentID kernel.UUID) (GetShipmentQuery, error) {
	q, err := newByIDQuery(shipmentID)
	return GetShipmentQuery{q}, err
}

// GetShipmentQueryHandler returns one shipment with its item lines ordered by line number.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (ShipmentView, error) {
	if err := query.Validate(); err != nil {
		return ShipmentView{}, err
	}

	var row shipmentRow
	found, err := selectOne(ctx, h.db, &row, selectShipments+` WHERE id = ?`, query.ID().Bytes())
	if err != nil {
		return ShipmentView{}, err
	}
	if !found {
		return ShipmentView{}, errs.NewObjectNotFoundError("shipmentId", query.ID())
	}

	items, err := selectMany[ShipmentItemView](ctx, h.db, `
		SELECT id, line_number, product_code, description, ordered_quantity, shipped_quantity,
			delivered_quantity, damaged_quantity, returned_quantity, unit_weight
		FROM shipment_items
		WHERE shipment_id = ?
		ORDER BY line_number
	`, query.ID().Bytes())
	if err != nil {
		return ShipmentView{}, err
	}

	view := row.view()
	view.Items = items
	return view, nil
}

// ListShipmentsQuery lists shipments newest first, optionally narrowed to one status.
type ListShipmentsQuery struct{ statusFilter }

func NewListShipmentsQuery(status *shipment.Status) (ListShipmentsQuery, error) {
	f, err := newStatusFilter(status)
	return ListShipmentsQuery{f}, err
}

type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle returns the shipment headers. Item lines are only loaded by GetShipmentQuery.
func (h ListShipmentsQueryHandler) Handle(ctx context.Context, query ListShipmentsQuery) ([]ShipmentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql, args := query.where(selectShipments, "created_at DESC, shipment_number")
	rows, err := selectMany[shipmentRow](ctx, h.db, sql, args...)
	if err != nil {
		return nil, err
	}

	views := make([]ShipmentView, 0, len(rows))
	for _, r := range rows {
		views = append(views, r.view())
	}
	return views, nil
}

// ShipmentTrackingView is the tracking page of a shipment.
type ShipmentTrackingView struct {
	ShipmentID      uuid.UUID           `json:"shipmentId"`
	ShipmentNumber  string              `json:"shipmentNumber"`
	Status          string              `json:"status"`
	CurrentLocation string              `json:"currentLocation"`
	Events          []TrackingEventView `json:"events"`
}

type GetShipmentTrackingQuery struct{ byIDQuery }

func NewGetShipmentTrackingQuery(shipmentID kernel.UUID) (GetShipmentTrackingQuery, error) {
	q, err := newByIDQuery(shipmentID)
	return GetShipmentTrackingQuery{q}, err
}

type GetShipmentTrackingQueryHandler struct {
	db        *gorm.DB
	events    ports.TrackingEventRepository
	projector services.TrackingProjector
}

func NewGetShipmentTrackingQueryHandler(
	db *gorm.DB,
	events ports.TrackingEventRepository,
	projector services.TrackingProjector,
) GetShipmentTrackingQueryHandler {
	return GetShipmentTrackingQueryHandler{db: db, events: events, projector: projector}
}

// Handle lists the shipment's events newest first. The current location is the location
// name of the newest event, "Unknown" without events.
func (h GetShipmentTrackingQueryHandler) Handle(ctx context.Context, query GetShipmentTrackingQuery) (ShipmentTrackingView, error) {
	if err := query.Validate(); err != nil {
		return ShipmentTrackingView{}, err
	}

	var header struct {
		ID             uuid.UUID
		ShipmentNumber string
		Status         string
	}
	found, err := selectOne(ctx, h.db, &header,
		`SELECT id, shipment_number, status FROM shipments WHERE id = ?`, query.ID().Bytes())
	if err != nil {
		return ShipmentTrackingView{}, err
	}
	if !found {
		return ShipmentTrackingView{}, errs.NewObjectNotFoundError("shipmentId", query.ID())
	}

	events, err := h.events.GetByShipment(ctx, query.ID())
	if err != nil {
		return ShipmentTrackingView{}, err
	}
	projection := h.projector.Project(events)

	return ShipmentTrackingView{
		ShipmentID:      header.ID,
		ShipmentNumber:  header.ShipmentNumber,
		Status:          header.Status,
		CurrentLocation: projection.CurrentLocation,
		Events:          trackingEventViews(projection.Events),
	}, nil
}
