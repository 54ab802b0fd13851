package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RouteView struct {
	ID                       uuid.UUID       `json:"id"`
	RouteCode                string          `json:"routeCode"`
	Name                     string          `json:"name"`
	Origin                   string          `json:"origin,omitempty"`
	Destination              string          `json:"destination,omitempty"`
	TotalDistance            decimal.Decimal `json:"totalDistance"`
	EstimatedDurationMinutes int             `json:"estimatedDurationMinutes"`
	TotalTripsCompleted      int             `json:"totalTripsCompleted"`
	AverageActualDuration    decimal.Decimal `json:"averageActualDuration"`
}

const selectRoutes = `
	SELECT id, route_code, name, origin, destination, total_distance, estimated_duration_minutes,
		total_trips_completed, average_actual_duration
	FROM routes`

type GetRouteQuery struct{ byIDQuery }

func NewGetRouteQuery(routeID kernel.UUID) (GetRouteQuery, error) {
	q, err := newByIDQuery(routeID)
	return GetRouteQuery{q}, err
}

type GetRouteQueryHandler struct {
	db *gorm.DB
}

func NewGetRouteQueryHandler(db *gorm.DB) GetRouteQueryHandler {
	return GetRouteQueryHandler{db: db}
}

func (h GetRouteQueryHandler) Handle(ctx context.Context, query GetRouteQuery) (RouteView, error) {
	if err := query.Validate(); err != nil {
		return RouteView{}, err
	}

	var view RouteView
	found, err := selectOne(ctx, h.db, &view, selectRoutes+` WHERE id = ?`, query.ID().Bytes())
	if err != nil {
		return RouteView{}, err
	}
	if !found {
		return RouteView{}, errs.NewObjectNotFoundError("routeId", query.ID())
	}
	return view, nil
}

type ListRoutesQuery struct {
	guard guard.ConstructorGuard
}

func NewListRoutesQuery() ListRoutesQuery {
	return ListRoutesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListRoutesQuery) Validate() error {
	return q.guard.Validate(ErrQueryIsNotConstructed)
}

type ListRoutesQueryHandler struct {
	db *gorm.DB
}

func NewListRoutesQueryHandler(db *gorm.DB) ListRoutesQueryHandler {
	return ListRoutesQueryHandler{db: db}
}

func (h ListRoutesQueryHandler) Handle(ctx context.Context, query ListRoutesQuery) ([]RouteView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return selectMany[RouteView](ctx, h.db, selectRoutes+` ORDER BY route_code`)
}

type DeliveryNoteView struct {
	ID                 uuid.UUID  `json:"id"`
	DeliveryNoteNumber string     `json:"deliveryNoteNumber"`
	Status             string     `json:"status"`
	ShipmentID         *uuid.UUID `json:"shipmentId,omitempty"`
	ItemCount          int        `json:"itemCount"`
	TotalQuantity      int        `json:"totalQuantity"`
	ReceiverName       string     `json:"receiverName,omitempty"`
	SignatureURL       string     `json:"signatureUrl,omitempty"`
	PhotoURLs          []string   `json:"photoUrls,omitempty" gorm:"serializer:json"`
	PartialDelivery    bool       `json:"partialDelivery"`
	DeliveredAt        *time.Time `json:"deliveredAt,omitempty"`
}

type GetDeliveryNoteQuery struct{ byIDQuery }

func NewGetDeliveryNoteQuery(noteID kernel.UUID) (GetDeliveryNoteQuery, error) {
	q, err := newByIDQuery(noteID)
	return GetDeliveryNoteQuery{q}, err
}

type GetDeliveryNoteQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryNoteQueryHandler(db *gorm.DB) GetDeliveryNoteQueryHandler {
	return GetDeliveryNoteQueryHandler{db: db}
}

func (h GetDeliveryNoteQueryHandler) Handle(ctx context.Context, query GetDeliveryNoteQuery) (DeliveryNoteView, error) {
	if err := query.Validate(); err != nil {
		return DeliveryNoteView{}, err
	}

	var view DeliveryNoteView
	found, err := selectOne(ctx, h.db, &view, `
		SELECT id, delivery_note_number, status, shipment_id, item_count, total_quantity,
			receiver_name, signature_url, photo_urls, partial_delivery, delivered_at
		FROM delivery_notes
		WHERE id = ?
	`, query.ID().Bytes())
	if err != nil {
		return DeliveryNoteView{}, err
	}
	if !found {
		return DeliveryNoteView{}, errs.NewObjectNotFoundError("deliveryNoteId", query.ID())
	}
	return view, nil
}
