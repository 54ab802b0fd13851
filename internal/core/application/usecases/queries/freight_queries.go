package queries

import (
	"context"

	"logistics/internal/core/domain/model/freight"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FreightChargeView struct {
	ID                  uuid.UUID          `json:"id"`
	ShipmentID          *uuid.UUID         `json:"shipmentId,omitempty"`
	TripID              *uuid.UUID         `json:"tripId,omitempty"`
	ChargeType          string             `json:"chargeType"`
	CalculationMethod   string             `json:"calculationMethod"`
	Quantity            decimal.Decimal    `json:"quantity"`
	Rate                decimal.Decimal    `json:"rate"`
	SlabRates           []freight.SlabRate `json:"slabRates,omitempty" gorm:"serializer:json"`
	BaseAmount          decimal.Decimal    `json:"baseAmount"`
	DiscountPercentage  decimal.Decimal    `json:"discountPercentage"`
	DiscountAmount      decimal.Decimal    `json:"discountAmount"`
	TaxPercentage       decimal.Decimal    `json:"taxPercentage"`
	AmountAfterDiscount decimal.Decimal    `json:"amountAfterDiscount"`
	TaxAmount           decimal.Decimal    `json:"taxAmount"`
	TotalAmount         decimal.Decimal    `json:"totalAmount"`
	Description         string             `json:"description,omitempty"`
}

func freightChargeView(c *freight.Charge) FreightChargeView {
	t := c.Terms()
	a := c.Amounts()
	return FreightChargeView{
		ID:                  c.ID().Bytes(),
		ShipmentID:          optionalID(t.ShipmentID),
		TripID:              optionalID(t.TripID),
		ChargeType:          string(t.Type),
		CalculationMethod:   string(t.Method),
		Quantity:            t.Quantity,
		Rate:                t.Rate,
		SlabRates:           t.SlabRates,
		BaseAmount:          t.BaseAmount,
		DiscountPercentage:  t.DiscountPercentage,
		DiscountAmount:      t.DiscountAmount,
		TaxPercentage:       t.TaxPercentage,
		AmountAfterDiscount: a.AfterDiscount,
		TaxAmount:           a.Tax,
		TotalAmount:         a.Total,
		Description:         t.Description,
	}
}

const selectFreightCharges = `
	SELECT id, shipment_id, trip_id, charge_type, calculation_method, quantity, rate, slab_rates,
		base_amount, discount_percentage, discount_amount, tax_percentage,
		amount_after_discount, tax_amount, total_amount, description
	FROM freight_charges`

type GetFreightChargeQuery struct{ byIDQuery }

func NewGetFreightChargeQuery(chargeID kernel.UUID) (GetFreightChargeQuery, error) {
	q, err := newByIDQuery(chargeID)
	return GetFreightChargeQuery{q}, err
}

type GetFreightChargeQueryHandler struct {
	db *gorm.DB
}

func NewGetFreightChargeQueryHandler(db *gorm.DB) GetFreightChargeQueryHandler {
	return GetFreightChargeQueryHandler{db: db}
}

func (h GetFreightChargeQueryHandler) Handle(ctx context.Context, query GetFreightChargeQuery) (FreightChargeView, error) {
	if err := query.Validate(); err != nil {
		return FreightChargeView{}, err
	}

	var view FreightChargeView
	found, err := selectOne(ctx, h.db, &view, selectFreightCharges+` WHERE id = ?`, query.ID().Bytes())
	if err != nil {
		return FreightChargeView{}, err
	}
	if !found {
		return FreightChargeView{}, errs.NewObjectNotFoundError("freightChargeId", query.ID())
	}
	return view, nil
}

type ListFreightChargesByShipmentQuery struct{ byIDQuery }

func NewListFreightChargesByShipmentQuery(shipmentID kernel.UUID) (ListFreightChargesByShipmentQuery, error) {
	q, err := newByIDQuery(shipmentID)
	return ListFreightChargesByShipmentQuery{q}, err
}

type ListFreightChargesByShipmentQueryHandler struct {
	db *gorm.DB
}

func NewListFreightChargesByShipmentQueryHandler(db *gorm.DB) ListFreightChargesByShipmentQueryHandler {
	return ListFreightChargesByShipmentQueryHandler{db: db}
}

func (h ListFreightChargesByShipmentQueryHandler) Handle(
	ctx context.Context,
	query ListFreightChargesByShipmentQuery,
) ([]FreightChargeView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return selectMany[FreightChargeView](ctx, h.db,
		selectFreightCharges+` WHERE shipment_id = ? ORDER BY created_at, id`, query.ID().Bytes())
}

// ShipmentChargesView totals the charge lines of one shipment.
type ShipmentChargesView struct {
	ShipmentID     uuid.UUID           `json:"shipmentId"`
	BaseAmount     decimal.Decimal     `json:"totalBaseAmount"`
	DiscountAmount decimal.Decimal     `json:"totalDiscount"`
	TaxAmount      decimal.Decimal     `json:"totalTax"`
	TotalAmount    decimal.Decimal     `json:"grandTotal"`
	Charges        []FreightChargeView `json:"charges"`
}

type CalculateShipmentChargesQuery struct{ byIDQuery }

func NewCalculateShipmentChargesQuery(shipmentID kernel.UUID) (CalculateShipmentChargesQuery, error) {
	q, err := newByIDQuery(shipmentID)
	return CalculateShipmentChargesQuery{q}, err
}

// CalculateShipmentChargesQueryHandler sums the shipment's lines. Amounts come from the
// reloaded charges, so they are always recomputed rather than read back from storage.
type CalculateShipmentChargesQueryHandler struct {
	charges    ports.FreightChargeRepository
	summarizer services.ChargeSummarizer
}

func NewCalculateShipmentChargesQueryHandler(
	charges ports.FreightChargeRepository,
	summarizer services.ChargeSummarizer,
) CalculateShipmentChargesQueryHandler {
	return CalculateShipmentChargesQueryHandler{charges: charges, summarizer: summarizer}
}

func (h CalculateShipmentChargesQueryHandler) Handle(
	ctx context.Context,
	query CalculateShipmentChargesQuery,
) (ShipmentChargesView, error) {
	if err := query.Validate(); err != nil {
		return ShipmentChargesView{}, err
	}

	lines, err := h.charges.GetByShipment(ctx, query.ID())
	if err != nil {
		return ShipmentChargesView{}, err
	}
	summary := h.summarizer.Summarize(lines)

	views := make([]FreightChargeView, 0, len(summary.Lines))
	for _, line := range summary.Lines {
		views = append(views, freightChargeView(line))
	}
	return ShipmentChargesView{
		ShipmentID:     query.ID().Bytes(),
		BaseAmount:     summary.BaseAmount,
		DiscountAmount: summary.DiscountAmount,
		TaxAmount:      summary.TaxAmount,
		TotalAmount:    summary.TotalAmount,
		Charges:        views,
	}, nil
}
