// Package freight implements the freight charge line and the flat charge calculator.
//
// The derived amounts of a line (after discount, tax, total) are recomputed on every
// create and update and cannot be supplied by callers.
package freight

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

	"github.com/shopspring/decimal"
)

const aggregateType = "freight_charge"

const (
	EventCreated = "freight.charge_created"
	EventUpdated = "freight.charge_updated"
)

var ErrChargeIsNotConstructed = errors.New("Charge must be created via NewCharge constructor")

// SlabRate is stored for SlabRate lines.
type SlabRate struct {
	From decimal.Decimal `json:"from"`
	To   decimal.Decimal `json:"to"`
	Rate decimal.Decimal `json:"rate"`
}

// Terms are the caller inputs of a charge line.
type Terms struct {
	ShipmentID         *kernel.UUID
	TripID             *kernel.UUID
	Type               ChargeType
	Method             CalculationMethod
	Quantity           decimal.Decimal
	Rate               decimal.Decimal
	SlabRates          []SlabRate
	BaseAmount         decimal.Decimal
	DiscountPercentage decimal.Decimal
	DiscountAmount     decimal.Decimal
	TaxPercentage      decimal.Decimal
	Description        string
}

type Charge struct {
	ddd.AggregateBase

	id      kernel.UUID
	terms   Terms
	amounts Amounts

	guard guard.ConstructorGuard
}

func NewCharge(id kernel.UUID, terms Terms, now time.Time) (*Charge, error) {
	c := &Charge{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.setTerms(terms),
	); err != nil {
		return nil, err
	}

	c.record(EventCreated, now)
	return c, nil
}

// RestoreCharge ignores whatever derived amounts were stored and recomputes them.
func RestoreCharge(id kernel.UUID, terms Terms, version int64) (*Charge, error) {
	c := &Charge{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.setTerms(terms),
	); err != nil {
		return nil, err
	}

	c.SetVersion(version)
	return c, nil
}

func (c *Charge) Validate() error {
	if c == nil {
		return ErrChargeIsNotConstructed
	}
	return c.guard.Validate(ErrChargeIsNotConstructed)
}

func (c *Charge) ID() kernel.UUID {
	return c.id
}

func (c *Charge) Terms() Terms {
	t := c.terms
	t.SlabRates = slices.Clone(c.terms.SlabRates)
	return t
}

func (c *Charge) Amounts() Amounts {
	return c.amounts
}

// Update replaces the terms and recomputes the amounts.
func (c *Charge) Update(terms Terms, now time.Time) error {
	if err := c.setTerms(terms); err != nil {
		return err
	}
	c.record(EventUpdated, now)
	return nil
}

func (c *Charge) record(name string, now time.Time) {
	payload := map[string]any{
		"chargeType":  string(c.terms.Type),
		"totalAmount": c.amounts.Total.String(),
	}
	if c.terms.ShipmentID != nil {
		payload["shipmentId"] = c.terms.ShipmentID.String()
	}
	c.RecordEvent(ddd.Event{
		Name:          name,
		AggregateType: aggregateType,
		AggregateID:   c.id.String(),
		OccurredAt:    now,
		Payload:       payload,
	})
}

func (c *Charge) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Charge) setTerms(t Terms) error {
	var errList []error
	errList = append(errList,
		t.Type.Validate(),
		t.Method.Validate(),
		kernel.ValidateOptionalUUIDs(t.ShipmentID, t.TripID),
	)
	for name, v := range map[string]decimal.Decimal{
		"quantity":           t.Quantity,
		"rate":               t.Rate,
		"baseAmount":         t.BaseAmount,
		"discountPercentage": t.DiscountPercentage,
		"discountAmount":     t.DiscountAmount,
		"taxPercentage":      t.TaxPercentage,
	} {
		if v.IsNegative() {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", v)))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	t.Description = strings.TrimSpace(t.Description)
	t.SlabRates = slices.Clone(t.SlabRates)
	c.terms = t
	c.amounts = Calculate(t.BaseAmount, t.DiscountAmount, t.TaxPercentage)
	return nil
}
