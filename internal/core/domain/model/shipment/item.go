package shipment

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Quantities tracks one item line through the delivery. shipped <= ordered is not enforced.
type Quantities struct {
	Ordered   int
	Shipped   int
	Delivered int
	Damaged   int
	Returned  int
}

// ItemFields is the plain-data form of an item line.
type ItemFields struct {
	LineNumber  int
	ProductCode string
	Description string
	Quantities  Quantities
	UnitWeight  decimal.Decimal
}

// Item is a line of a shipment. It is owned by the shipment and removed with it.
type Item struct {
	id     kernel.UUID
	fields ItemFields
	guard  guard.ConstructorGuard
}

func NewItem(id kernel.UUID, fields ItemFields) (*Item, error) {
	item := &Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setID(id),
		item.setFields(fields),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) Fields() ItemFields {
	return i.fields
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setFields(fields ItemFields) error {
	if strings.TrimSpace(fields.ProductCode) == "" {
		return errs.NewValueIsRequiredError("productCode")
	}
	if fields.LineNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("lineNumber", fmt.Errorf("%d is not greater than 0", fields.LineNumber))
	}
	if fields.UnitWeight.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitWeight", fmt.Errorf("%s is negative", fields.UnitWeight))
	}

	q := fields.Quantities
	for name, v := range map[string]int{
		"orderedQuantity":   q.Ordered,
		"shippedQuantity":   q.Shipped,
		"deliveredQuantity": q.Delivered,
		"damagedQuantity":   q.Damaged,
		"returnedQuantity":  q.Returned,
	} {
		if v < 0 {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is negative", v))
		}
	}

	i.fields = fields
	return nil
}
