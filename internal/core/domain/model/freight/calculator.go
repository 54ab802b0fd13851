package freight

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Amounts are the derived figures of a charge line.
type Amounts struct {
	AfterDiscount decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
}

// Calculate applies the flat discount and tax formula:
//
//	afterDiscount = base - discount
//	tax           = afterDiscount * taxPercentage / 100
//	total         = afterDiscount + tax
//
// The calculation method of the line does not take part.
func Calculate(base, discount, taxPercentage decimal.Decimal) Amounts {
	afterDiscount := base.Sub(discount)
	tax := afterDiscount.Mul(taxPercentage).Div(hundred)
	return Amounts{
		AfterDiscount: afterDiscount,
		Tax:           tax,
		Total:         afterDiscount.Add(tax),
	}
}
