package services

import (
	"logistics/internal/core/domain/model/freight"

	"github.com/shopspring/decimal"
)

// ChargeSummary totals the charge lines of one shipment.
type ChargeSummary struct {
	BaseAmount     decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
	Lines          []*freight.Charge
}

type ChargeSummarizer struct{}

func NewChargeSummarizer() ChargeSummarizer {
	return ChargeSummarizer{}
}

// Summarize adds up base, discount, tax and total over every line. An empty list gives
// zero totals.
func (ChargeSummarizer) Summarize(lines []*freight.Charge) ChargeSummary {
	summary := ChargeSummary{
		BaseAmount:     decimal.Zero,
		DiscountAmount: decimal.Zero,
		TaxAmount:      decimal.Zero,
		TotalAmount:    decimal.Zero,
		Lines:          lines,
	}

	for _, line := range lines {
		terms := line.Terms()
		amounts := line.Amounts()
		summary.BaseAmount = summary.BaseAmount.Add(terms.BaseAmount)
		summary.DiscountAmount = summary.DiscountAmount.Add(terms.DiscountAmount)
		summary.TaxAmount = summary.TaxAmount.Add(amounts.Tax)
		summary.TotalAmount = summary.TotalAmount.Add(amounts.Total)
	}

	return summary
}
