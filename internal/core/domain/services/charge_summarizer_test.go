package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/freight"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeSummarizer_Summarize(t *testing.T) {
	shipmentID := kernel.NewUUID()
	line := func() *freight.Charge {
		c, err := freight.NewCharge(kernel.NewUUID(), freight.Terms{
			ShipmentID:     &shipmentID,
			Type:           freight.ChargeBaseFreight,
			Method:         freight.MethodFlatRate,
			BaseAmount:     decimal.NewFromInt(1000),
			DiscountAmount: decimal.NewFromInt(100),
			TaxPercentage:  decimal.NewFromInt(18),
		}, time.Now())
		require.NoError(t, err)
		return c
	}

	t.Run("two identical lines double every total", func(t *testing.T) {
		s := services.NewChargeSummarizer().Summarize([]*freight.Charge{line(), line()})

		assert.True(t, s.BaseAmount.Equal(decimal.NewFromInt(2000)))
		assert.True(t, s.DiscountAmount.Equal(decimal.NewFromInt(200)))
		assert.True(t, s.TaxAmount.Equal(decimal.NewFromInt(324)))
		assert.True(t, s.TotalAmount.Equal(decimal.NewFromInt(2124)))
		assert.Len(t, s.Lines, 2)
	})

	t.Run("no lines give zero totals", func(t *testing.T) {
		s := services.NewChargeSummarizer().Summarize(nil)

		assert.True(t, s.TotalAmount.IsZero())
	})
}
