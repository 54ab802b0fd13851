package freight_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/freight"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name                         string
		base, discount, tax          string
		afterDiscount, taxAmt, total string
	}{
		{"discount and tax", "1000", "100", "18", "900", "162", "1062"},
		{"no discount no tax", "250.50", "0", "0", "250.50", "0", "250.50"},
		{"fractional tax", "99.99", "0", "5", "99.99", "4.9995", "104.9895"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := freight.Calculate(dec(tt.base), dec(tt.discount), dec(tt.tax))

			assertDecimal(t, tt.afterDiscount, a.AfterDiscount)
			assertDecimal(t, tt.taxAmt, a.Tax)
			assertDecimal(t, tt.total, a.Total)
		})
	}
}

func validTerms() freight.Terms {
	shipmentID := kernel.NewUUID()
	return freight.Terms{
		ShipmentID:     &shipmentID,
		Type:           freight.ChargeBaseFreight,
		Method:         freight.MethodSlabRate,
		SlabRates:      []freight.SlabRate{{From: dec("0"), To: dec("100"), Rate: dec("12")}},
		BaseAmount:     dec("1000"),
		DiscountAmount: dec("100"),
		TaxPercentage:  dec("18"),
	}
}

func TestNewCharge(t *testing.T) {
	t.Run("should derive amounts with the flat formula whatever the method", func(t *testing.T) {
		c, err := freight.NewCharge(kernel.NewUUID(), validTerms(), time.Now())

		require.NoError(t, err)
		assertDecimal(t, "900", c.Amounts().AfterDiscount)
		assertDecimal(t, "162", c.Amounts().Tax)
		assertDecimal(t, "1062", c.Amounts().Total)
		assert.Len(t, c.Terms().SlabRates, 1)
	})

	t.Run("should reject negative base", func(t *testing.T) {
		terms := validTerms()
		terms.BaseAmount = dec("-1")

		_, err := freight.NewCharge(kernel.NewUUID(), terms, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown charge type", func(t *testing.T) {
		terms := validTerms()
		terms.Type = "Bribe"

		_, err := freight.NewCharge(kernel.NewUUID(), terms, time.Now())

		require.Error(t, err)
	})
}

func TestCharge_Update(t *testing.T) {
	c, err := freight.NewCharge(kernel.NewUUID(), validTerms(), time.Now())
	require.NoError(t, err)

	terms := validTerms()
	terms.DiscountAmount = decimal.Zero
	require.NoError(t, c.Update(terms, time.Now()))

	assertDecimal(t, "1000", c.Amounts().AfterDiscount)
	assertDecimal(t, "180", c.Amounts().Tax)
	assertDecimal(t, "1180", c.Amounts().Total)
}
