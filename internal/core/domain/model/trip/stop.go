package trip

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Stop is a waypoint of the trip. Stops are kept ordered by Sequence.
type Stop struct {
	Sequence         int
	LocationName     string
	PlannedArrivalAt *time.Time
}

// Expenses accumulate what the run costs. Amounts are stored as entered.
type Expenses struct {
	Fuel  decimal.Decimal
	Toll  decimal.Decimal
	Other decimal.Decimal
}

func (e Expenses) Total() decimal.Decimal {
	return e.Fuel.Add(e.Toll).Add(e.Other)
}

func (e Expenses) validate() error {
	for name, v := range map[string]decimal.Decimal{
		"fuelExpense":  e.Fuel,
		"tollExpense":  e.Toll,
		"otherExpense": e.Other,
	} {
		if v.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", v))
		}
	}
	return nil
}

func normalizeStops(stops []Stop) ([]Stop, error) {
	seen := make(map[int]struct{}, len(stops))
	for _, st := range stops {
		if st.Sequence <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("stops", fmt.Errorf("sequence %d is not greater than 0", st.Sequence))
		}
		if strings.TrimSpace(st.LocationName) == "" {
			return nil, errs.NewValueIsRequiredError("stops.locationName")
		}
		if _, dup := seen[st.Sequence]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("stops", fmt.Errorf("sequence %d is used twice", st.Sequence))
		}
		seen[st.Sequence] = struct{}{}
	}

	out := slices.Clone(stops)
	slices.SortFunc(out, func(a, b Stop) int { return a.Sequence - b.Sequence })
	return out, nil
}
