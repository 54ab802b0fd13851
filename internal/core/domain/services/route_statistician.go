package services

import (
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/trip"

	"github.com/shopspring/decimal"
)

// RouteStatistician derives route.Statistics from the trips completed on the route.
type RouteStatistician struct{}

func NewRouteStatistician() RouteStatistician {
	return RouteStatistician{}
}

// Compute counts every completed trip. The average duration only covers trips that have
// a recorded duration and is rounded to two decimals.
func (RouteStatistician) Compute(trips []*trip.Trip) route.Statistics {
	stats := route.Statistics{AverageActualDuration: decimal.Zero}

	var (
		sum   int
		timed int
	)
	for _, t := range trips {
		if t.Status() != trip.Completed {
			continue
		}
		stats.TotalTripsCompleted++
		if d := t.Progress().ActualDurationMinutes; d != nil {
			sum += *d
			timed++
		}
	}

	if timed > 0 {
		stats.AverageActualDuration = decimal.NewFromInt(int64(sum)).
			Div(decimal.NewFromInt(int64(timed))).
			Round(2)
	}
	return stats
}
