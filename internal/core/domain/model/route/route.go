// Package route implements the Route aggregate: a fixed origin/destination corridor with
// usage statistics derived from the trips completed on it.
package route

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/ddd"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const aggregateType = "route"

const (
	EventCreated             = "route.created"
	EventStatisticsRefreshed = "route.statistics_refreshed"
)

var (
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")
	ErrCodeIsRequired        = errs.NewValueIsRequiredError("routeCode")
	ErrNameIsRequired        = errs.NewValueIsRequiredError("routeName")
)

type Definition struct {
	Name                     string
	Origin                   string
	Destination              string
	TotalDistance            decimal.Decimal
	EstimatedDurationMinutes int
}

// Statistics are recomputed from completed trips, never entered by hand.
type Statistics struct {
	TotalTripsCompleted   int
	AverageActualDuration decimal.Decimal
}

type Route struct {
	ddd.AggregateBase

	id         kernel.UUID
	code       string
	definition Definition
	statistics Statistics

	guard guard.ConstructorGuard
}

func NewRoute(id kernel.UUID, code string, definition Definition, now time.Time) (*Route, error) {
	r := &Route{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		r.setID(id),
		r.setCode(code),
		r.setDefinition(definition),
	); err != nil {
		return nil, err
	}

	r.record(EventCreated, now, map[string]any{"routeCode": r.code})
	return r, nil
}

func RestoreRoute(id kernel.UUID, code string, definition Definition, statistics Statistics, version int64) (*Route, error) {
	r := &Route{
		statistics: statistics,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setCode(code),
		r.setDefinition(definition),
	); err != nil {
		return nil, err
	}

	r.SetVersion(version)
	return r, nil
}

func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

func (r *Route) ID() kernel.UUID {
	return r.id
}

func (r *Route) Code() string {
	return r.code
}

func (r *Route) Definition() Definition {
	return r.definition
}

func (r *Route) Statistics() Statistics {
	return r.statistics
}

// ApplyStatistics replaces the usage statistics. It reports whether anything changed so
// callers can skip writing unchanged routes.
func (r *Route) ApplyStatistics(s Statistics, now time.Time) (bool, error) {
	if s.TotalTripsCompleted < 0 {
		return false, errs.NewValueIsInvalidErrorWithCause("totalTripsCompleted", fmt.Errorf("%d is negative", s.TotalTripsCompleted))
	}
	if s.TotalTripsCompleted == r.statistics.TotalTripsCompleted &&
		s.AverageActualDuration.Equal(r.statistics.AverageActualDuration) {
		return false, nil
	}

	r.statistics = s
	r.record(EventStatisticsRefreshed, now, map[string]any{
		"totalTripsCompleted":   s.TotalTripsCompleted,
		"averageActualDuration": s.AverageActualDuration.String(),
	})
	return true, nil
}

func (r *Route) record(name string, now time.Time, payload map[string]any) {
	r.RecordEvent(ddd.Event{
		Name:          name,
		AggregateType: aggregateType,
		AggregateID:   r.id.String(),
		OccurredAt:    now,
		Payload:       payload,
	})
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrCodeIsRequired
	}
	r.code = code
	return nil
}

func (r *Route) setDefinition(d Definition) error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return ErrNameIsRequired
	}
	if d.TotalDistance.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("totalDistance", fmt.Errorf("%s is negative", d.TotalDistance))
	}
	if d.EstimatedDurationMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedDurationMinutes", fmt.Errorf("%d is negative", d.EstimatedDurationMinutes))
	}
	r.definition = d
	return nil
}
