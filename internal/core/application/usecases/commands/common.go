package commands

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/pkg/guard"
)

var ErrCommandIsNotConstructed = errors.New("command must be created via its New... constructor")

// aggregateRef is embedded by commands that address a single existing aggregate.
type aggregateRef struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func newAggregateRef(id kernel.UUID) (aggregateRef, error) {
	if err := id.Validate(); err != nil {
		return aggregateRef{}, err
	}
	return aggregateRef{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (r aggregateRef) Validate() error {
	return r.guard.Validate(ErrCommandIsNotConstructed)
}

// correlatedEvent describes the tracking event a lifecycle transition appends.
type correlatedEvent struct {
	eventType    tracking.EventType
	severity     tracking.Severity
	locationName string
	location     *kernel.GeoPoint
	description  string
}

func (c correlatedEvent) build(shipmentID, tripID *kernel.UUID, now time.Time) (*tracking.Event, error) {
	id := kernel.NewUUID()
	return tracking.NewEvent(id, tracking.GenerateNumber(id, now), tracking.Details{
		Type:         c.eventType,
		Severity:     c.severity,
		ShipmentID:   shipmentID,
		TripID:       tripID,
		Timestamp:    now,
		LocationName: c.locationName,
		Location:     c.location,
		Description:  c.description,
	}, now)
}

// inTransaction runs fn between Begin and Commit. The deferred Rollback is a no-op once
// Commit has succeeded.
func inTransaction(ctx context.Context, tx TxManager, fn func() error) error {
	if err := tx.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func orUnknown(locationName string) string {
	if locationName == "" {
		return kernel.UnknownLocation
	}
	return locationName
}
