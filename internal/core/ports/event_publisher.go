package ports

import (
	"context"

	"logistics/internal/pkg/ddd"
)

// EventPublisher hands committed domain events to the outside world.
type EventPublisher interface {
	Publish(ctx context.Context, events []ddd.Event) error
}
