package services

import (
	"slices"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
)

// TrackingProjection is the event history of one shipment or trip, newest first, with
// the location of the latest event.
type TrackingProjection struct {
	CurrentLocation string
	Events          []*tracking.Event
}

// TrackingProjector orders correlated events for display.
type TrackingProjector struct{}

func NewTrackingProjector() TrackingProjector {
	return TrackingProjector{}
}

// Project sorts events newest first, breaking timestamp ties by event number descending.
// The current location is the location name of the newest event, or kernel.UnknownLocation
// when there are no events or it has no name.
func (TrackingProjector) Project(events []*tracking.Event) TrackingProjection {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b *tracking.Event) int {
		if c := b.Details().Timestamp.Compare(a.Details().Timestamp); c != 0 {
			return c
		}
		return strings.Compare(b.Number(), a.Number())
	})

	current := kernel.UnknownLocation
	if len(sorted) > 0 && sorted[0].Details().LocationName != "" {
		current = sorted[0].Details().LocationName
	}

	return TrackingProjection{
		CurrentLocation: current,
		Events:          sorted,
	}
}
