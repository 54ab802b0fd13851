// Package services provides domain services that work across several aggregates or
// over collections of one aggregate.
//
// The package includes:
//   - TrackingProjector: builds the "where is it now" view of a shipment or a trip
//     from its correlated tracking events
//   - ChargeSummarizer: totals the freight charge lines of a shipment
//   - RouteStatistician: derives route usage statistics from completed trips
package services
