// Package kernel provides the value objects shared by every logistics aggregate.
//
// The package includes:
//   - UUID: the identifier type used by all aggregates and their cross references
//   - GeoPoint: a latitude/longitude pair reported by trips, vehicles and tracking events
//   - Address: the origin and destination blocks carried by shipments
//
// Values are immutable and validated on construction, so a zero value is always
// detectable through its Validate method.
package kernel
