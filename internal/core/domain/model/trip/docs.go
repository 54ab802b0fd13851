// Package trip implements the Trip aggregate: one dispatch run of a vehicle and a driver,
// optionally following a route through an ordered list of stops.
//
// State transitions:
//
//	Planned ──> Scheduled ──> InProgress ──> Completed
//	Delayed, OnHold ──> Scheduled
//	any status ──> Cancelled
//
// Key business rules:
//   - a new trip always starts in Planned and must name a vehicle and a driver
//   - Start is legal only from Scheduled and stamps the actual start time
//   - Complete is legal only from InProgress; it confirms delivery and, when the trip was
//     started, stores the elapsed whole minutes
//   - Cancel and UpdateLocation do not look at the current status
//   - no operation touches the driver, the vehicle or the carried shipments
package trip
