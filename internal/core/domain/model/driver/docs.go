// Package driver implements the Driver aggregate and its availability lock.
//
// A driver is either available (Active, no current trip) or committed to a trip (OnTrip).
// MarkOnTrip does not look at the previous state, so calling it twice counts the trip
// twice; MarkAvailable is idempotent.
package driver
