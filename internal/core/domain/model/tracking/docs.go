// Package tracking holds the correlated tracking event: a timestamped status or location
// record linked to a shipment and/or a trip by id only.
//
// Recording an event never changes the status of the linked shipment or trip. Events may
// be corrected, resolved or deleted at any time.
package tracking
