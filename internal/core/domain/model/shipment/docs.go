// Package shipment implements the Shipment aggregate: the top-level unit of work of the
// logistics module, with its owned item lines and its status state machine.
//
// State transitions:
//
//	Draft ──> Confirmed ──> Dispatched ──> InTransit ──> OutForDelivery ──> Delivered
//	  │                                                                     (terminal)
//	  └── any status except Delivered ──> Cancelled (terminal)
//
//	InTransit, OutForDelivery and Delivered are permissive: they can be entered from
//	any status, including terminal ones.
//
// PartiallyDelivered, Failed and Returned are valid stored statuses reached only through
// restoration from storage; Failed and Returned are terminal.
//
// Key business rules:
//   - a new shipment always starts in Draft, whatever status the caller asked for
//   - Dispatch is legal only from Confirmed and stamps the dispatch date
//   - Cancel is refused once the shipment is Delivered
//   - only Draft and Cancelled shipments may be removed
//   - shipped quantity is not checked against ordered quantity
package shipment
