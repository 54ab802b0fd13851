// Package ddd holds the building blocks shared by every aggregate root: the optimistic
// concurrency version and the list of domain events recorded since the aggregate was loaded.
package ddd

import "time"

// Event is a fact recorded by an aggregate. Events are collected by the unit of work and
// handed to the event publisher once the surrounding transaction has committed.
type Event struct {
	Name          string         `json:"name"`
	AggregateType string         `json:"aggregateType"`
	AggregateID   string         `json:"aggregateId"`
	OccurredAt    time.Time      `json:"occurredAt"`
	Payload       map[string]any `json:"payload,omitempty"`
}

// AggregateRoot is implemented by every type embedding AggregateBase.
type AggregateRoot interface {
	Version() int64
	DomainEvents() []Event
	ClearDomainEvents()
}

// AggregateBase is embedded by aggregate roots.
//
// version is the value read from storage; repositories compare it on update and bump it
// after a successful write.
type AggregateBase struct {
	version int64
	events  []Event
}

func (a *AggregateBase) Version() int64 {
	return a.version
}

// SetVersion is called by constructors restoring from storage and by repositories after a write.
func (a *AggregateBase) SetVersion(version int64) {
	a.version = version
}

// RecordEvent appends an event to the pending list.
func (a *AggregateBase) RecordEvent(event Event) {
	a.events = append(a.events, event)
}

func (a *AggregateBase) DomainEvents() []Event {
	out := make([]Event, len(a.events))
	copy(out, a.events)
	return out
}

func (a *AggregateBase) ClearDomainEvents() {
	a.events = nil
}
