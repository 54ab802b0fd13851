package tracking

import (
	"fmt"
	"slices"

	"logistics/internal/pkg/errs"
)

type EventType string

const (
	TypeCreated           EventType = "Created"
	TypePickedUp          EventType = "PickedUp"
	TypeDispatched        EventType = "Dispatched"
	TypeInTransit         EventType = "InTransit"
	TypeArrivedAtHub      EventType = "ArrivedAtHub"
	TypeDepartedFromHub   EventType = "DepartedFromHub"
	TypeOutForDelivery    EventType = "OutForDelivery"
	TypeDeliveryAttempted EventType = "DeliveryAttempted"
	TypeDelivered         EventType = "Delivered"
	TypeDelayed           EventType = "Delayed"
	TypeException         EventType = "Exception"
	TypeCancelled         EventType = "Cancelled"
	TypeReturned          EventType = "Returned"
	TypeCustomsCleared    EventType = "CustomsCleared"
	TypeDamaged           EventType = "Damaged"
	TypeTripStarted       EventType = "TripStarted"
	TypeTripCompleted     EventType = "TripCompleted"
	TypeLocationUpdate    EventType = "LocationUpdate"
)

var allTypes = []EventType{
	TypeCreated, TypePickedUp, TypeDispatched, TypeInTransit, TypeArrivedAtHub, TypeDepartedFromHub,
	TypeOutForDelivery, TypeDeliveryAttempted, TypeDelivered, TypeDelayed, TypeException, TypeCancelled,
	TypeReturned, TypeCustomsCleared, TypeDamaged, TypeTripStarted, TypeTripCompleted, TypeLocationUpdate,
}

func (t EventType) Validate() error {
	if !slices.Contains(allTypes, t) {
		return errs.NewValueIsInvalidErrorWithCause("eventType", fmt.Errorf("%q is not a tracking event type", string(t)))
	}
	return nil
}

type Severity string

const (
	SeverityInfo     Severity = "Info"
	SeverityWarning  Severity = "Warning"
	SeverityError    Severity = "Error"
	SeverityCritical Severity = "Critical"
)

var allSeverities = []Severity{SeverityInfo, SeverityWarning, SeverityError, SeverityCritical}

func (s Severity) Validate() error {
	if !slices.Contains(allSeverities, s) {
		return errs.NewValueIsInvalidErrorWithCause("severity", fmt.Errorf("%q is not a severity", string(s)))
	}
	return nil
}
