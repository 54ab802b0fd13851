package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the lifecycle state of a shipment.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Draft
	Confirmed
	Dispatched
	InTransit
	OutForDelivery
	Delivered
	PartiallyDelivered
	Failed
	Cancelled
	Returned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "Unknown",
		Draft:              "Draft",
		Confirmed:          "Confirmed",
		Dispatched:         "Dispatched",
		InTransit:          "InTransit",
		OutForDelivery:     "OutForDelivery",
		Delivered:          "Delivered",
		PartiallyDelivered: "PartiallyDelivered",
		Failed:             "Failed",
		Cancelled:          "Cancelled",
		Returned:           "Returned",
	}
}

// ParseStatus converts the persisted or transported name back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a shipment status", s))
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether the shipment lifecycle has ended.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Returned || s == Failed
}

// Confirm moves a Draft shipment to Confirmed.
func (s Status) Confirm() (Status, error) {
	if s != Draft {
		return Unknown, errs.NewInvalidStateTransitionError("shipment", s.String(), "confirm")
	}
	return Confirmed, nil
}

// Dispatch moves a Confirmed shipment to Dispatched. Every other status is refused.
func (s Status) Dispatch() (Status, error) {
	if s != Confirmed {
		return Unknown, errs.NewInvalidStateTransitionError("shipment", s.String(), "dispatch")
	}
	return Dispatched, nil
}

// Cancel moves any status except Delivered to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s == Delivered {
		return Unknown, errs.NewInvalidStateTransitionError("shipment", s.String(), "cancel")
	}
	return Cancelled, nil
}

// ValidateRemove allows removal only of Draft and Cancelled shipments.
func (s Status) ValidateRemove() error {
	if s != Draft && s != Cancelled {
		return errs.NewInvalidStateTransitionError("shipment", s.String(), "remove")
	}
	return nil
}
