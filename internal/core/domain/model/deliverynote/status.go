package deliverynote

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Draft
	Submitted
	InTransit
	Delivered
	PartiallyDelivered
	Rejected
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "Unknown",
		Draft:              "Draft",
		Submitted:          "Submitted",
		InTransit:          "InTransit",
		Delivered:          "Delivered",
		PartiallyDelivered: "PartiallyDelivered",
		Rejected:           "Rejected",
		Cancelled:          "Cancelled",
	}
}

func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a delivery note status", s))
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

func (s Status) Submit() (Status, error) {
	if s != Draft {
		return Unknown, errs.NewInvalidStateTransitionError("delivery note", s.String(), "submit")
	}
	return Submitted, nil
}

// Deliver accepts Submitted and InTransit notes.
func (s Status) Deliver(partial bool) (Status, error) {
	if s != Submitted && s != InTransit {
		return Unknown, errs.NewInvalidStateTransitionError("delivery note", s.String(), "deliver")
	}
	if partial {
		return PartiallyDelivered, nil
	}
	return Delivered, nil
}

func (s Status) Cancel() (Status, error) {
	if s == Delivered {
		return Unknown, errs.NewInvalidStateTransitionError("delivery note", s.String(), "cancel")
	}
	return Cancelled, nil
}
