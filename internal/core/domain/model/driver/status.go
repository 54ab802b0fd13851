package driver

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Active
	Inactive
	OnTrip
	OnLeave
	Suspended
	Terminated
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Active:     "Active",
		Inactive:   "Inactive",
		OnTrip:     "OnTrip",
		OnLeave:    "OnLeave",
		Suspended:  "Suspended",
		Terminated: "Terminated",
	}
}

func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a driver status", s))
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
