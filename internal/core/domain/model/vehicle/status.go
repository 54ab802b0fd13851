package vehicle

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status has no "on trip" value: vehicle commitment is not tracked.
type Status int

const (
	Unknown Status = iota
	Active
	Inactive
	InService
	UnderMaintenance
	Breakdown
	Retired
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		Active:           "Active",
		Inactive:         "Inactive",
		InService:        "InService",
		UnderMaintenance: "UnderMaintenance",
		Breakdown:        "Breakdown",
		Retired:          "Retired",
	}
}

func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a vehicle status", s))
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
