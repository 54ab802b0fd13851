package trip

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Planned
	Scheduled
	InProgress
	Completed
	Cancelled
	Delayed
	OnHold
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Planned:    "Planned",
		Scheduled:  "Scheduled",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
		Delayed:    "Delayed",
		OnHold:     "OnHold",
	}
}

func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a trip status", s))
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

// Schedule accepts Planned trips and puts Delayed or OnHold trips back on the schedule.
func (s Status) Schedule() (Status, error) {
	switch s {
	case Planned, Delayed, OnHold:
		return Scheduled, nil
	default:
		return Unknown, errs.NewInvalidStateTransitionError("trip", s.String(), "schedule")
	}
}

func (s Status) Start() (Status, error) {
	if s != Scheduled {
		return Unknown, errs.NewInvalidStateTransitionError("trip", s.String(), "start")
	}
	return InProgress, nil
}

func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return Unknown, errs.NewInvalidStateTransitionError("trip", s.String(), "complete")
	}
	return Completed, nil
}
