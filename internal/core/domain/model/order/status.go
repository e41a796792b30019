package order

import (
	"fmt"
	"strings"

	"progress/internal/pkg/errs"
)

// Status is the order level projection of the progress log.
//
//	NotStarted ──> InProgress ──> Completed
//	                   ^              │
//	                   └──────────────┘
//	          (a process may be started again)
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	NotStarted
	InProgress
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		NotStarted: "NotStarted",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{NotStarted, InProgress, Completed}
}

// ParseStatus accepts the String() form case-insensitively, with or without
// separators ("in_progress", "In Progress" and "inprogress" are all InProgress).
func ParseStatus(s string) (Status, error) {
	normalized := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	for _, status := range Statuses() {
		if strings.ToLower(status.String()) == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s != NotStarted && s != InProgress && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Start returns the status of an order whose process has just been started.
func (s Status) Start() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return InProgress, nil
}
