package delivery

import (
	"fmt"

	"subscriptions/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery ledger entry.
//
// State transitions:
//
//	Pending ──┬──> InTransit ──┬──> Delivered
//	          │                └──> Failed
//	          ├──> Failed
//	          └──> Cancelled
//
// The subscription engine only creates Pending entries and deletes its own
// still-Pending entries; the later transitions belong to the delivery workflow
// that fulfils them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a scheduled delivery.
	Pending

	// InTransit means an agent picked up the delivery.
	InTransit

	// Delivered means the delivery reached the customer. Terminal.
	Delivered

	// Failed means the delivery attempt did not succeed. Terminal.
	Failed

	// Cancelled means the delivery was called off before pickup. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		InTransit: "In Transit",
		Delivered: "Delivered",
		Failed:    "Failed",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		InTransit: "In Transit",
		Delivered: "Delivered",
		Failed:    "Failed",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Start transitions the status to InTransit. Valid only from Pending.
func (s Status) Start() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("start", s.String())
	}
	return InTransit, nil
}

// Complete transitions the status to Delivered. Valid only from InTransit.
func (s Status) Complete() (Status, error) {
	if s != InTransit {
		return 0, errs.NewInvalidTransitionError("complete", s.String())
	}
	return Delivered, nil
}

// Fail transitions the status to Failed. Valid from Pending and InTransit.
func (s Status) Fail() (Status, error) {
	if s != Pending && s != InTransit {
		return 0, errs.NewInvalidTransitionError("fail", s.String())
	}
	return Failed, nil
}

// Cancel transitions the status to Cancelled. Valid only from Pending.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("cancel", s.String())
	}
	return Cancelled, nil
}
