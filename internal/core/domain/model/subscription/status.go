package subscription

import (
	"fmt"

	"subscriptions/internal/pkg/errs"
)

// Status represents the lifecycle state of a subscription.
// It implements a state machine with defined transitions so subscriptions follow
// the correct business workflow.
//
// State transitions:
//
//	Active ──┬──> Paused ──┬──> Active (resume)
//	         │             └──> Cancelled
//	         ├──> Cancelled
//	         └──> Expired
//
// Cancelled and Expired are terminal. Status is a value object that validates
// state transitions and provides string representations for persistence and
// display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Active means deliveries are being scheduled for the subscription.
	Active

	// Paused means the customer temporarily halted deliveries.
	// The paid period is frozen and restored on resume.
	Paused

	// Cancelled means the customer permanently ended the subscription.
	// This is a terminal state; the row persists for audit.
	Cancelled

	// Expired means the paid period ran out before a cancel.
	// This is a terminal state reached by the expiry sweep.
	Expired
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Active:    "Active",
		Paused:    "Paused",
		Cancelled: "Cancelled",
		Expired:   "Expired",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:    "Active",
		Paused:    "Paused",
		Cancelled: "Cancelled",
		Expired:   "Expired",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Active, Paused, Cancelled, Expired.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Expired
}

// Pause transitions the status to Paused.
//
// Valid transitions:
//   - Active -> Paused
//
// Every other source status is rejected with an InvalidTransitionError, so
// pausing a paused, cancelled, or expired subscription reports a conflict
// without mutating anything.
func (s Status) Pause() (Status, error) {
	if s != Active {
		return 0, errs.NewInvalidTransitionError("pause", s.String())
	}

	return Paused, nil
}

// Resume transitions the status back to Active.
//
// Valid transitions:
//   - Paused -> Active
func (s Status) Resume() (Status, error) {
	if s != Paused {
		return 0, errs.NewInvalidTransitionError("resume", s.String())
	}

	return Active, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Active -> Cancelled
//   - Paused -> Cancelled
//   - Cancelled -> Cancelled (idempotent re-cancel)
//
// Cancelling an expired subscription is rejected: Expired is terminal and the
// paid period is already gone.
func (s Status) Cancel() (Status, error) {
	if s != Active && s != Paused && s != Cancelled {
		return 0, errs.NewInvalidTransitionError("cancel", s.String())
	}

	return Cancelled, nil
}

// Expire transitions the status to Expired.
//
// Valid transitions:
//   - Active -> Expired
//
// Paused subscriptions never expire: their remaining paid days are frozen until
// resume shifts the end date forward.
func (s Status) Expire() (Status, error) {
	if s != Active {
		return 0, errs.NewInvalidTransitionError("expire", s.String())
	}

	return Expired, nil
}
