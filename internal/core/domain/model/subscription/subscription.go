package subscription

import (
	"errors"
	"time"

	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/core/domain/model/plan"
	"subscriptions/internal/pkg/errs"
	"subscriptions/internal/pkg/guard"
)

// ErrSubscriptionIsNotConstructed is returned when a Subscription instance was not
// created through NewSubscription or RestoreSubscription.
var ErrSubscriptionIsNotConstructed = errors.New(
	"Subscription must be created via NewSubscription or RestoreSubscription constructor",
)

// deliveryLeadTime is how far after the triggering action (subscribe or resume)
// the next delivery is scheduled.
const deliveryLeadTime = 24 * time.Hour

// Subscription is the aggregate root of the subscription engine. It owns the
// lifecycle status, the delivery schedule dates, and the pause-history audit
// trail, and it is the only writer of those facts.
//
// Invariants maintained by this aggregate:
//   - nextDeliveryDate is non-nil if and only if status is Active
//   - endDate is never before startDate; a pause-resume cycle shifts endDate
//     forward by the paused span so the customer never loses paid-for days
//   - at most one pause-history row is open at any time
//   - terminal statuses (Cancelled, Expired) accept no further transitions,
//     except that re-cancelling a cancelled subscription is an idempotent no-op
//
// Scheduling the delivery ledger entries that accompany subscribe and resume is
// the application layer's job; the aggregate only exposes the dates it computed.
type Subscription struct {
	// id uniquely identifies the subscription
	id kernel.UUID

	// customerID is the owning customer (one non-terminal subscription per customer)
	customerID kernel.UUID

	// planID references the catalog plan the end date was computed from
	planID kernel.UUID

	// startDate is when the subscription began
	startDate time.Time

	// endDate is when the paid period runs out
	endDate time.Time

	// status is the current state in the subscription lifecycle
	status Status

	// nextDeliveryDate is when the next delivery is due (nil unless Active)
	nextDeliveryDate *time.Time

	// pausedAt is when the current pause began (nil unless Paused)
	pausedAt *time.Time

	// resumedAt is when the most recent pause ended
	resumedAt *time.Time

	// pauses is the append-only pause-history audit trail
	pauses []*Pause

	// guard ensures the subscription was created via a constructor
	guard guard.ConstructorGuard
}

// NewSubscription creates an Active subscription for the customer on the given
// plan, starting at now.
//
// Computed state:
//   - startDate = now
//   - endDate = now + the plan's span (plan.Span)
//   - nextDeliveryDate = now + 1 day
//
// Parameters:
//   - id: unique identifier for the subscription
//   - customerID: the owning customer
//   - p: the catalog plan (must be a validly constructed plan)
//   - now: the subscription start instant
//
// Returns a validation error if any identifier or the plan is invalid; no
// partial state is produced on failure.
func NewSubscription(id, customerID kernel.UUID, p *plan.Plan, now time.Time) (*Subscription, error) {
	s := &Subscription{
		status: Active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setCustomerID(customerID),
		p.Validate(),
	); err != nil {
		return nil, err
	}

	next := now.Add(deliveryLeadTime)

	s.planID = p.ID()
	s.startDate = now
	s.endDate = p.Span(now)
	s.nextDeliveryDate = &next
	return s, nil
}

// RestoreSubscription reconstructs a Subscription aggregate from persistent
// storage, including its pause history.
//
// Beyond field validation it re-checks the stored invariants: the status must be
// valid, nextDeliveryDate must agree with the status, and at most one pause may
// be open. Violations surface as DataConsistencyError because they indicate a
// prior bug rather than a bad request.
func RestoreSubscription(
	id, customerID, planID kernel.UUID,
	startDate, endDate time.Time,
	status Status,
	nextDeliveryDate, pausedAt, resumedAt *time.Time,
	pauses []*Pause,
) (*Subscription, error) {
	s := &Subscription{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setCustomerID(customerID),
		planID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if endDate.Before(startDate) {
		return nil, errs.NewDataConsistencyError("subscription", "end date is before start date")
	}

	if (status == Active) != (nextDeliveryDate != nil) {
		return nil, errs.NewDataConsistencyError(
			"subscription", "next delivery date does not agree with status "+status.String())
	}

	openCount := 0
	for _, p := range pauses {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if p.IsOpen() {
			openCount++
		}
	}
	if openCount > 1 {
		return nil, errs.NewDataConsistencyError("subscription", "more than one open pause")
	}

	s.planID = planID
	s.startDate = startDate
	s.endDate = endDate
	s.status = status
	s.nextDeliveryDate = nextDeliveryDate
	s.pausedAt = pausedAt
	s.resumedAt = resumedAt
	s.pauses = pauses
	return s, nil
}

// Validate ensures the Subscription instance was properly constructed.
func (s *Subscription) Validate() error {
	if s == nil {
		return ErrSubscriptionIsNotConstructed
	}
	return s.guard.Validate(ErrSubscriptionIsNotConstructed)
}

// IsEqual compares two subscriptions by their unique identifiers.
func (s *Subscription) IsEqual(other *Subscription) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the subscription's unique identifier.
func (s *Subscription) ID() kernel.UUID {
	return s.id
}

// CustomerID returns the owning customer's identifier.
func (s *Subscription) CustomerID() kernel.UUID {
	return s.customerID
}

// PlanID returns the catalog plan identifier.
func (s *Subscription) PlanID() kernel.UUID {
	return s.planID
}

// StartDate returns when the subscription began.
func (s *Subscription) StartDate() time.Time {
	return s.startDate
}

// EndDate returns when the paid period runs out.
func (s *Subscription) EndDate() time.Time {
	return s.endDate
}

// Status returns the current lifecycle status.
func (s *Subscription) Status() Status {
	return s.status
}

// NextDeliveryDate returns when the next delivery is due.
// Returns nil unless the subscription is Active.
func (s *Subscription) NextDeliveryDate() *time.Time {
	return s.nextDeliveryDate
}

// PausedAt returns when the current pause began, or nil if not paused.
func (s *Subscription) PausedAt() *time.Time {
	return s.pausedAt
}

// ResumedAt returns when the most recent pause ended.
func (s *Subscription) ResumedAt() *time.Time {
	return s.resumedAt
}

// Pauses returns the pause-history audit trail, oldest first.
func (s *Subscription) Pauses() []*Pause {
	return s.pauses
}

// OpenPause returns the pause-history row that has not been closed yet,
// or nil when no pause is open.
func (s *Subscription) OpenPause() *Pause {
	for _, p := range s.pauses {
		if p.IsOpen() {
			return p
		}
	}
	return nil
}

// Pause halts deliveries for the subscription.
//
// Guarded by the status machine: only an Active subscription can be paused; any
// other status yields an InvalidTransitionError and no mutation. On success the
// aggregate records pausedAt, clears nextDeliveryDate and resumedAt, and opens a
// new pause-history row identified by pauseID.
//
// The caller is responsible for deleting the customer's still-Pending ledger
// entries in the same unit of work.
func (s *Subscription) Pause(pauseID kernel.UUID, now time.Time) error {
	newStatus, err := s.status.Pause()
	if err != nil {
		return err
	}

	if s.OpenPause() != nil {
		return errs.NewDataConsistencyError("subscription", "active subscription already has an open pause")
	}

	p, err := NewPause(pauseID, now)
	if err != nil {
		return err
	}

	s.status = newStatus
	s.pausedAt = &now
	s.resumedAt = nil
	s.nextDeliveryDate = nil
	s.pauses = append(s.pauses, p)
	return nil
}

// Resume reactivates a paused subscription and returns the paused span in whole
// days (floored), by which the end date was shifted forward.
//
// Guarded by the status machine: only a Paused subscription can resume. A paused
// subscription without an open pause-history row is a DataConsistencyError: a
// prior bug that must be surfaced, not silently recovered from.
//
// On success:
//   - the open pause row is closed with resumeDate = now
//   - endDate += whole days between pause and resume
//   - nextDeliveryDate = now + 1 day
//   - pausedAt is cleared, resumedAt = now
//
// The caller schedules the matching Pending ledger entry for the returned next
// delivery date in the same unit of work.
func (s *Subscription) Resume(now time.Time) (int, error) {
	newStatus, err := s.status.Resume()
	if err != nil {
		return 0, err
	}

	open := s.OpenPause()
	if open == nil {
		return 0, errs.NewDataConsistencyError("subscription", "paused subscription has no open pause")
	}

	if err = open.close(now); err != nil {
		return 0, err
	}

	pausedDays := int(now.Sub(open.PauseDate()) / (24 * time.Hour))
	next := now.Add(deliveryLeadTime)

	s.status = newStatus
	s.endDate = s.endDate.AddDate(0, 0, pausedDays)
	s.nextDeliveryDate = &next
	s.pausedAt = nil
	s.resumedAt = &now
	return pausedDays, nil
}

// Cancel permanently ends the subscription.
//
// Accepted from Active and Paused; dates are not recomputed, only
// nextDeliveryDate is cleared to keep the active-only invariant. Cancelling an
// already-cancelled subscription is an idempotent success: the returned bool is
// false and nothing is mutated, so callers can skip persistence and
// notifications. Cancelling an expired subscription is an InvalidTransitionError.
func (s *Subscription) Cancel() (bool, error) {
	if s.status == Cancelled {
		return false, nil
	}

	newStatus, err := s.status.Cancel()
	if err != nil {
		return false, err
	}

	s.status = newStatus
	s.nextDeliveryDate = nil
	return true, nil
}

// Expire marks an active subscription whose paid period has run out.
//
// Guarded by the status machine: only Active subscriptions expire. Paused
// subscriptions keep their frozen paid days until resume. The caller (the expiry
// sweep) decides when endDate has actually passed; the aggregate only performs
// the transition and clears nextDeliveryDate.
func (s *Subscription) Expire() error {
	newStatus, err := s.status.Expire()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.nextDeliveryDate = nil
	return nil
}

func (s *Subscription) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Subscription) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	s.customerID = customerID
	return nil
}
