// Package subscription provides the subscription aggregate and its lifecycle
// state machine.
//
// The package includes:
//   - Subscription: the aggregate root owning status, schedule dates, and the
//     pause-history audit trail
//   - Status: a state machine enforcing valid lifecycle transitions
//   - Pause: one append-only pause-history row (open until the matching resume)
//
// Key business rules:
//   - nextDeliveryDate is non-nil if and only if the subscription is Active
//   - pausing then resuming shifts endDate forward by the paused span in whole
//     days, so customers never lose paid-for days
//   - at most one pause-history row is open at any time
//   - Cancelled and Expired are terminal; re-cancelling is an idempotent no-op
//   - a paused subscription without an open pause row is a data-consistency
//     failure surfaced to operators, never silently repaired
//
// The transition table lives in Status; the aggregate methods combine it with
// the date math and history bookkeeping each event requires.
package subscription
