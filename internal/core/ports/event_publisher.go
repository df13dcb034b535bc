package ports

import (
	"context"
)

// EventPublisher notifies downstream consumers that subscription or delivery
// data changed. The notifications carry no payload: consumers re-read whatever
// view they are interested in.
//
// Publishing happens after the transaction committed. A failed publish is
// logged and dropped, it never fails the command that triggered it.
type EventPublisher interface {
	// SubscriptionsChanged signals that one or more subscriptions changed state.
	SubscriptionsChanged(ctx context.Context) error

	// DeliveriesChanged signals that the delivery ledger changed.
	DeliveriesChanged(ctx context.Context) error
}
