// Package ports defines repository and messaging interfaces for the subscription
// delivery domain. These interfaces establish contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/core/domain/model/subscription"
)

// SubscriptionRepository defines the persistence contract for subscription aggregates.
// Provides methods for storing, retrieving, and querying subscriptions with their
// complete state including the pause history.
type SubscriptionRepository interface {
	// Add persists a new subscription aggregate to storage.
	// The subscription must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *subscription.Subscription) error

	// Update persists changes to an existing subscription aggregate.
	// Pause history rows are saved along with the parent.
	Update(ctx context.Context, aggregate *subscription.Subscription) error

	// Get retrieves a subscription aggregate by its unique identifier with its
	// pause history. The row is locked for the duration of the surrounding
	// transaction, so concurrent state changes on the same subscription are
	// applied one at a time.
	Get(ctx context.Context, id kernel.UUID) (*subscription.Subscription, error)

	// GetByCustomer retrieves the customer's current subscription, locked like Get.
	// A customer has at most one non-terminal subscription at a time; when several
	// rows exist the most recently started one is returned.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*subscription.Subscription, error)

	// GetAllActiveEndedBy retrieves all Active subscriptions whose end date is at
	// or before the given moment. Used by the expiry sweep. Paused subscriptions
	// never expire, their end date is still being pushed out.
	GetAllActiveEndedBy(ctx context.Context, moment time.Time) ([]*subscription.Subscription, error)
}
