package ports

import (
	"context"

	"subscriptions/internal/core/domain/model/delivery"
	"subscriptions/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery ledger entries.
type DeliveryRepository interface {
	// Add persists a new ledger entry to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing ledger entry.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a ledger entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetLastCreated retrieves the most recently created ledger entry, or nil
	// when the ledger is empty. Its agent seeds the round-robin rotation.
	GetLastCreated(ctx context.Context) (*delivery.Delivery, error)

	// DeletePendingByCustomer removes the customer's still-Pending ledger entries.
	// Entries that progressed past Pending are left untouched. Returns the number
	// of removed entries.
	DeletePendingByCustomer(ctx context.Context, customerID kernel.UUID) (int64, error)
}
