package ports

import (
	"context"

	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/core/domain/model/plan"
)

// PlanRepository defines the persistence contract for subscription plans.
// Plans are reference data: the engine reads them to price subscriptions and
// compute their duration, but never mutates them outside of administration.
type PlanRepository interface {
	// Add persists a new plan to storage.
	Add(ctx context.Context, aggregate *plan.Plan) error

	// Get retrieves a plan by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*plan.Plan, error)

	// GetAll retrieves all plans ordered by name.
	GetAll(ctx context.Context) ([]*plan.Plan, error)
}
