package queries

import (
	"errors"
	"time"

	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/pkg/guard"
)

var ErrGetPendingDeliveriesQueryIsNotConstructed = errors.New(
	"GetPendingDeliveriesQuery must be created via NewGetPendingDeliveriesQuery constructor",
)

// GetPendingDeliveriesQuery retrieves all Pending delivery ledger entries.
// Returns the upcoming workload for dispatchers and agents.
//
// Example:
//
//	query := NewGetPendingDeliveriesQuery()
//	handler := NewGetPendingDeliveriesQueryHandler(db)
//
//	pending, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve pending deliveries: %w", err)
//	}
type GetPendingDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingDeliveriesQuery creates a query to retrieve all pending ledger entries.
// This is a parameterless query that fetches the complete pending list.
func NewGetPendingDeliveriesQuery() GetPendingDeliveriesQuery {
	return GetPendingDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingDeliveriesQueryIsNotConstructed if validation fails.
func (q GetPendingDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingDeliveriesQueryIsNotConstructed)
}

// GetPendingDeliveriesQueryResponse represents one pending ledger entry in the
// read model. AgentID and AgentName are nil for unassigned entries.
type GetPendingDeliveriesQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	AgentID      *kernel.UUID
	AgentName    *string
	DeliveryDate time.Time
	Description  string
	IsRecurring  bool
}
