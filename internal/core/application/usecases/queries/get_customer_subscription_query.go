// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/pkg/guard"
)

var ErrGetCustomerSubscriptionQueryIsNotConstructed = errors.New(
	"GetCustomerSubscriptionQuery must be created via NewGetCustomerSubscriptionQuery constructor",
)

// GetCustomerSubscriptionQuery retrieves a customer's current subscription with
// its full pause history. When a customer subscribed more than once, the most
// recently started subscription is returned.
//
// Example:
//
//	query, err := NewGetCustomerSubscriptionQuery(customerID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetCustomerSubscriptionQueryHandler(db)
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // Customer never subscribed
//	}
type GetCustomerSubscriptionQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerSubscriptionQuery creates a query for a customer's subscription.
func NewGetCustomerSubscriptionQuery(customerID kernel.UUID) (GetCustomerSubscriptionQuery, error) {
	query := GetCustomerSubscriptionQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCustomerID(customerID); err != nil {
		return GetCustomerSubscriptionQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerSubscriptionQueryIsNotConstructed if validation fails.
func (q GetCustomerSubscriptionQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerSubscriptionQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer whose subscription is requested.
func (q GetCustomerSubscriptionQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *GetCustomerSubscriptionQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}

// PauseHistoryItem represents one pause window in the subscription read model.
// An open pause has a nil ResumeDate.
type PauseHistoryItem struct {
	PauseDate  time.Time
	ResumeDate *time.Time
}

// GetCustomerSubscriptionQueryResponse represents the subscription read model.
// Contains the subscription state, the plan it runs on, and the pause audit trail.
type GetCustomerSubscriptionQueryResponse struct {
	ID               kernel.UUID
	PlanID           kernel.UUID
	PlanName         string
	Status           string
	StartDate        time.Time
	EndDate          time.Time
	NextDeliveryDate *time.Time
	PauseHistory     []PauseHistoryItem
}
