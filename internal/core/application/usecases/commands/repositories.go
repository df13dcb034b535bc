// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and change notification after commit.
package commands

import (
	"context"

	"subscriptions/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SubscriptionRepoFactory provides access to the subscription repository within a transaction.
	SubscriptionRepoFactory interface {
		SubscriptionRepository() ports.SubscriptionRepository
	}

	// DeliveryRepoFactory provides access to the delivery ledger repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// AgentRepoFactory provides access to the agent repository within a transaction.
	AgentRepoFactory interface {
		AgentRepository() ports.AgentRepository
	}

	// PlanRepoFactory provides access to the plan repository within a transaction.
	PlanRepoFactory interface {
		PlanRepository() ports.PlanRepository
	}

	// SubscriptionUoW manages transactions for subscription-only operations.
	// Used by commands that never touch the delivery ledger (cancel, expiry sweep).
	SubscriptionUoW interface {
		TxManager
		SubscriptionRepoFactory
	}

	// SubscriptionUoWFactory creates new subscription unit of work instances.
	SubscriptionUoWFactory interface {
		Create() SubscriptionUoW
	}

	// PauseUoW manages transactions that update a subscription and prune its
	// pending ledger entries in one atomic step.
	PauseUoW interface {
		TxManager
		SubscriptionRepoFactory
		DeliveryRepoFactory
	}

	// PauseUoWFactory creates new pause unit of work instances.
	PauseUoWFactory interface {
		Create() PauseUoW
	}

	// UoW manages transactions across all aggregates of the engine.
	// Used by commands that create subscriptions or schedule deliveries.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   subscriptionRepo := uow.SubscriptionRepository()
	//   deliveryRepo := uow.DeliveryRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		SubscriptionRepoFactory
		DeliveryRepoFactory
		AgentRepoFactory
		PlanRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
