package ports

import (
	"context"

	"subscriptions/internal/core/domain/model/agent"
	"subscriptions/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agents.
type AgentRepository interface {
	// Add persists a new agent to storage.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// Update persists changes to an existing agent.
	Update(ctx context.Context, aggregate *agent.Agent) error

	// Get retrieves an agent by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// GetAllAssignable retrieves all agents that currently accept assignments,
	// ordered by identifier so the round-robin rotation is deterministic.
	GetAllAssignable(ctx context.Context) ([]*agent.Agent, error)
}
