package queries

import (
	"errors"

	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/pkg/guard"
)

var ErrGetAssignableAgentsQueryIsNotConstructed = errors.New(
	"GetAssignableAgentsQuery must be created via NewGetAssignableAgentsQuery constructor",
)

// GetAssignableAgentsQuery retrieves all agents that currently accept assignments.
// Returns agents in their round-robin rotation order.
type GetAssignableAgentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAssignableAgentsQuery creates a query to retrieve assignable agents.
// This is a parameterless query that fetches the rotation pool.
func NewGetAssignableAgentsQuery() GetAssignableAgentsQuery {
	return GetAssignableAgentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAssignableAgentsQueryIsNotConstructed if validation fails.
func (q GetAssignableAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignableAgentsQueryIsNotConstructed)
}

// GetAssignableAgentsQueryResponse represents agent information in the read model.
type GetAssignableAgentsQueryResponse struct {
	ID   kernel.UUID
	Name string
}
