package services

import (
	"errors"
	"sort"

	"subscriptions/internal/core/domain/model/agent"
	"subscriptions/internal/core/domain/model/delivery"
	"subscriptions/internal/core/domain/model/kernel"
)

// ErrAgentNotFound is returned when no agent is available for delivery dispatch.
// This occurs when either no agents are provided or none of the provided agents
// currently accept assignments. Callers that schedule recurring deliveries treat
// this as "leave the entry unassigned" rather than as a failure.
var ErrAgentNotFound = errors.New("agent not found")

// DeliveryDispatcher is a domain service responsible for assigning delivery agents
// to ledger entries using round-robin rotation.
//
// Business rules:
//   - Only agents that accept assignments participate in the rotation
//   - Candidates are ordered by their identifier so rotation is deterministic
//   - The agent after the most recently assigned one is selected, wrapping around
//   - When the last assigned agent is unknown or absent, rotation starts over
//
// Example usage:
//
//	dispatcher := services.NewDeliveryDispatcher()
//	assigned, err := dispatcher.Dispatch(entry, agents, lastAssignedAgentID)
//	if errors.Is(err, services.ErrAgentNotFound) {
//	    // No agent accepts assignments right now, schedule unassigned
//	    return
//	}
type DeliveryDispatcher struct{}

// NewDeliveryDispatcher creates a new DeliveryDispatcher instance.
func NewDeliveryDispatcher() DeliveryDispatcher {
	return DeliveryDispatcher{}
}

// Dispatch selects the next agent in rotation and assigns the ledger entry to it.
//
// Parameters:
//   - entry: the Pending ledger entry to assign (must be valid)
//   - agents: candidate agents to consider
//   - lastAssignedAgentID: the agent that received the most recent assignment, or nil
//
// Returns:
//   - *agent.Agent: the agent the entry was assigned to
//   - error: ErrAgentNotFound if no agent accepts assignments, or validation errors
func (d DeliveryDispatcher) Dispatch(
	entry *delivery.Delivery,
	agents []*agent.Agent,
	lastAssignedAgentID *kernel.UUID,
) (*agent.Agent, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	next, err := d.nextInRotation(agents, lastAssignedAgentID)
	if err != nil {
		return nil, err
	}

	if err = entry.Assign(next.ID()); err != nil {
		return nil, err
	}

	return next, nil
}

// nextInRotation picks the agent that follows lastAssignedAgentID in the
// deterministic candidate ordering, wrapping around at the end.
func (d DeliveryDispatcher) nextInRotation(
	agents []*agent.Agent,
	lastAssignedAgentID *kernel.UUID,
) (*agent.Agent, error) {
	candidates := make([]*agent.Agent, 0, len(agents))
	for _, a := range agents {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if a.AcceptsAssignment() {
			candidates = append(candidates, a)
		}
	}

	if len(candidates) == 0 {
		return nil, ErrAgentNotFound
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ID().String() < candidates[j].ID().String()
	})

	if lastAssignedAgentID == nil {
		return candidates[0], nil
	}

	for i, a := range candidates {
		if a.ID().IsEqual(*lastAssignedAgentID) {
			return candidates[(i+1)%len(candidates)], nil
		}
	}

	// The previously assigned agent left the pool, restart the rotation.
	return candidates[0], nil
}
