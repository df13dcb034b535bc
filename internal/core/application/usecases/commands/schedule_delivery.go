package commands

import (
	"context"
	"errors"
	"time"

	"subscriptions/internal/core/domain/model/delivery"
	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/core/domain/services"
	"subscriptions/internal/core/ports"
)

// scheduleNextDelivery creates the customer's next Pending ledger entry and
// assigns it to an agent using round-robin rotation. The rotation is seeded by
// the agent of the most recently created ledger entry. When no agent currently
// accepts assignments, the entry is stored unassigned so the schedule keeps
// moving without agents.
func scheduleNextDelivery(
	ctx context.Context,
	deliveryRepo ports.DeliveryRepository,
	agentRepo ports.AgentRepository,
	customerID kernel.UUID,
	deliveryDate time.Time,
	description string,
) error {
	entry, err := delivery.NewDelivery(kernel.NewUUID(), customerID, nil, deliveryDate, description, true)
	if err != nil {
		return err
	}

	agents, err := agentRepo.GetAllAssignable(ctx)
	if err != nil {
		return err
	}

	lastEntry, err := deliveryRepo.GetLastCreated(ctx)
	if err != nil {
		return err
	}

	var lastAssignedAgentID *kernel.UUID
	if lastEntry != nil {
		lastAssignedAgentID = lastEntry.Agent()
	}

	_, err = services.NewDeliveryDispatcher().Dispatch(entry, agents, lastAssignedAgentID)
	if err != nil && !errors.Is(err, services.ErrAgentNotFound) {
		return err
	}

	return deliveryRepo.Add(ctx, entry)
}
