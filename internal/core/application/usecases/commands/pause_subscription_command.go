package commands

import (
	"errors"

	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/pkg/guard"
)

var ErrPauseSubscriptionCommandIsNotConstructed = errors.New(
	"PauseSubscriptionCommand must be created via NewPauseSubscriptionCommand constructor",
)

// PauseSubscriptionCommand represents a request to pause an active subscription.
// Pausing opens a pause history row, stops the delivery schedule, and removes the
// customer's still-pending ledger entries.
type PauseSubscriptionCommand struct { //nolint:recvcheck //using for validation
	subscriptionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPauseSubscriptionCommand creates a command to pause a subscription.
func NewPauseSubscriptionCommand(subscriptionID kernel.UUID) (PauseSubscriptionCommand, error) {
	pauseCommand := PauseSubscriptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := pauseCommand.setSubscriptionID(subscriptionID); err != nil {
		return PauseSubscriptionCommand{}, err
	}

	return pauseCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPauseSubscriptionCommandIsNotConstructed if validation fails.
func (c PauseSubscriptionCommand) Validate() error {
	return c.guard.Validate(ErrPauseSubscriptionCommandIsNotConstructed)
}

// SubscriptionID returns the identifier of the subscription to pause.
func (c PauseSubscriptionCommand) SubscriptionID() kernel.UUID {
	return c.subscriptionID
}

func (c *PauseSubscriptionCommand) setSubscriptionID(subscriptionID kernel.UUID) error {
	if err := subscriptionID.Validate(); err != nil {
		return err
	}

	c.subscriptionID = subscriptionID
	return nil
}
