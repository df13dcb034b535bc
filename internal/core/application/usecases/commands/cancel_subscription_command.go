package commands

import (
	"errors"

	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/pkg/guard"
)

var ErrCancelSubscriptionCommandIsNotConstructed = errors.New(
	"CancelSubscriptionCommand must be created via NewCancelSubscriptionCommand constructor",
)

// CancelSubscriptionCommand represents a request to cancel a subscription.
// Cancellation is permanent and idempotent: cancelling an already cancelled
// subscription succeeds without changing anything.
type CancelSubscriptionCommand struct { //nolint:recvcheck //using for validation
	subscriptionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelSubscriptionCommand creates a command to cancel a subscription.
func NewCancelSubscriptionCommand(subscriptionID kernel.UUID) (CancelSubscriptionCommand, error) {
	cancelCommand := CancelSubscriptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setSubscriptionID(subscriptionID); err != nil {
		return CancelSubscriptionCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelSubscriptionCommandIsNotConstructed if validation fails.
func (c CancelSubscriptionCommand) Validate() error {
	return c.guard.Validate(ErrCancelSubscriptionCommandIsNotConstructed)
}

// SubscriptionID returns the identifier of the subscription to cancel.
func (c CancelSubscriptionCommand) SubscriptionID() kernel.UUID {
	return c.subscriptionID
}

func (c *CancelSubscriptionCommand) setSubscriptionID(subscriptionID kernel.UUID) error {
	if err := subscriptionID.Validate(); err != nil {
		return err
	}

	c.subscriptionID = subscriptionID
	return nil
}
