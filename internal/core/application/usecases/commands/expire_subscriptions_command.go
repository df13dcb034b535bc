package commands

import (
	"errors"

	"subscriptions/internal/pkg/guard"
)

var ErrExpireSubscriptionsCommandIsNotConstructed = errors.New(
	"ExpireSubscriptionsCommand must be created via NewExpireSubscriptionsCommand constructor",
)

// ExpireSubscriptionsCommand triggers the expiry sweep over active subscriptions.
// This is a parameterless command run periodically by the background job: every
// active subscription whose end date has passed is moved to Expired.
//
// Example:
//
//	cmd := NewExpireSubscriptionsCommand()
//	handler := NewExpireSubscriptionsCommandHandler(uowFactory, publisher)
//	expired, err := handler.Handle(ctx, cmd)
type ExpireSubscriptionsCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireSubscriptionsCommand creates a new command to trigger the expiry sweep.
func NewExpireSubscriptionsCommand() ExpireSubscriptionsCommand {
	return ExpireSubscriptionsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpireSubscriptionsCommandIsNotConstructed if validation fails.
func (c *ExpireSubscriptionsCommand) Validate() error {
	return c.guard.Validate(
		ErrExpireSubscriptionsCommandIsNotConstructed,
	)
}
