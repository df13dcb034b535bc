package commands

import (
	"errors"

	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/pkg/guard"
)

var ErrResumeSubscriptionCommandIsNotConstructed = errors.New(
	"ResumeSubscriptionCommand must be created via NewResumeSubscriptionCommand constructor",
)

// ResumeSubscriptionCommand represents a request to resume a paused subscription.
// Resuming closes the open pause history row, extends the subscription end date
// by the number of whole days spent paused, and schedules the next delivery.
type ResumeSubscriptionCommand struct { //nolint:recvcheck //using for validation
	subscriptionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResumeSubscriptionCommand creates a command to resume a subscription.
func NewResumeSubscriptionCommand(subscriptionID kernel.UUID) (ResumeSubscriptionCommand, error) {
	resumeCommand := ResumeSubscriptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := resumeCommand.setSubscriptionID(subscriptionID); err != nil {
		return ResumeSubscriptionCommand{}, err
	}

	return resumeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResumeSubscriptionCommandIsNotConstructed if validation fails.
func (c ResumeSubscriptionCommand) Validate() error {
	return c.guard.Validate(ErrResumeSubscriptionCommandIsNotConstructed)
}

// SubscriptionID returns the identifier of the subscription to resume.
func (c ResumeSubscriptionCommand) SubscriptionID() kernel.UUID {
	return c.subscriptionID
}

func (c *ResumeSubscriptionCommand) setSubscriptionID(subscriptionID kernel.UUID) error {
	if err := subscriptionID.Validate(); err != nil {
		return err
	}

	c.subscriptionID = subscriptionID
	return nil
}
