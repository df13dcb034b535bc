package commands

import (
	"errors"

	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/pkg/guard"
)

var ErrSubscribeCommandIsNotConstructed = errors.New(
	"SubscribeCommand must be created via NewSubscribeCommand constructor",
)

// SubscribeCommand represents a request to start a new subscription for a customer.
// Encapsulates the identifiers of the subscription to create, the customer, and
// the plan that determines its price and duration.
//
// Example:
//
//	subscriptionID := kernel.NewUUID()
//	cmd, err := NewSubscribeCommand(subscriptionID, customerID, planID)
//	if err != nil {
//	    return fmt.Errorf("invalid subscription data: %w", err)
//	}
//
//	handler := NewSubscribeCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to subscribe: %w", err)
//	}
type SubscribeCommand struct { //nolint:recvcheck //using for validation
	subscriptionID kernel.UUID
	customerID     kernel.UUID
	planID         kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubscribeCommand creates a command to start a new subscription.
// Validates that all identifiers are properly constructed UUIDs.
func NewSubscribeCommand(subscriptionID, customerID, planID kernel.UUID) (SubscribeCommand, error) {
	subscribeCommand := SubscribeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		subscribeCommand.setSubscriptionID(subscriptionID),
		subscribeCommand.setCustomerID(customerID),
		subscribeCommand.setPlanID(planID),
	); err != nil {
		return SubscribeCommand{}, err
	}

	return subscribeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubscribeCommandIsNotConstructed if validation fails.
func (c SubscribeCommand) Validate() error {
	return c.guard.Validate(ErrSubscribeCommandIsNotConstructed)
}

// SubscriptionID returns the unique identifier for the new subscription.
func (c SubscribeCommand) SubscriptionID() kernel.UUID {
	return c.subscriptionID
}

// CustomerID returns the subscribing customer's identifier.
func (c SubscribeCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PlanID returns the identifier of the plan being subscribed to.
func (c SubscribeCommand) PlanID() kernel.UUID {
	return c.planID
}

func (c *SubscribeCommand) setSubscriptionID(subscriptionID kernel.UUID) error {
	if err := subscriptionID.Validate(); err != nil {
		return err
	}

	c.subscriptionID = subscriptionID
	return nil
}

func (c *SubscribeCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SubscribeCommand) setPlanID(planID kernel.UUID) error {
	if err := planID.Validate(); err != nil {
		return err
	}

	c.planID = planID
	return nil
}
