package commands

import (
	"context"
	"errors"
	"time"

	"subscriptions/internal/core/domain/model/subscription"
	"subscriptions/internal/core/ports"
	"subscriptions/internal/pkg/errs"
)

// ErrSubscriptionAlreadyExists is returned when the customer already has a
// subscription that is not in a terminal status.
var ErrSubscriptionAlreadyExists = errors.New("customer already has an active or paused subscription")

// SubscribeCommandHandler handles the business logic for starting a subscription.
// Creates the subscription in Active status, computes its end date from the plan
// duration, and schedules the first delivery ledger entry with round-robin agent
// assignment. Notifies downstream consumers after the transaction commits.
//
// Example:
//
//	handler := NewSubscribeCommandHandler(uowFactory, publisher)
//	cmd, _ := NewSubscribeCommand(kernel.NewUUID(), customerID, planID)
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrSubscriptionAlreadyExists):
//	    // Customer must cancel before subscribing again
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // Unknown plan
//	case err != nil:
//	    // Handle failure
//	}
type SubscribeCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewSubscribeCommandHandler creates a handler for subscription creation.
// Requires a UoWFactory for transactional persistence and an EventPublisher
// for post-commit change notifications.
func NewSubscribeCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) SubscribeCommandHandler {
	return SubscribeCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the subscribe command.
// Rejects the request when the customer already holds a non-terminal subscription.
// The subscription and its first Pending ledger entry are persisted in a single
// transaction.
func (h SubscribeCommandHandler) Handle(ctx context.Context, cmd SubscribeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	subscriptionRepo := uow.SubscriptionRepository()
	planRepo := uow.PlanRepository()

	subscriptionPlan, err := planRepo.Get(ctx, cmd.PlanID())
	if err != nil {
		return err
	}

	existing, err := subscriptionRepo.GetByCustomer(ctx, cmd.CustomerID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil && !existing.Status().IsTerminal() {
		return ErrSubscriptionAlreadyExists
	}

	now := time.Now().UTC()
	aggregate, err := subscription.NewSubscription(cmd.SubscriptionID(), cmd.CustomerID(), subscriptionPlan, now)
	if err != nil {
		return err
	}

	if err = subscriptionRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = scheduleNextDelivery(
		ctx,
		uow.DeliveryRepository(),
		uow.AgentRepository(),
		cmd.CustomerID(),
		*aggregate.NextDeliveryDate(),
		subscriptionPlan.Name(),
	); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.SubscriptionsChanged(ctx)
	_ = h.publisher.DeliveriesChanged(ctx)

	return nil
}
