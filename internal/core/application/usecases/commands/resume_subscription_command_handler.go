package commands

import (
	"context"
	"time"

	"subscriptions/internal/core/ports"
)

// ResumeSubscriptionCommandHandler handles the business logic for resuming a
// paused subscription. Closes the open pause history row, pushes the end date
// out by the days spent paused, and schedules the next delivery ledger entry
// with round-robin agent assignment.
//
// Example:
//
//	handler := NewResumeSubscriptionCommandHandler(uowFactory, publisher)
//	cmd, _ := NewResumeSubscriptionCommand(subscriptionID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // Subscription is not paused
//	}
type ResumeSubscriptionCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewResumeSubscriptionCommandHandler creates a handler for resume operations.
func NewResumeSubscriptionCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
) ResumeSubscriptionCommandHandler {
	return ResumeSubscriptionCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the resume command.
// The subscription, its closed pause row, and the new ledger entry are persisted
// in a single transaction.
func (h ResumeSubscriptionCommandHandler) Handle(ctx context.Context, cmd ResumeSubscriptionCommand) error {
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

	aggregate, err := subscriptionRepo.Get(ctx, cmd.SubscriptionID())
	if err != nil {
		return err
	}

	if _, err = aggregate.Resume(time.Now().UTC()); err != nil {
		return err
	}

	if err = subscriptionRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	subscriptionPlan, err := uow.PlanRepository().Get(ctx, aggregate.PlanID())
	if err != nil {
		return err
	}

	if err = scheduleNextDelivery(
		ctx,
		uow.DeliveryRepository(),
		uow.AgentRepository(),
		aggregate.CustomerID(),
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
