package commands

import (
	"context"

	"subscriptions/internal/core/ports"
)

// CancelSubscriptionCommandHandler handles the business logic for cancelling a
// subscription. Cancellation clears the delivery schedule but leaves already
// created ledger entries untouched, entries in flight still get delivered.
//
// Example:
//
//	handler := NewCancelSubscriptionCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCancelSubscriptionCommand(subscriptionID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // Subscription already expired
//	}
type CancelSubscriptionCommandHandler struct {
	uowFactory SubscriptionUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelSubscriptionCommandHandler creates a handler for cancel operations.
func NewCancelSubscriptionCommandHandler(
	uowFactory SubscriptionUoWFactory,
	publisher ports.EventPublisher,
) CancelSubscriptionCommandHandler {
	return CancelSubscriptionCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancel command.
// Re-cancelling an already cancelled subscription succeeds without persisting
// or notifying anything.
func (h CancelSubscriptionCommandHandler) Handle(ctx context.Context, cmd CancelSubscriptionCommand) error {
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

	changed, err := aggregate.Cancel()
	if err != nil {
		return err
	}

	if !changed {
		return uow.Commit(ctx)
	}

	if err = subscriptionRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.SubscriptionsChanged(ctx)

	return nil
}
