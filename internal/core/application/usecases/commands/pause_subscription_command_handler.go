package commands

import (
	"context"
	"time"

	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/core/ports"
)

// PauseSubscriptionCommandHandler handles the business logic for pausing a subscription.
// Records the pause date in the pause history, stops the delivery schedule, and
// deletes the customer's still-pending ledger entries in the same transaction.
//
// Example:
//
//	handler := NewPauseSubscriptionCommandHandler(uowFactory, publisher)
//	cmd, _ := NewPauseSubscriptionCommand(subscriptionID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // Subscription is not active
//	}
type PauseSubscriptionCommandHandler struct {
	uowFactory PauseUoWFactory
	publisher  ports.EventPublisher
}

// NewPauseSubscriptionCommandHandler creates a handler for pause operations.
func NewPauseSubscriptionCommandHandler(
	uowFactory PauseUoWFactory,
	publisher ports.EventPublisher,
) PauseSubscriptionCommandHandler {
	return PauseSubscriptionCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the pause command.
// The subscription row is locked for the duration of the transaction, so
// concurrent pause/resume/cancel requests on the same subscription are applied
// one at a time.
func (h PauseSubscriptionCommandHandler) Handle(ctx context.Context, cmd PauseSubscriptionCommand) error {
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

	if err = aggregate.Pause(kernel.NewUUID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = subscriptionRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if _, err = uow.DeliveryRepository().DeletePendingByCustomer(ctx, aggregate.CustomerID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.SubscriptionsChanged(ctx)
	_ = h.publisher.DeliveriesChanged(ctx)

	return nil
}
