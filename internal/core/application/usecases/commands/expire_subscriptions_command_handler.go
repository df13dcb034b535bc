package commands

import (
	"context"
	"time"

	"subscriptions/internal/core/ports"
)

// ExpireSubscriptionsCommandHandler moves active subscriptions whose end date
// has passed to Expired. Paused subscriptions are skipped, their end date is
// still being pushed out while the pause lasts.
//
// The sweep runs as one transaction. Per-subscription row locks keep it from
// racing with a customer action on the same subscription.
type ExpireSubscriptionsCommandHandler struct {
	uowFactory SubscriptionUoWFactory
	publisher  ports.EventPublisher
}

// NewExpireSubscriptionsCommandHandler creates a handler for the expiry sweep.
func NewExpireSubscriptionsCommandHandler(
	uowFactory SubscriptionUoWFactory,
	publisher ports.EventPublisher,
) ExpireSubscriptionsCommandHandler {
	return ExpireSubscriptionsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the expiry sweep command.
// Returns the number of subscriptions that were expired.
func (h ExpireSubscriptionsCommandHandler) Handle(ctx context.Context, cmd ExpireSubscriptionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	subscriptionRepo := uow.SubscriptionRepository()

	ended, err := subscriptionRepo.GetAllActiveEndedBy(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	for _, aggregate := range ended {
		if err = aggregate.Expire(); err != nil {
			return 0, err
		}

		if err = subscriptionRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if len(ended) > 0 {
		_ = h.publisher.SubscriptionsChanged(ctx)
	}

	return len(ended), nil
}
