package jobs

import (
	"context"
	"log/slog"

	"subscriptions/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SubscriptionExpiryJob manages the scheduled expiry sweep.
// Runs hourly to expire active subscriptions whose end date has passed.
type SubscriptionExpiryJob struct {
	handler commands.ExpireSubscriptionsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSubscriptionExpiryJob creates a new job for expiring subscriptions.
// Uses ExpireSubscriptionsCommandHandler to sweep the subscription table every hour.
func NewSubscriptionExpiryJob(handler commands.ExpireSubscriptionsCommandHandler, logger *slog.Logger) *SubscriptionExpiryJob {
	return &SubscriptionExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "subscription_expiry_job"),
	}
}

// Start begins the expiry sweep to run at the top of every hour.
func (j *SubscriptionExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireSubscriptionsCommand()

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Subscription expiry sweep failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired subscriptions past their end date", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Subscription expiry job started (running hourly)")
	return nil
}

// Stop stops the expiry sweep.
func (j *SubscriptionExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Subscription expiry job stopped")
}
