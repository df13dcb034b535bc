package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"subscriptions/internal/core/application/usecases/commands"
	"subscriptions/internal/core/domain/model/agent"
	"subscriptions/internal/core/domain/model/delivery"
	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/core/domain/model/plan"
	"subscriptions/internal/core/domain/model/subscription"
	"subscriptions/internal/pkg/errs"
)

func TestResumeSubscriptionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testPlan := newMonthlyPlan(t)
	aggregate, err := subscription.NewSubscription(
		kernel.NewUUID(), kernel.NewUUID(), testPlan, time.Now().UTC().AddDate(0, 0, -10),
	)
	require.NoError(t, err)
	require.NoError(t, aggregate.Pause(kernel.NewUUID(), time.Now().UTC().AddDate(0, 0, -5)))
	endDateWhilePaused := aggregate.EndDate()

	cmd, err := commands.NewResumeSubscriptionCommand(aggregate.ID())
	require.NoError(t, err)

	testAgent, err := agent.NewAgent(kernel.NewUUID(), "Alice", true)
	require.NoError(t, err)

	subscriptionRepo := new(MockSubscriptionRepository)
	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	planRepo := new(MockPlanRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	var addedEntry *delivery.Delivery
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SubscriptionRepository").Return(subscriptionRepo).Once(),
		subscriptionRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		subscriptionRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("PlanRepository").Return(planRepo).Once(),
		planRepo.On("Get", ctx, aggregate.PlanID()).Return(testPlan, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("GetAllAssignable", ctx).Return([]*agent.Agent{testAgent}, nil).Once(),
		deliveryRepo.On("GetLastCreated", ctx).Return(nil, nil).Once(),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).
			Run(func(args mock.Arguments) {
				addedEntry = args.Get(1).(*delivery.Delivery)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("SubscriptionsChanged", ctx).Return(nil).Once(),
		publisher.On("DeliveriesChanged", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResumeSubscriptionCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, subscription.Active, aggregate.Status())
	assert.Nil(t, aggregate.OpenPause())
	assert.Equal(t, endDateWhilePaused.AddDate(0, 0, 5), aggregate.EndDate())
	require.NotNil(t, aggregate.NextDeliveryDate())
	require.NotNil(t, addedEntry)
	assert.Equal(t, *aggregate.NextDeliveryDate(), addedEntry.DeliveryDate())
	assert.True(t, addedEntry.Agent().IsEqual(testAgent.ID()))

	subscriptionRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestResumeSubscriptionCommandHandler_Handle_NotPaused(t *testing.T) {
	ctx := t.Context()

	aggregate, err := subscription.NewSubscription(
		kernel.NewUUID(), kernel.NewUUID(), newQuarterlyPlan(t), time.Now().UTC(),
	)
	require.NoError(t, err)

	cmd, err := commands.NewResumeSubscriptionCommand(aggregate.ID())
	require.NoError(t, err)

	subscriptionRepo := new(MockSubscriptionRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SubscriptionRepository").Return(subscriptionRepo).Once(),
		subscriptionRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResumeSubscriptionCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	subscriptionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "SubscriptionsChanged", mock.Anything)
}

func newQuarterlyPlan(t *testing.T) *plan.Plan {
	t.Helper()

	p, err := plan.NewPlan(kernel.NewUUID(), "Quarterly Box", 7990, "monthly")
	require.NoError(t, err)
	return p
}

func TestResumeSubscriptionCommandHandler_Handle_LedgerAddFails(t *testing.T) {
	ctx := t.Context()

	testPlan := newMonthlyPlan(t)
	aggregate, err := subscription.NewSubscription(
		kernel.NewUUID(), kernel.NewUUID(), testPlan, time.Now().UTC().AddDate(0, 0, -10),
	)
	require.NoError(t, err)
	require.NoError(t, aggregate.Pause(kernel.NewUUID(), time.Now().UTC().AddDate(0, 0, -5)))

	cmd, err := commands.NewResumeSubscriptionCommand(aggregate.ID())
	require.NoError(t, err)

	testAgent, err := agent.NewAgent(kernel.NewUUID(), "Alice", true)
	require.NoError(t, err)

	subscriptionRepo := new(MockSubscriptionRepository)
	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	planRepo := new(MockPlanRepository)
	uow := new(MockUoW)
	publisher := new(MockEventPublisher)

	ledgerErr := errors.New("insert into deliveries failed")
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SubscriptionRepository").Return(subscriptionRepo).Once(),
		subscriptionRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		subscriptionRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("PlanRepository").Return(planRepo).Once(),
		planRepo.On("Get", ctx, aggregate.PlanID()).Return(testPlan, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("GetAllAssignable", ctx).Return([]*agent.Agent{testAgent}, nil).Once(),
		deliveryRepo.On("GetLastCreated", ctx).Return(nil, nil).Once(),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(ledgerErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResumeSubscriptionCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, ledgerErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "SubscriptionsChanged", mock.Anything)
	publisher.AssertNotCalled(t, "DeliveriesChanged", mock.Anything)

	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
