package queries_test

import (
	"context"
	"testing"
	"time"

	"subscriptions/internal/adapters/out/postgres/planrepo"
	"subscriptions/internal/adapters/out/postgres/subscriptionrepo"
	"subscriptions/internal/core/application/usecases/queries"
	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/core/domain/model/plan"
	"subscriptions/internal/core/domain/model/subscription"
	"subscriptions/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCustomerSubscriptionQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCustomerSubscriptionQueryHandler
}

func (suite *GetCustomerSubscriptionQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&planrepo.PlanDTO{},
		&subscriptionrepo.SubscriptionDTO{},
		&subscriptionrepo.PauseDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetCustomerSubscriptionQueryHandler(db)
}

func (suite *GetCustomerSubscriptionQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetCustomerSubscriptionQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE subscriptions, subscription_pauses, plans CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetCustomerSubscriptionQueryHandlerTestSuite) TestHandle_UnknownCustomer_ReturnsNotFound() {
	query, err := queries.NewGetCustomerSubscriptionQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetCustomerSubscriptionQueryHandlerTestSuite) TestHandle_ActiveSubscription_ReturnsView() {
	customerID := kernel.NewUUID()
	monthlyPlan := suite.createPlan("Monthly Box")
	aggregate := suite.createSubscription(customerID, monthlyPlan, time.Now().UTC())

	query, err := queries.NewGetCustomerSubscriptionQuery(customerID)
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), view.ID)
	suite.Equal(monthlyPlan.ID(), view.PlanID)
	suite.Equal("Monthly Box", view.PlanName)
	suite.Equal("Active", view.Status)
	suite.WithinDuration(aggregate.StartDate(), view.StartDate, time.Second)
	suite.WithinDuration(aggregate.EndDate(), view.EndDate, time.Second)
	suite.Require().NotNil(view.NextDeliveryDate)
	suite.WithinDuration(*aggregate.NextDeliveryDate(), *view.NextDeliveryDate, time.Second)
	suite.Empty(view.PauseHistory)
}

func (suite *GetCustomerSubscriptionQueryHandlerTestSuite) TestHandle_PausedThenResumed_ReturnsPauseHistory() {
	customerID := kernel.NewUUID()
	monthlyPlan := suite.createPlan("Monthly Box")

	startDate := time.Now().UTC().AddDate(0, 0, -20)
	aggregate := suite.createSubscription(customerID, monthlyPlan, startDate)

	firstPause := startDate.AddDate(0, 0, 2)
	firstResume := startDate.AddDate(0, 0, 5)
	suite.Require().NoError(aggregate.Pause(kernel.NewUUID(), firstPause))
	_, err := aggregate.Resume(firstResume)
	suite.Require().NoError(err)

	secondPause := startDate.AddDate(0, 0, 10)
	suite.Require().NoError(aggregate.Pause(kernel.NewUUID(), secondPause))

	repo := subscriptionrepo.NewGormSubscriptionRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Update(context.Background(), aggregate))

	query, err := queries.NewGetCustomerSubscriptionQuery(customerID)
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("Paused", view.Status)
	suite.Nil(view.NextDeliveryDate)

	suite.Require().Len(view.PauseHistory, 2)
	suite.WithinDuration(firstPause, view.PauseHistory[0].PauseDate, time.Second)
	suite.Require().NotNil(view.PauseHistory[0].ResumeDate)
	suite.WithinDuration(firstResume, *view.PauseHistory[0].ResumeDate, time.Second)
	suite.WithinDuration(secondPause, view.PauseHistory[1].PauseDate, time.Second)
	suite.Nil(view.PauseHistory[1].ResumeDate)
}

func (suite *GetCustomerSubscriptionQueryHandlerTestSuite) TestHandle_MultipleSubscriptions_ReturnsMostRecent() {
	customerID := kernel.NewUUID()
	monthlyPlan := suite.createPlan("Monthly Box")

	old := suite.createSubscription(customerID, monthlyPlan, time.Now().UTC().AddDate(0, -3, 0))
	_, err := old.Cancel()
	suite.Require().NoError(err)

	repo := subscriptionrepo.NewGormSubscriptionRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Update(context.Background(), old))

	current := suite.createSubscription(customerID, monthlyPlan, time.Now().UTC())

	query, err := queries.NewGetCustomerSubscriptionQuery(customerID)
	suite.Require().NoError(err)

	view, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(current.ID(), view.ID)
	suite.Equal("Active", view.Status)
}

func (suite *GetCustomerSubscriptionQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCustomerSubscriptionQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetCustomerSubscriptionQuery constructor")
}

func (suite *GetCustomerSubscriptionQueryHandlerTestSuite) createPlan(name string) *plan.Plan {
	created, err := plan.NewPlan(kernel.NewUUID(), name, 2990, "monthly")
	suite.Require().NoError(err)

	repo := planrepo.NewGormPlanRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), created))

	return created
}

func (suite *GetCustomerSubscriptionQueryHandlerTestSuite) createSubscription(
	customerID kernel.UUID,
	subscriptionPlan *plan.Plan,
	startDate time.Time,
) *subscription.Subscription {
	aggregate, err := subscription.NewSubscription(kernel.NewUUID(), customerID, subscriptionPlan, startDate)
	suite.Require().NoError(err)

	repo := subscriptionrepo.NewGormSubscriptionRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), aggregate))

	return aggregate
}

func TestGetCustomerSubscriptionQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCustomerSubscriptionQueryHandlerTestSuite))
}

// mockAggregateTracker is a no-op tracker for query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}
