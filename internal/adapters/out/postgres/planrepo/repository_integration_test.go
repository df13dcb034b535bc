package planrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"subscriptions/internal/adapters/out/postgres/planrepo"
	"subscriptions/internal/core/domain/model/kernel"
	"subscriptions/internal/core/domain/model/plan"
	"subscriptions/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// PlanRepositoryIntegrationTestSuite provides integration tests for
// PlanRepository using PostgreSQL containers.
type PlanRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *planrepo.GormPlanRepository
	tracker    *MockAggregateTracker
}

func (suite *PlanRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&planrepo.PlanDTO{}))
}

func (suite *PlanRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE plans").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = planrepo.NewGormPlanRepository(suite.db, suite.tracker)
}

func (suite *PlanRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PlanRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()

	testPlan, err := plan.NewPlan(kernel.NewUUID(), "Monthly Box", 2990, "monthly")
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", testPlan.ID(), testPlan).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testPlan))

	stored, err := suite.repository.Get(ctx, testPlan.ID())
	suite.Require().NoError(err)
	suite.Equal(testPlan.ID(), stored.ID())
	suite.Equal("Monthly Box", stored.Name())
	suite.Equal(int64(2990), stored.PriceCents())
	suite.Equal("monthly", stored.Duration())
}

func (suite *PlanRepositoryIntegrationTestSuite) TestGet_NotFound_ReturnsError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PlanRepositoryIntegrationTestSuite) TestGetAll_OrderedByName() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	weekly, err := plan.NewPlan(kernel.NewUUID(), "Weekly Box", 990, "weekly")
	suite.Require().NoError(err)
	daily, err := plan.NewPlan(kernel.NewUUID(), "Daily Box", 490, "daily")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, weekly))
	suite.Require().NoError(suite.repository.Add(ctx, daily))

	plans, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(plans, 2)
	suite.Equal("Daily Box", plans[0].Name())
	suite.Equal("Weekly Box", plans[1].Name())
}

func TestPlanRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PlanRepositoryIntegrationTestSuite))
}
