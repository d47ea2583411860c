package accountrepo_test

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/adapters/out/postgres/accountrepo"
	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// AccountRepositoryIntegrationTestSuite provides integration tests for AccountRepository
// using PostgreSQL containers to verify database persistence behavior.
type AccountRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *accountrepo.GormAccountRepository
	tracker    *MockAggregateTracker
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&accountrepo.AccountDTO{}))
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE accounts").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = accountrepo.NewGormAccountRepository(suite.db, suite.tracker)
}

func (suite *AccountRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAdd_ValidAccount_Success() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	testAccount := suite.createTestAccount("maria@example.com", account.User, &customerID)
	suite.tracker.On("TrackAggregate", testAccount.ID(), testAccount).Once()

	err := suite.repository.Add(ctx, testAccount)
	suite.Require().NoError(err)

	suite.assertAccountCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGetByEmail_ExistingAccount_RoundTripsHashAndLink() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	testAccount := suite.createTestAccount("maria@example.com", account.User, &customerID)
	suite.tracker.On("TrackAggregate", testAccount.ID(), testAccount).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testAccount))

	retrieved, err := suite.repository.GetByEmail(ctx, "maria@example.com")
	suite.Require().NoError(err)

	suite.Equal(testAccount.ID(), retrieved.ID())
	suite.Equal("maria@example.com", retrieved.Email())
	suite.Equal(account.User, retrieved.Role())
	suite.Require().NotNil(retrieved.CustomerID())
	suite.Equal(customerID, *retrieved.CustomerID())

	// The stored bcrypt hash must keep verifying the original password
	suite.True(retrieved.VerifyPassword("secret123"))
	suite.False(retrieved.VerifyPassword("wrong-password"))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGetByEmail_AdminWithoutCustomerLink() {
	ctx := context.Background()

	testAccount := suite.createTestAccount("admin@demo.local", account.Admin, nil)
	suite.tracker.On("TrackAggregate", testAccount.ID(), testAccount).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testAccount))

	retrieved, err := suite.repository.GetByEmail(ctx, "admin@demo.local")
	suite.Require().NoError(err)

	suite.Equal(account.Admin, retrieved.Role())
	suite.Nil(retrieved.CustomerID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGetByEmail_NonExistentAccount_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByEmail(ctx, "nobody@example.com")

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_FailsOnUniqueIndex() {
	ctx := context.Background()

	first := suite.createTestAccount("maria@example.com", account.User, nil)
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	duplicate := suite.createTestAccount("maria@example.com", account.User, nil)

	err := suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)
	suite.assertAccountCount(1)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestAccount creates an account with the password "secret123".
func (suite *AccountRepositoryIntegrationTestSuite) createTestAccount(
	email string, role account.Role, customerID *kernel.UUID,
) *account.Account {
	testAccount, err := account.NewAccount(kernel.NewUUID(), email, "secret123", role, customerID)
	suite.Require().NoError(err)
	return testAccount
}

// assertAccountCount verifies the number of accounts in the database.
func (suite *AccountRepositoryIntegrationTestSuite) assertAccountCount(expected int) {
	var count int64
	err := suite.db.Model(&accountrepo.AccountDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestAccountRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryIntegrationTestSuite))
}
