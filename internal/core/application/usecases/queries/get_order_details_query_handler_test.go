package queries_test

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/adapters/out/postgres/customerrepo"
	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/customer"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderDetailsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderDetailsQueryHandler
}

func (suite *GetOrderDetailsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&customerrepo.CustomerDTO{}, &orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderDetailsQueryHandler(db)
}

func (suite *GetOrderDetailsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderDetailsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE customers, orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderDetailsQueryHandlerTestSuite) TestHandle_ReturnsOrderWithCustomerAndItems() {
	testCustomer := suite.seedCustomer()
	testOrder := suite.seedOrder(testCustomer.ID())

	query, err := queries.NewGetOrderDetailsQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), result.ID)
	suite.Equal(testCustomer.ID(), result.CustomerID)
	suite.Equal("Maria Lopez", result.CustomerName)
	suite.Equal("maria@example.com", result.CustomerEmail)
	suite.Equal("Lima", result.CustomerCity)
	suite.Equal("admin@demo.local", result.PlacedBy)
	suite.Equal(order.PaymentMethodCash, result.PaymentMethod)
	suite.Equal(order.Created, result.Status)
	suite.assertSameMoney("34.75", result.Total)

	suite.Require().Len(result.Items, 2)
	suite.Equal("Green Tea", result.Items[0].ProductName)
	suite.Equal(2, result.Items[0].Quantity)
	suite.assertSameMoney("12.50", result.Items[0].UnitPrice)
	suite.assertSameMoney("25.00", result.Items[0].Subtotal)

	suite.Equal("Ground Coffee", result.Items[1].ProductName)
	suite.Equal(1, result.Items[1].Quantity)
	suite.assertSameMoney("9.75", result.Items[1].Subtotal)
}

func (suite *GetOrderDetailsQueryHandlerTestSuite) TestHandle_DeletedCustomer_ReturnsEmptyCustomerFields() {
	// The customer row never existed; history must still be readable
	testOrder := suite.seedOrder(kernel.NewUUID())

	query, err := queries.NewGetOrderDetailsQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), result.ID)
	suite.Empty(result.CustomerName)
	suite.Empty(result.CustomerEmail)
	suite.Require().Len(result.Items, 2)
}

func (suite *GetOrderDetailsQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	query, err := queries.NewGetOrderDetailsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Zero(result)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetOrderDetailsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderDetailsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Zero(result)
	suite.Contains(err.Error(), "must be created via NewGetOrderDetailsQuery constructor")
}

// seedCustomer persists the default test customer.
func (suite *GetOrderDetailsQueryHandlerTestSuite) seedCustomer() *customer.Customer {
	seeded, err := customer.NewCustomer(kernel.NewUUID(),
		"Maria Lopez", "maria@example.com", "555-0101", "Lima")
	suite.Require().NoError(err)

	repo := customerrepo.NewGormCustomerRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), seeded))
	return seeded
}

// seedOrder persists a two-line order for the given customer.
func (suite *GetOrderDetailsQueryHandlerTestSuite) seedOrder(customerID kernel.UUID) *order.Order {
	teaPrice, err := kernel.NewMoneyFromString("12.50")
	suite.Require().NoError(err)
	coffeePrice, err := kernel.NewMoneyFromString("9.75")
	suite.Require().NoError(err)

	tea, err := order.NewLineItem(kernel.NewUUID(), "Green Tea", 2, teaPrice)
	suite.Require().NoError(err)
	coffee, err := order.NewLineItem(kernel.NewUUID(), "Ground Coffee", 1, coffeePrice)
	suite.Require().NoError(err)

	seeded, err := order.NewOrder(kernel.NewUUID(), customerID, "admin@demo.local",
		order.PaymentMethodCash, []order.LineItem{tea, coffee})
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), seeded))
	return seeded
}

// assertSameMoney verifies the amount equals the expected decimal string.
func (suite *GetOrderDetailsQueryHandlerTestSuite) assertSameMoney(expected string, actual kernel.Money) {
	expectedMoney, err := kernel.NewMoneyFromString(expected)
	suite.Require().NoError(err)

	equal, err := expectedMoney.IsEqual(actual)
	suite.Require().NoError(err)
	suite.True(equal, "expected %s, got %s", expectedMoney, actual)
}

func TestGetOrderDetailsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderDetailsQueryHandlerTestSuite))
}
